// Package core defines the domain types shared across svgscribe: the
// Description record produced for each asset variant and the Results mapping
// that caches them between runs.
package core
