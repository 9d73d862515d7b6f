// Package catalog discovers vector-image assets on disk. A root directory
// contains one subdirectory per category; each matching file inside a
// category contributes its filename stem as an asset id.
package catalog
