// Package pipeline orchestrates description runs: discover assets, load the
// cached results mapping, describe every pair not yet cached, and persist
// the grown mapping.
//
// A run is resumable and idempotent: pairs already present in the cache are
// never re-described, and per-pair failures are logged and skipped rather
// than aborting the pass.
package pipeline
