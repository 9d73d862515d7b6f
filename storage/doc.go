// Package storage defines the persistence interface for description results
// and the errors shared by its implementations. The production
// implementation lives in storage/jsonfile.
package storage
