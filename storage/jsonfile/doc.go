// Package jsonfile implements storage.ResultsStore on a single
// human-readable JSON file.
package jsonfile
