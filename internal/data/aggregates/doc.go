// Package aggregates holds the write boundary shared by the store repositories:
// a transaction runner that opens or joins a transaction, the mapping of
// storage failures onto aggregate error codes, and per-operation hooks.
package aggregates
