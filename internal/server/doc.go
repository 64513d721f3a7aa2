// Package server runs the HTTP server of a ligand application until its
// context is cancelled, then shuts it down gracefully.
package server
