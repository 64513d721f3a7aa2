// Package cli provides the cobra command tree of services built on ligand:
// serve, genclient, db upgrade and version.
package cli
