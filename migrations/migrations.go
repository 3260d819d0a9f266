// Package migrations holds the versioned schema applied by atlas on start.
// The files are embedded so tests can apply them without a CLI.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
