package migrations

import "embed"

// Files holds the numbered, forward-only SQL migrations compiled into the
// binary. The db package applies them in order at startup.
//
//go:embed *.sql
var Files embed.FS
