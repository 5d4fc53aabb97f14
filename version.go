package jumptable

import _ "embed"

// Version is the released version of jumptable, read from the VERSION file.
//
//go:embed VERSION
var Version string
