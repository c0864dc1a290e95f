// cmd/reportviz/main.go
package main

import (
	reportviz "github.com/mwiater/reportviz/internal/commands"
)

// Set by -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	setVersionInfo = reportviz.SetVersionInfo
	executeCmd     = reportviz.Execute
)

// main starts the reportviz CLI application by delegating to the
// cobra root command defined in the commands package.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
