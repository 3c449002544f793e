package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MacroPower/slashpath/internal/cli"
)

const (
	cmdName = "slashpath"

	shortDesc = "Convert paths between native and slash form."
	longDesc  = `Convert paths between native and slash-separated form.

Slash paths always use '/' as the separator, on every platform. Native paths
use the separator of the selected style: '/' for unix and '\' for windows.
Windows prefixes such as drive letters, UNC shares, and verbatim paths are
kept intact.

Paths are read from the arguments, or one per line from stdin.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
