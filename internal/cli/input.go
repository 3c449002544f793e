package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var ErrNoPaths = errors.New("no paths given")

// readPaths returns args, or when there are none, the lines read from stdin.
// An interactive terminal on stdin is not read from.
func readPaths(cc *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	in := cc.InOrStdin()
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return nil, fmt.Errorf("%w: pass paths as arguments or pipe them on stdin", ErrNoPaths)
	}

	var paths []string

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		paths = append(paths, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed reading stdin: %w", err)
	}

	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	return paths, nil
}
