package cli

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/MacroPower/slashpath/pkg/slashpath"
)

const (
	toSlashExample = `  # Convert a Windows path on any platform
  slashpath to-slash --style windows 'C:\Users\gopher\notes.txt'

  # Convert paths piped on stdin, replacing invalid UTF-8
  find . -type f | slashpath to-slash --lossy
`
	fromSlashExample = `  slashpath from-slash --style windows foo/bar/piyo.txt
`
	fromBackslashExample = `  slashpath from-backslash --style unix 'foo\bar\piyo.txt'
`
)

// NewToSlashCmd returns the to-slash command.
func NewToSlashCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "to-slash [path]...",
		Short:   "Convert native paths to slash paths",
		Example: toSlashExample,
		RunE: func(cc *cobra.Command, args []string) error {
			ca, err := getConvertArgs(cc)
			if err != nil {
				return err
			}

			return runConvert(cc, args, "to-slash", ca, func(p string) (slashpath.Cow, error) {
				if ca.lossy {
					return ca.conv.ToSlashLossyCow(p), nil
				}

				return ca.conv.ToSlashCow(p)
			})
		},
	}
}

// NewFromSlashCmd returns the from-slash command.
func NewFromSlashCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "from-slash [path]...",
		Short:   "Convert slash paths to native paths",
		Example: fromSlashExample,
		RunE: func(cc *cobra.Command, args []string) error {
			ca, err := getConvertArgs(cc)
			if err != nil {
				return err
			}

			return runConvert(cc, args, "from-slash", ca, func(s string) (slashpath.Cow, error) {
				if ca.lossy {
					return ca.conv.FromSlashLossyCow(s), nil
				}

				return ca.conv.FromSlashCow(s), nil
			})
		},
	}
}

// NewFromBackslashCmd returns the from-backslash command.
func NewFromBackslashCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "from-backslash [path]...",
		Short:   "Convert backslash-separated paths to native paths",
		Example: fromBackslashExample,
		RunE: func(cc *cobra.Command, args []string) error {
			ca, err := getConvertArgs(cc)
			if err != nil {
				return err
			}

			return runConvert(cc, args, "from-backslash", ca, func(s string) (slashpath.Cow, error) {
				if ca.lossy {
					return ca.conv.FromBackslashLossyCow(s), nil
				}

				return ca.conv.FromBackslashCow(s), nil
			})
		},
	}
}

type convertResult struct {
	err error
	out slashpath.Cow
}

// runConvert converts every input path using up to ca.jobs goroutines.
// Output keeps the input order. A failed path does not stop the others.
func runConvert(
	cc *cobra.Command,
	args []string,
	op string,
	ca *convertArgs,
	convert func(string) (slashpath.Cow, error),
) error {
	paths, err := readPaths(cc, args)
	if err != nil {
		return err
	}

	log := logger(cc)
	results := make([]convertResult, len(paths))

	g := errgroup.Group{}
	g.SetLimit(ca.jobs)

	for i, p := range paths {
		g.Go(func() error {
			out, err := convert(p)
			results[i] = convertResult{out: out, err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var merr error

	for i, r := range results {
		if r.err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s %q: %w", op, paths[i], r.err))

			continue
		}

		log.Debug("converted path",
			"op", op,
			"style", ca.conv.String(),
			"input", paths[i],
			"output", r.out.String(),
			"rewritten", r.out.IsOwned(),
		)

		fmt.Fprintln(cc.OutOrStdout(), r.out.String())
	}

	return merr
}
