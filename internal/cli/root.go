package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/slashpath/pkg/log"
	"github.com/MacroPower/slashpath/pkg/slashpath"
)

// EnvStyle sets the default for the --style flag.
const EnvStyle = "SLASHPATH_STYLE"

var ErrInvalidArgument = errors.New("invalid argument")

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	defaultStyle := os.Getenv(EnvStyle)
	if defaultStyle == "" {
		defaultStyle = "native"
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringP("style", "s", defaultStyle, "Native path style (native, unix, windows)")
	cmd.PersistentFlags().BoolP("lossy", "l", false, "Replace invalid UTF-8 with U+FFFD instead of failing")
	cmd.PersistentFlags().IntP("jobs", "j", runtime.GOMAXPROCS(0), "Number of paths converted concurrently")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		cc.SetContext(withLogger(cc.Context(), slog.New(h)))

		return nil
	}

	cmd.AddCommand(NewToSlashCmd())
	cmd.AddCommand(NewFromSlashCmd())
	cmd.AddCommand(NewFromBackslashCmd())
	cmd.AddCommand(NewComponentsCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// convertArgs holds the flags shared by every conversion command.
type convertArgs struct {
	conv  *slashpath.Converter
	jobs  int
	lossy bool
}

func getConvertArgs(cc *cobra.Command) (*convertArgs, error) {
	flags := cc.Flags()

	var merr error

	styleName, err := flags.GetString("style")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	lossy, err := flags.GetBool("lossy")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	jobs, err := flags.GetInt("jobs")
	if err != nil {
		merr = multierror.Append(merr, err)
	} else if jobs < 1 {
		merr = multierror.Append(merr, fmt.Errorf("jobs must be at least 1, got %d", jobs))
	}

	conv, err := slashpath.Lookup(styleName)
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
	}

	return &convertArgs{conv: conv, jobs: jobs, lossy: lossy}, nil
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, loggerKey{}, l)
}

// logger returns the logger configured by the root command's flags.
func logger(cc *cobra.Command) *slog.Logger {
	if ctx := cc.Context(); ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}

	return slog.Default()
}
