package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MacroPower/slashpath/pkg/slashpath"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var ErrInvalidOutput = fmt.Errorf("%w: output must be one of %s, %s, %s",
	ErrInvalidArgument, OutputText, OutputJSON, OutputYAML)

var ErrInvalidColor = fmt.Errorf("%w: color must be one of %s, %s, %s",
	ErrInvalidArgument, ColorAuto, ColorAlways, ColorNever)

// colorProfile returns the profile forced by color, or nil to detect it from
// the output.
func colorProfile(color string) (*termenv.Profile, error) {
	var p termenv.Profile

	switch color {
	case ColorAuto:
		return nil, nil //nolint:nilnil // nil means detect.
	case ColorAlways:
		p = termenv.ANSI256
	case ColorNever:
		p = termenv.Ascii
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidColor, color)
	}

	return &p, nil
}

// componentView is the serialized form of a [slashpath.Component].
type componentView struct {
	Kind   string      `json:"kind"             yaml:"kind"`
	Text   string      `json:"text"             yaml:"text"`
	Prefix *prefixView `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}

type prefixView struct {
	Kind   string `json:"kind"             yaml:"kind"`
	Server string `json:"server,omitempty" yaml:"server,omitempty"`
	Share  string `json:"share,omitempty"  yaml:"share,omitempty"`
	Name   string `json:"name,omitempty"   yaml:"name,omitempty"`
	Drive  string `json:"drive,omitempty"  yaml:"drive,omitempty"`
}

type pathView struct {
	Path       string          `json:"path"       yaml:"path"`
	Slash      string          `json:"slash"      yaml:"slash"`
	Components []componentView `json:"components" yaml:"components"`
}

// NewComponentsCmd returns the components command.
func NewComponentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "components [path]...",
		Short: "Show how native paths are split into components",
		Example: `  slashpath components --style windows '\\server\share\dir\file.txt'
  slashpath components --style windows -o json 'C:\Users'
`,
		RunE: func(cc *cobra.Command, args []string) error {
			ca, err := getConvertArgs(cc)
			if err != nil {
				return err
			}

			output, err := cc.Flags().GetString("output")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			color, err := cc.Flags().GetString("color")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			profile, err := colorProfile(color)
			if err != nil {
				return err
			}

			paths, err := readPaths(cc, args)
			if err != nil {
				return err
			}

			views := make([]pathView, 0, len(paths))
			for _, p := range paths {
				views = append(views, newPathView(ca.conv, p))
			}

			logger(cc).Debug("split paths", "style", ca.conv.String(), "count", len(views))

			return writeViews(cc.OutOrStdout(), output, profile, views)
		},
	}

	cmd.Flags().StringP("output", "o", OutputText, "Output format (text, json, yaml)")
	cmd.Flags().String("color", ColorAuto, "Colorize text output (auto, always, never)")

	return cmd
}

func newPathView(conv *slashpath.Converter, p string) pathView {
	comps := conv.Components(p)

	pv := pathView{
		Path:       p,
		Slash:      conv.ToSlashLossy(p),
		Components: make([]componentView, 0, len(comps)),
	}

	for _, c := range comps {
		cv := componentView{Kind: c.Kind.String(), Text: c.Text}
		if c.Kind == slashpath.KindPrefix {
			cv.Prefix = &prefixView{
				Kind:   c.Prefix.Kind.String(),
				Server: c.Prefix.Server,
				Share:  c.Prefix.Share,
				Name:   c.Prefix.Name,
			}
			if c.Prefix.Drive != 0 {
				cv.Prefix.Drive = string(c.Prefix.Drive)
			}
		}

		pv.Components = append(pv.Components, cv)
	}

	return pv
}

func writeViews(w io.Writer, output string, profile *termenv.Profile, views []pathView) error {
	switch output {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(views); err != nil {
			return fmt.Errorf("failed encoding json: %w", err)
		}

		return nil

	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(views); err != nil {
			return fmt.Errorf("failed encoding yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed encoding yaml: %w", err)
		}

		return nil

	case OutputText:
		return writeText(w, profile, views)
	}

	return fmt.Errorf("%w: got %q", ErrInvalidOutput, output)
}

func writeText(w io.Writer, profile *termenv.Profile, views []pathView) error {
	r := lipgloss.NewRenderer(w)
	if profile != nil {
		r.SetColorProfile(*profile)
	}

	pathStyle := r.NewStyle().Bold(true)
	kindStyle := r.NewStyle().Foreground(lipgloss.Color("63")).Width(12)
	detailStyle := r.NewStyle().Faint(true)

	for _, v := range views {
		if _, err := fmt.Fprintf(w, "%s -> %s\n", pathStyle.Render(v.Path), v.Slash); err != nil {
			return fmt.Errorf("failed writing output: %w", err)
		}

		for _, c := range v.Components {
			line := "  " + kindStyle.Render(c.Kind) + c.Text
			if c.Prefix != nil {
				line += " " + detailStyle.Render("("+c.Prefix.Kind+")")
			}

			if _, err := fmt.Fprintln(w, line); err != nil {
				return fmt.Errorf("failed writing output: %w", err)
			}
		}
	}

	return nil
}
