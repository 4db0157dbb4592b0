// Package cobraext provides Cobra command factories for working with Uniql
// models from the command line. It isolates the CLI dependencies (cobra,
// zap, yaml) so that library users never import them.
package cobraext

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/MBEJunior/uniql"
)

// OutputMode selects how the parse command prints a tree.
type OutputMode int

const (
	// JSON prints the tree as indented JSON.
	JSON OutputMode = iota
	// YAML prints the tree as YAML.
	YAML
	// Model prints the canonical compact model.
	Model
)

// parseOutputMode converts a string flag value to an OutputMode.
// The empty string maps to JSON.
func parseOutputMode(s string) (OutputMode, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "model":
		return Model, nil
	default:
		return 0, fmt.Errorf("unknown format %q: use \"json\", \"yaml\", or \"model\"", s)
	}
}

// Options carries the settings shared by all commands. The commands read it
// when they run, so a root command may fill it in a PersistentPreRunE hook.
type Options struct {
	Config *Config
	Logger *zap.Logger
}

func (o *Options) logger() *zap.Logger {
	if o == nil || o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o *Options) config() *Config {
	if o == nil || o.Config == nil {
		return DefaultConfig()
	}
	return o.Config
}

// parse parses model with the configured limits, converting parse failures
// into errors that point at the offending column.
func (o *Options) parse(model string) (*uniql.Node, error) {
	log := o.logger()
	node, err := uniql.Parse(model, o.config().ParserConfig())
	if err != nil {
		var pe *uniql.ParseError
		if errors.As(err, &pe) {
			log.Debug("model rejected",
				zap.String("code", string(pe.Code)),
				zap.Int("offset", pe.Pos.Offset))
			return nil, &modelError{model: model, err: pe}
		}
		return nil, err
	}
	log.Debug("model parsed",
		zap.String("name", node.Name()),
		zap.Int("nodes", uniql.Count(node)),
		zap.Int("depth", uniql.Depth(node)))
	return node, nil
}

// ParseCommand creates a "parse" subcommand that parses a model and prints
// the resulting tree. The --format flag overrides the configured format.
func ParseCommand(opts *Options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse <model>",
		Short: "Parse a Uniql model and print its tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := format
			if f == "" {
				f = opts.config().Format
			}
			mode, err := parseOutputMode(f)
			if err != nil {
				return err
			}
			node, err := opts.parse(args[0])
			if err != nil {
				return err
			}
			return writeNode(cmd.OutOrStdout(), node, mode)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", `Output format: "json", "yaml", or "model"`)
	return cmd
}

func writeNode(w io.Writer, node *uniql.Node, mode OutputMode) error {
	switch mode {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return err
		}
		return enc.Close()
	case Model:
		_, err := fmt.Fprintln(w, uniql.Serialize(node))
		return err
	default:
		data, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}

// FormatCommand creates a "fmt" subcommand that prints the canonical form of
// a model. Output is indented when writing to a terminal unless --compact is
// given; --indent forces indentation.
func FormatCommand(opts *Options) *cobra.Command {
	var indent, compact bool

	cmd := &cobra.Command{
		Use:   "fmt <model>",
		Short: "Print the canonical form of a Uniql model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if indent && compact {
				return errors.New("--indent and --compact are mutually exclusive")
			}
			node, err := opts.parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			formatted := indent || (!compact && isTerminal(out))
			_, err = fmt.Fprintln(out, uniql.Format(node, formatted))
			return err
		},
	}

	cmd.Flags().BoolVar(&indent, "indent", false, "Indent the model, one field or part per line")
	cmd.Flags().BoolVar(&compact, "compact", false, "Print the compact model")
	return cmd
}

// PathsCommand creates a "paths" subcommand that lists the dotted path of
// every selected field, one per line. --leaves restricts output to leaf fields.
func PathsCommand(opts *Options) *cobra.Command {
	var leaves bool

	cmd := &cobra.Command{
		Use:   "paths <model>",
		Short: "List the field paths selected by a Uniql model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := opts.parse(args[0])
			if err != nil {
				return err
			}
			sel := uniql.NewSelection(node)
			paths := sel.Paths()
			if leaves {
				paths = sel.Leaves()
			}
			for _, p := range paths {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), p); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&leaves, "leaves", false, "Only list leaf fields")
	return cmd
}

// AddCommands adds the "parse", "fmt" and "paths" commands as subcommands of parent.
func AddCommands(parent *cobra.Command, opts *Options) {
	parent.AddCommand(ParseCommand(opts))
	parent.AddCommand(FormatCommand(opts))
	parent.AddCommand(PathsCommand(opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
