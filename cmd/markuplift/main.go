// Command markuplift is the CLI front end for the markuplift pretty-printer:
// flag parsing and wiring only, no formatting logic of its own. It wires a
// root cobra.Command with a single "format" subcommand, using a Config-style
// flag struct rather than ad hoc package-level flag vars.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"charm.land/log/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	ml "github.com/markuplift/markuplift"
	"github.com/markuplift/markuplift/mlcli"
	"github.com/markuplift/markuplift/predicate/xpathmatch"
)

type flags struct {
	output      string
	block       []string
	inline      []string
	normalize   []string
	preserve    []string
	strip       []string
	wrap        []string
	textFormat  []string
	indentSize  int
	defaultType string
	xmlDecl     bool
	doctype     string
}

func main() {
	logger := log.New(os.Stderr)

	var f flags
	rootCmd := &cobra.Command{
		Use:           "markuplift",
		Short:         "Pretty-print XML and HTML5 documents",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	formatCmd := &cobra.Command{
		Use:   "format [flags] <file|->",
		Short: "Format a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args[0], &f, &mlcli.Logger{Target: logger.Slog()})
		},
	}
	registerFlags(formatCmd.Flags(), &f)
	rootCmd.AddCommand(formatCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("markuplift", "error", err)
		os.Exit(1)
	}
}

func registerFlags(fs *pflag.FlagSet, f *flags) {
	fs.StringVarP(&f.output, "output", "o", "-", "output file path (- for stdout)")
	fs.StringArrayVar(&f.block, "block", nil, "tag treated as block (repeatable, OR-combined)")
	fs.StringArrayVar(&f.inline, "inline", nil, "tag treated as inline (repeatable, OR-combined)")
	fs.StringArrayVar(&f.normalize, "normalize-whitespace", nil, "tag whose text gets whitespace normalized (repeatable)")
	fs.StringArrayVar(&f.preserve, "preserve-whitespace", nil, "tag whose text is preserved verbatim (repeatable)")
	fs.StringArrayVar(&f.strip, "strip-whitespace", nil, "tag whose leading/trailing whitespace is stripped (repeatable)")
	fs.StringArrayVar(&f.wrap, "wrap-attributes", nil, "tag whose attributes are wrapped one per line (repeatable)")
	fs.StringArrayVar(&f.textFormat, "text-formatter", nil, "XPATH COMMAND: pipe matching elements' text through an external command (repeatable)")
	fs.IntVar(&f.indentSize, "indent-size", 2, "spaces per indentation level")
	fs.StringVar(&f.defaultType, "default-type", "block", "default element type: block or inline")
	fs.BoolVar(&f.xmlDecl, "xml-declaration", false, "emit a leading <?xml ... ?> declaration")
	fs.StringVar(&f.doctype, "doctype", "", "override the document's DOCTYPE line")
}

func runFormat(cmd *cobra.Command, input string, f *flags, logger *mlcli.Logger) error {
	cfg, err := buildConfig(f, logger)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	formatter, err := ml.Html5Formatter(cfg)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	var source []byte
	if input == "-" {
		source, err = io.ReadAll(cmd.InOrStdin())
	} else {
		source, err = os.ReadFile(input)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var doctype *string
	if cmd.Flags().Changed("doctype") {
		doctype = &f.doctype
	}

	out, err := formatter.FormatBytes(source, doctype, f.xmlDecl)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	if f.output == "" || f.output == "-" {
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	}
	return os.WriteFile(f.output, []byte(out), 0o644)
}

// buildConfig translates repeated predicate flags (OR-combined per tag set)
// and --text-formatter pairs into a markuplift.Config.
func buildConfig(f *flags, logger *mlcli.Logger) (ml.Config, error) {
	var cfg ml.Config
	cfg.IndentSize = f.indentSize

	switch f.defaultType {
	case "block", "":
		cfg.DefaultType = ml.TypeBlock
	case "inline":
		cfg.DefaultType = ml.TypeInline
	default:
		return cfg, fmt.Errorf("--default-type must be block or inline, got %q", f.defaultType)
	}

	var err error
	if cfg.BlockWhen, err = tagFactory(f.block); err != nil {
		return cfg, err
	}
	if cfg.InlineWhen, err = tagFactory(f.inline); err != nil {
		return cfg, err
	}
	if cfg.NormalizeWhitespaceWhen, err = tagFactory(f.normalize); err != nil {
		return cfg, err
	}
	if cfg.PreserveWhitespaceWhen, err = tagFactory(f.preserve); err != nil {
		return cfg, err
	}
	if cfg.StripWhitespaceWhen, err = tagFactory(f.strip); err != nil {
		return cfg, err
	}
	if cfg.WrapAttributesWhen, err = tagFactory(f.wrap); err != nil {
		return cfg, err
	}

	for _, spec := range f.textFormat {
		rule, err := parseTextFormatter(spec, logger)
		if err != nil {
			return cfg, err
		}
		cfg.ReformatTextWhen = append(cfg.ReformatTextWhen, rule)
	}

	return cfg, nil
}

func tagFactory(tags []string) (ml.ElementPredicateFactory, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	vals := make([]any, len(tags))
	for i, t := range tags {
		vals[i] = t
	}
	return ml.TagIn(vals...)
}

// parseTextFormatter splits a "XPATH COMMAND" flag value on the first space
// and builds a TextFormatterRule that pipes matching elements' text through
// the external command. Command failures degrade gracefully: the original
// text is kept and a warning is logged, never a hard failure.
func parseTextFormatter(spec string, logger *mlcli.Logger) (ml.TextFormatterRule, error) {
	parts := strings.SplitN(spec, " ", 2)
	if len(parts) != 2 {
		return ml.TextFormatterRule{}, fmt.Errorf("--text-formatter expects \"XPATH COMMAND\", got %q", spec)
	}
	xpathExpr, command := parts[0], parts[1]

	matches, err := xpathmatch.Matches(xpathExpr)
	if err != nil {
		return ml.TextFormatterRule{}, fmt.Errorf("--text-formatter xpath %q: %w", xpathExpr, err)
	}

	return ml.TextFormatterRule{
		When: matches,
		Transform: func(content ml.Content, _ *ml.Formatter, _ int) ml.Content {
			if content.CDATA {
				return content
			}
			out, err := runExternalFormatter(command, content.Data)
			if err != nil {
				logger.L().Warn("text-formatter command failed, keeping original text", "command", command, "error", err)
				return content
			}
			content.Data = out
			return content
		},
	}, nil
}

func runExternalFormatter(command, input string) (string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty command")
	}
	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Stdin = strings.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s", err, stderr.String())
	}
	return stdout.String(), nil
}
