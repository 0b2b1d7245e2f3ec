package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quill-lang/quill"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func fatal(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "error: %s\n", err)
	os.Exit(1)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quill [expression]",
		Short: "Evaluate Quill value expressions",
		Long: `Quill evaluates value expressions: tuples, lists, scalars, and
method calls on them. The expression may be passed as an argument,
via -c, or on stdin with --stdin.

Examples:
  quill '(1, -1, 99, 42).sort_copy()'
  quill -c '(99, -1, 42).get(5, "abc")'
  echo '(1, 2, 3).to_list()' | quill --stdin`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
			if viper.GetBool("no-color") {
				color.NoColor = true
			}
		},
		RunE: runEval,
	}

	flags := root.PersistentFlags()
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("verbose", false, "Enable verbose diagnostics on stderr")
	flags.StringP("output", "o", "text", "Output format (text or json)")

	root.Flags().StringP("code", "c", "", "Expression to evaluate")
	root.Flags().Bool("stdin", false, "Read the expression from stdin")
	root.Flags().Bool("no-default-globals", false, "Disable the default global functions")

	viper.BindPFlags(flags)
	viper.BindPFlag("stdin", root.Flags().Lookup("stdin"))
	viper.BindPFlag("no-default-globals", root.Flags().Lookup("no-default-globals"))
	viper.BindEnv("no-color", "NO_COLOR")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newDocsCmd())
	return root
}

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs [type]",
		Short: "Show documentation for built-in types and their methods",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				doc, ok := quill.TypeDocFor(args[0])
				if !ok {
					return fmt.Errorf("unknown type: %s", args[0])
				}
				return printDocs(cmd.OutOrStdout(), []quill.TypeDoc{doc}, nil)
			}
			return printDocs(cmd.OutOrStdout(), quill.Docs(), quill.GlobalDocs())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetString("output") == "json" {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"version": version,
					"commit":  commit,
					"date":    date,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

func setupLogging() {
	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    viper.GetBool("no-color"),
	}
	log.Logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func runEval(cmd *cobra.Command, args []string) error {
	expr, filename, err := getExpression(cmd, args)
	if err != nil {
		return err
	}
	log.Debug().Str("filename", filename).Int("bytes", len(expr)).Msg("evaluating")

	var opts []quill.Option
	if filename != "" {
		opts = append(opts, quill.WithFilename(filename))
	}
	if viper.GetBool("no-default-globals") {
		opts = append(opts, quill.WithoutDefaultGlobals())
	}
	result, err := quill.Eval(cmd.Context(), expr, opts...)
	if err != nil {
		return formatEvalError(cmd.OutOrStdout(), err)
	}
	return printResult(cmd.OutOrStdout(), result)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal(err)
	}
}
