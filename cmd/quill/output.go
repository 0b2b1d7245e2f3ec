package main

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"github.com/quill-lang/quill"
	"github.com/quill-lang/quill/errors"
	"github.com/quill-lang/quill/object"
)

// printResult writes an evaluation result in the configured output format.
func printResult(w io.Writer, result object.Object) error {
	switch format := strings.ToLower(viper.GetString("output")); format {
	case "", "text":
		fmt.Fprintln(w, result.Inspect())
		return nil
	case "json":
		// Error values wrap a Go error, which does not marshal usefully;
		// emit the message instead.
		if errObj, err := object.AsError(result); err == nil {
			return printJSON(w, map[string]any{
				"value": errObj.Message().Value(),
				"type":  string(errObj.Type()),
			})
		}
		return printJSON(w, map[string]any{
			"value": result.Interface(),
			"type":  string(result.Type()),
		})
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// printDocs writes type and global-function documentation as a readable
// listing, or as JSON when that output format is selected.
func printDocs(w io.Writer, types []quill.TypeDoc, globals []object.FuncSpec) error {
	if strings.ToLower(viper.GetString("output")) == "json" {
		if globals == nil {
			return printJSON(w, types)
		}
		return printJSON(w, map[string]any{
			"types":   types,
			"globals": globals,
		})
	}
	heading := color.New(color.FgCyan, color.Bold)
	for _, doc := range types {
		heading.Fprintln(w, doc.Name)
		for _, m := range doc.Methods {
			params := append([]string{}, m.Args...)
			for _, opt := range m.OptArgs {
				params = append(params, opt+"?")
			}
			sig := m.Name + "(" + strings.Join(params, ", ") + ")"
			if m.Returns != "" {
				sig += " -> " + m.Returns
			}
			fmt.Fprintf(w, "  %s\n", sig)
			if m.Doc != "" {
				fmt.Fprintf(w, "      %s\n", m.Doc)
			}
		}
		fmt.Fprintln(w)
	}
	if len(globals) > 0 {
		heading.Fprintln(w, "globals")
		for _, spec := range globals {
			sig := spec.Name + "(" + strings.Join(spec.Args, ", ") + ")"
			if spec.Returns != "" {
				sig += " -> " + spec.Returns
			}
			fmt.Fprintf(w, "  %s\n", sig)
			if spec.Doc != "" {
				fmt.Fprintf(w, "      %s\n", spec.Doc)
			}
			if spec.Example != "" {
				fmt.Fprintf(w, "      e.g. %s\n", spec.Example)
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}

func printJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// formatEvalError renders an evaluation error. Syntax errors include the
// offending source line with a caret under the error position; in JSON
// mode the error is emitted as a JSON object instead.
func formatEvalError(w io.Writer, err error) error {
	if strings.ToLower(viper.GetString("output")) == "json" {
		out := map[string]any{"error": err.Error()}
		var syntaxErr *errors.SyntaxError
		if goerrors.As(err, &syntaxErr) {
			out["line"] = syntaxErr.Location.Line
			out["column"] = syntaxErr.Location.Column
			if syntaxErr.Location.Filename != "" {
				out["filename"] = syntaxErr.Location.Filename
			}
		}
		if jsonErr := printJSON(w, out); jsonErr != nil {
			return jsonErr
		}
		return err
	}

	var syntaxErr *errors.SyntaxError
	if goerrors.As(err, &syntaxErr) && syntaxErr.Location.Source != "" {
		loc := syntaxErr.Location
		var sb strings.Builder
		sb.WriteString(err.Error())
		sb.WriteString("\n\n")
		sb.WriteString(loc.Source)
		sb.WriteString("\n")
		if loc.Column > 0 {
			sb.WriteString(strings.Repeat(" ", loc.Column-1))
		}
		sb.WriteString(color.New(color.FgRed).Sprint("^"))
		return goerrors.New(sb.String())
	}
	return err
}
