package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer
	ErrOut io.Writer
}

// NewFormatter reads the --json and --quiet flags of cmd and writes to its
// configured streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// HumanReadable is implemented by results with a custom terminal rendering
type HumanReadable interface {
	Human() string
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		switch v := data.(type) {
		case interface{ GetID() string }:
			_, err := fmt.Fprintln(f.out(), v.GetID())
			return err
		case interface{ GetIDs() []string }:
			for _, id := range v.GetIDs() {
				if _, err := fmt.Fprintln(f.out(), id); err != nil {
					return err
				}
			}
			return nil
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.errOut(), "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns it wrapped with its exit code
func (f *OutputFormatter) Fail(err error) error {
	code, exit, suggestion := Classify(err)
	_ = f.ErrorWithSuggestion(code, err.Error(), suggestion)
	return &ExitError{Code: exit, Err: err}
}

// FailUsage reports a usage problem
func (f *OutputFormatter) FailUsage(err error) error {
	_ = f.Error("USAGE_ERROR", err.Error())
	return &ExitError{Code: ExitUsage, Err: err}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if h, ok := data.(HumanReadable); ok {
		// downsamples colors to what the writer supports
		_, err := lipgloss.Fprintln(f.out(), h.Human())
		return err
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}
