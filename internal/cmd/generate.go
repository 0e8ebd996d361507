package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	oerrors "github.com/opmodel/opponentgen/internal/errors"
	"github.com/opmodel/opponentgen/internal/generator"
	"github.com/opmodel/opponentgen/internal/output"
)

// fileSystem is the filesystem generation writes through. Tests swap it.
var fileSystem afero.Fs = afero.NewOsFs()

// parseCount returns the count positional argument, or the default when absent.
func parseCount(args []string) (int, error) {
	if len(args) == 0 {
		return generator.DefaultCount, nil
	}

	count, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("count %q is not an integer", args[0]),
			Field:   "count",
			Hint:    "Pass a non-negative integer, or omit it to generate 10 pairs.",
			Cause:   oerrors.ErrValidation,
		}
	}
	if count < 0 {
		return 0, oerrors.NewValidationError(
			fmt.Sprintf("count must be a non-negative integer, got %d", count),
			"", "count", "")
	}
	return count, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	count, err := parseCount(args)
	if err != nil {
		return NewExitError(err, ExitValidationError)
	}

	settings := GetSettings()
	format := output.ParseOutputFormat(settings.Output.Value)
	if !format.IsValid() {
		return NewExitError(oerrors.NewValidationError(
			fmt.Sprintf("unknown output format: %s", settings.Output.Value),
			"", "output",
			fmt.Sprintf("Valid formats: %s", strings.Join(output.ValidFormats(), ", "))),
			ExitValidationError)
	}

	gen := generator.NewGenerator(fileSystem, generator.Options{
		Dir:      settings.Dir.Value,
		Template: settings.Template(),
	})

	var result *generator.Result
	err = output.RunWithSpinner(cmd.Context(), func() error {
		var genErr error
		result, genErr = gen.Generate(count)
		return genErr
	}, output.WithTitle(fmt.Sprintf("Generating %d opponent pairs", count)))
	if err != nil {
		if result != nil && len(result.Pairs) > 0 {
			output.Warn("generation aborted, earlier pairs were kept", "pairs", len(result.Pairs))
		}
		return NewExitError(err, ExitCodeFromError(err))
	}

	output.Debug("generation complete", "pairs", len(result.Pairs), "overwritten", len(result.Overwritten()))

	return writeReport(cmd.OutOrStdout(), format, result)
}

// writeReport renders result to w in the given format.
func writeReport(w io.Writer, format output.OutputFormat, result *generator.Result) error {
	if format != output.FormatText {
		return output.WriteStructured(w, format, result)
	}

	dir := result.Dir
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	if len(result.Pairs) == 0 {
		fmt.Fprintf(w, "Nothing to generate in %s\n", output.StyleNoun.Render(dir))
		return nil
	}

	fmt.Fprintln(w, output.FormatCheckmark(output.StyleSummary.Render(
		fmt.Sprintf("Generated %d opponent pairs in %s", len(result.Pairs), dir))))

	for _, pair := range result.Pairs {
		for _, name := range []string{pair.Header, pair.Impl} {
			status := output.StatusCreated
			if pair.IsOverwritten(name) {
				status = output.StatusOverwritten
			}
			fmt.Fprintln(w, "  "+output.FormatFileLine(name, status))
		}
	}
	return nil
}
