// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatPoint].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/ecccalc/internal/curve"
	"github.com/agbru/ecccalc/internal/orchestration"
	"github.com/agbru/ecccalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode prints only the result.
	Quiet bool
	// Verbose shows full coordinates.
	Verbose bool
	// Details adds the result analysis section.
	Details bool
}

// FormatPoint renders p as "x y" in affine decimal coordinates, or
// "infinity" for the identity.
func FormatPoint(p curve.Point) string {
	x, y, err := p.Affine()
	if err != nil {
		return "infinity"
	}
	return x.String() + " " + y.String()
}

// WriteResultToFile writes a scalar multiplication result to a file,
// creating parent directories as needed.
//
// Parameters:
//   - result: The strategy result holding k·P.
//   - opts: The curve name and the scalar.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result orchestration.CalculationResult, opts orchestration.PresentationOptions, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	fmt.Fprintf(file, "# Scalar Multiplication Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Curve: %s\n", opts.Curve)
	fmt.Fprintf(file, "# Strategy: %s\n", result.Name)
	fmt.Fprintf(file, "# Duration: %s\n", result.Duration)
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "k = %s\n", opts.Scalar)
	if x, y, err := result.Result.Affine(); err != nil {
		fmt.Fprintf(file, "k·P = infinity\n")
	} else {
		fmt.Fprintf(file, "x = %s\ny = %s\n", x, y)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// WriteValueToFile writes a plain value, such as the result of a numeric
// operation, followed by a newline.
func WriteValueToFile(path, value string) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(value+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single line suitable for scripting.
func FormatQuietResult(result orchestration.CalculationResult) string {
	return FormatPoint(result.Result)
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, result orchestration.CalculationResult) {
	fmt.Fprintln(out, FormatQuietResult(result))
}

// DisplayResultWithConfig displays a result with the given output configuration.
// It handles quiet and standard display as well as file output.
//
// Parameters:
//   - out: The output writer.
//   - result: The strategy result holding k·P.
//   - opts: Presentation options; Verbose and Details are taken from config.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, result orchestration.CalculationResult, opts orchestration.PresentationOptions, config OutputConfig) error {
	opts.Verbose, opts.Details = config.Verbose, config.Details
	if config.Quiet {
		DisplayQuietResult(out, result)
	} else {
		DisplayResult(result, opts, out)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(result, opts, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
