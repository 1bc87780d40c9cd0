package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/agbru/ecccalc/internal/config"
	"github.com/agbru/ecccalc/internal/format"
	"github.com/agbru/ecccalc/internal/orchestration"
	"github.com/agbru/ecccalc/internal/sysmon"
	"github.com/agbru/ecccalc/internal/ui"
)

// cpuFeatures lists the instruction set extensions relevant to multi-word
// arithmetic that the host advertises.
func cpuFeatures() string {
	var feats []string
	switch runtime.GOARCH {
	case "amd64", "386":
		for _, f := range []struct {
			name string
			ok   bool
		}{
			{"ADX", cpu.X86.HasADX},
			{"BMI2", cpu.X86.HasBMI2},
			{"AVX2", cpu.X86.HasAVX2},
			{"AVX512F", cpu.X86.HasAVX512F},
		} {
			if f.ok {
				feats = append(feats, f.name)
			}
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			feats = append(feats, "ASIMD")
		}
		if cpu.ARM64.HasPMULL {
			feats = append(feats, "PMULL")
		}
	}
	if len(feats) == 0 {
		return "none detected"
	}
	return strings.Join(feats, ", ")
}

// sampleSystem is replaced in tests.
var sampleSystem = sysmon.Sample

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the operation and its operands, the timeout and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Operation %s%s%s", ui.ColorMagenta(), cfg.Op, ui.ColorReset())
	if cfg.Op == config.OpScalarMult || cfg.Op == config.OpVerify {
		fmt.Fprintf(out, " on curve %s%s%s", ui.ColorCyan(), cfg.Curve, ui.ColorReset())
	}
	fmt.Fprintf(out, " with a timeout of %s%s%s.\n", ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "CPU features: %s%s%s.\n", ui.ColorCyan(), cpuFeatures(), ui.ColorReset())
	if load := sampleSystem(); load.Available {
		fmt.Fprintf(out, "System load: CPU %s%.1f%%%s, memory %s%.1f%%%s of %s used.\n",
			ui.ColorCyan(), load.CPUPercent, ui.ColorReset(),
			ui.ColorCyan(), load.MemPercent, ui.ColorReset(), format.FormatBytes(load.MemTotal))
	}
	if scalars := cfg.Scalars(); len(scalars) > 1 {
		fmt.Fprintf(out, "Batch: %s%d%s scalars on %s%d%s workers.\n",
			ui.ColorCyan(), len(scalars), ui.ColorReset(), ui.ColorCyan(), cfg.EffectiveWorkers(), ui.ColorReset())
	}
}

// PrintExecutionMode displays the execution mode (single strategy vs comparison).
//
// Parameters:
//   - multipliers: The strategies that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(multipliers []orchestration.Multiplier, out io.Writer) {
	var modeDesc string
	switch len(multipliers) {
	case 0:
		modeDesc = "No strategy selected"
	case 1:
		modeDesc = fmt.Sprintf("Single multiplication with the %s%s%s strategy",
			ui.ColorGreen(), multipliers[0].Name(), ui.ColorReset())
	default:
		modeDesc = fmt.Sprintf("Parallel comparison of %d strategies", len(multipliers))
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
