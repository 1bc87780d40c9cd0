// Package config parses the command line and environment into an AppConfig.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/ecccalc/internal/curve"
	apperrors "github.com/agbru/ecccalc/internal/errors"
)

// EnvPrefix prefixes every environment variable read by the application.
const EnvPrefix = "ECCCALC_"

// Operation names accepted by -op.
const (
	OpAdd        = "add"
	OpSub        = "sub"
	OpMul        = "mul"
	OpDiv        = "div"
	OpMod        = "mod"
	OpGCD        = "gcd"
	OpInverse    = "inverse"
	OpModMul     = "modmul"
	OpModExp     = "modexp"
	OpScalarMult = "scalarmult"
	OpVerify     = "verify"
)

// operandRequirements lists the operands each operation needs.
var operandRequirements = map[string][]string{
	OpAdd:        {"a", "b"},
	OpSub:        {"a", "b"},
	OpMul:        {"a", "b"},
	OpDiv:        {"a", "b"},
	OpMod:        {"a", "b"},
	OpGCD:        {"a", "b"},
	OpInverse:    {"a", "m"},
	OpModMul:     {"a", "b", "m"},
	OpModExp:     {"a", "b", "m"},
	OpScalarMult: {"k"},
	OpVerify:     {"a", "b"},
}

// Operations returns the supported operation names in sorted order.
func Operations() []string {
	ops := make([]string, 0, len(operandRequirements))
	for op := range operandRequirements {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}

// GCModes returns the values accepted by -gc.
func GCModes() []string {
	return []string{"aggressive", "auto", "disabled"}
}

// AppConfig holds the resolved application settings.
type AppConfig struct {
	Op    string
	A     string
	B     string
	M     string
	K     string
	Curve string
	Algo  string

	Timeout time.Duration
	Workers int
	GCMode  string

	Quiet      bool
	Verbose    bool
	Details    bool
	OutputFile string
	Metrics    bool
	LogLevel   string
	NoColor    bool

	REPL       bool
	Completion string
}

// Scalars splits K on commas, dropping blanks.
func (c AppConfig) Scalars() []string {
	var out []string
	for _, s := range strings.Split(c.K, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Operand returns the raw value of the named operand flag.
func (c AppConfig) Operand(name string) string {
	switch name {
	case "a":
		return c.A
	case "b":
		return c.B
	case "m":
		return c.M
	case "k":
		return c.K
	}
	return ""
}

// ParseConfig parses args (without the program name) into an AppConfig,
// then applies ECCCALC_* environment overrides for flags left unset, then
// validates the result. flag.ErrHelp is returned unchanged.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	fs.StringVar(&cfg.Op, "op", OpScalarMult, "Operation: "+strings.Join(Operations(), ", ")+".")
	fs.StringVar(&cfg.A, "a", "", "First operand (decimal).")
	fs.StringVar(&cfg.B, "b", "", "Second operand (decimal).")
	fs.StringVar(&cfg.M, "m", "", "Modulus (decimal).")
	fs.StringVar(&cfg.K, "k", "", "Scalar(s) for scalarmult, comma separated.")
	fs.StringVar(&cfg.Curve, "curve", curve.P256.Name, "Curve: "+strings.Join(curve.ParamNames(), ", ")+".")
	fs.StringVar(&cfg.Algo, "algo", "all", fmt.Sprintf("Scalar multiplication strategy: 'all' or one of %v.", availableAlgos))
	fs.DurationVar(&cfg.Timeout, "timeout", time.Minute, "Maximum execution time.")
	fs.IntVar(&cfg.Workers, "workers", 0, "Parallel workers for scalar batches (0 = auto).")
	fs.StringVar(&cfg.GCMode, "gc", "auto", "Garbage collector control during batches: "+strings.Join(GCModes(), ", ")+".")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only the result.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for -quiet.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Print full values.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for -verbose.")
	fs.BoolVar(&cfg.Details, "details", false, "Print timing and allocation details.")
	fs.BoolVar(&cfg.Details, "d", false, "Shorthand for -details.")
	fs.StringVar(&cfg.OutputFile, "output", "", "Write the result to this file.")
	fs.StringVar(&cfg.OutputFile, "o", "", "Shorthand for -output.")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "Dump Prometheus metrics after the run.")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error, disabled.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&cfg.REPL, "repl", false, "Start the interactive calculator.")
	fs.StringVar(&cfg.Completion, "completion", "", "Print a completion script: bash, zsh, fish, powershell.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for semantic errors. Operand syntax is
// checked later, when the operands are parsed.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("workers must be >= 0, got %d", c.Workers)
	}
	if !slices.Contains(GCModes(), c.GCMode) {
		return apperrors.NewConfigError("invalid gc mode %q (available: %s)", c.GCMode, strings.Join(GCModes(), ", "))
	}
	if c.Algo != "all" && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unknown algorithm %q (available: all, %s)", c.Algo, strings.Join(availableAlgos, ", "))
	}
	if _, ok := curve.LookupParams(c.Curve); !ok {
		return apperrors.NewConfigError("unknown curve %q (available: %s)", c.Curve, strings.Join(curve.ParamNames(), ", "))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid log level %q", c.LogLevel)
	}
	if c.REPL || c.Completion != "" {
		return nil
	}

	required, ok := operandRequirements[c.Op]
	if !ok {
		return apperrors.NewConfigError("unknown operation %q (available: %s)", c.Op, strings.Join(Operations(), ", "))
	}
	for _, name := range required {
		if strings.TrimSpace(c.Operand(name)) == "" {
			return apperrors.NewConfigError("operation %q requires -%s", c.Op, name)
		}
	}
	return nil
}
