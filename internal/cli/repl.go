package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/agbru/ecccalc/internal/bignum"
	"github.com/agbru/ecccalc/internal/curve"
	"github.com/agbru/ecccalc/internal/format"
	"github.com/agbru/ecccalc/internal/montgomery"
	"github.com/agbru/ecccalc/internal/orchestration"
	"github.com/agbru/ecccalc/internal/progress"
	"github.com/agbru/ecccalc/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// DefaultAlgo is the strategy used by "mul"; "all" or empty picks the
	// first registered one.
	DefaultAlgo string
	// Curve is the initial curve name.
	Curve string
	// Timeout is the maximum duration for each command.
	Timeout time.Duration
	// Cache is shared by every curve and modular operation of the session.
	Cache *montgomery.Cache
}

// REPL is an interactive calculator session over the registered
// multiplication strategies.
type REPL struct {
	config      REPLConfig
	registry    *orchestration.Registry
	currentAlgo string
	curve       *curve.Curve
	in          io.Reader
	out         io.Writer
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - registry: The available strategies.
//   - config: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
//   - error: An error if the initial curve is unknown.
func NewREPL(registry *orchestration.Registry, config REPLConfig) (*REPL, error) {
	currentAlgo := config.DefaultAlgo
	if currentAlgo == "" || currentAlgo == "all" {
		if names := registry.List(); len(names) > 0 {
			currentAlgo = names[0]
		}
	}

	r := &REPL{
		config:      config,
		registry:    registry,
		currentAlgo: currentAlgo,
		in:          os.Stdin,
		out:         os.Stdout,
	}
	if err := r.useCurve(config.Curve); err != nil {
		return nil, err
	}
	return r, nil
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

func (r *REPL) useCurve(name string) error {
	params, ok := curve.LookupParams(name)
	if !ok {
		return fmt.Errorf("unknown curve %q (available: %s)", name, strings.Join(curve.ParamNames(), ", "))
	}
	c, err := curve.NewCurve(params, r.config.Cache)
	if err != nil {
		return err
	}
	r.curve = c
	return nil
}

// Start runs the read-eval-print loop until "exit" or end of input.
func (r *REPL) Start() {
	fmt.Fprintln(r.out, ui.RenderBanner("ecccalc · interactive mode"))
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, ui.ColorGreen()+r.curve.Name()+"> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if input = strings.TrimSpace(input); input != "" && !r.processCommand(input) {
			return
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
			} else {
				r.errorf("Read error: %v", err)
			}
			return
		}
	}
}

// commandContext bounds a command by the configured timeout, if any.
func (r *REPL) commandContext() (context.Context, context.CancelFunc) {
	if r.config.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), r.config.Timeout)
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, line := range [][2]string{
		{"mul <k>", "Compute k·G with the current strategy"},
		{"compare <k>", "Compute k·G with every strategy"},
		{"verify <x> <y>", "Check that (x, y) is a point of the group"},
		{"curve <name>", "Change curve (" + strings.Join(curve.ParamNames(), ", ") + ")"},
		{"algo <name>", "Change strategy (" + strings.Join(r.registry.List(), ", ") + ")"},
		{"<op> <args>", "Numeric operation: add, sub, mul, div, mod, gcd a b; inverse a m; modmul/modexp a b m"},
		{"list", "List available strategies"},
		{"status", "Display current configuration"},
		{"help", "Display this help"},
		{"exit", "Exit interactive mode"},
	} {
		fmt.Fprintf(r.out, "  %s%s%s - %s\n", ui.ColorYellow(), padRight(line[0], 15-len(line[0])), ui.ColorReset(), line[1])
	}
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "mul", "m":
		// "mul a b" is integer multiplication; "mul k" is a scalar multiplication.
		if len(args) == 2 {
			r.cmdNumeric("mul", args)
		} else {
			r.cmdMul(args)
		}
	case "compare", "cmp":
		r.cmdCompare(args)
	case "verify":
		r.cmdVerify(args)
	case "curve":
		r.cmdCurve(args)
	case "algo", "a":
		r.cmdAlgo(args)
	case "list", "ls":
		r.cmdList()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		switch {
		case orchestration.IsNumericOperation(cmd):
			r.cmdNumeric(cmd, args)
		case len(args) == 0 && isDecimal(cmd):
			r.cmdMul([]string{cmd})
		default:
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}
	return true
}

func isDecimal(s string) bool {
	_, err := bignum.ParseNat(s)
	return err == nil
}

func (r *REPL) errorf(format string, args ...any) {
	fmt.Fprintf(r.out, "%s%s%s\n", ui.ColorRed(), fmt.Sprintf(format, args...), ui.ColorReset())
}

func (r *REPL) parseScalar(cmd string, args []string) (bignum.Nat, bool) {
	if len(args) != 1 {
		r.errorf("Usage: %s <k>", cmd)
		return bignum.Nat{}, false
	}
	k, err := bignum.ParseNat(args[0])
	if err != nil {
		r.errorf("Invalid scalar: %v", err)
		return bignum.Nat{}, false
	}
	return k, true
}

// cmdMul computes k·G with the current strategy.
func (r *REPL) cmdMul(args []string) {
	k, ok := r.parseScalar("mul", args)
	if !ok {
		return
	}
	m, err := r.registry.Get(r.currentAlgo)
	if err != nil {
		r.errorf("%v", err)
		return
	}

	ctx, cancel := r.commandContext()
	defer cancel()

	progressChan := make(chan progress.ProgressUpdate, 10)
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, progressChan, 1, r.out)

	start := time.Now()
	result, err := m.Multiply(ctx, r.curve.Generator(), k, progress.ChannelCallback(progressChan, 0))
	duration := time.Since(start)
	close(progressChan)
	wg.Wait()

	if err != nil {
		r.errorf("Error: %v", err)
		return
	}
	DisplayResult(orchestration.CalculationResult{Name: m.Name(), Result: result, Duration: duration},
		orchestration.PresentationOptions{Curve: r.curve.Name(), Scalar: k.String()}, r.out)
	fmt.Fprintln(r.out)
}

// cmdCompare runs every strategy on k·G and checks that they agree.
func (r *REPL) cmdCompare(args []string) {
	k, ok := r.parseScalar("compare", args)
	if !ok {
		return
	}

	ctx, cancel := r.commandContext()
	defer cancel()

	results := orchestration.ExecuteMultiplications(ctx, r.registry.GetAll(), r.curve.Generator(), k,
		orchestration.NullProgressReporter{}, io.Discard)

	fmt.Fprintf(r.out, "\n%sComparison for k = %s on %s:%s\n", ui.ColorBold(), k, r.curve.Name(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())

	var first *orchestration.CalculationResult
	for i := range results {
		res := &results[i]
		if res.Err != nil {
			fmt.Fprintf(r.out, "  %s%-20s%s: %sError - %v%s\n",
				ui.ColorYellow(), res.Name, ui.ColorReset(), ui.ColorRed(), res.Err, ui.ColorReset())
			continue
		}
		if first == nil {
			first = res
		}
		status := ui.ColorGreen() + "✓" + ui.ColorReset()
		if !res.Result.Equal(first.Result) {
			status = ui.ColorRed() + "✗ INCONSISTENT" + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "  %s%-20s%s: %s%12s%s %s\n",
			ui.ColorYellow(), res.Name, ui.ColorReset(),
			ui.ColorCyan(), format.FormatExecutionDuration(res.Duration), ui.ColorReset(), status)
	}
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())
	if first != nil {
		fmt.Fprintf(r.out, "  k·G = %s%s%s\n", ui.ColorGreen(), first.Result, ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

// cmdVerify checks a point against the current curve.
func (r *REPL) cmdVerify(args []string) {
	if len(args) != 2 {
		r.errorf("Usage: verify <x> <y>")
		return
	}
	if _, err := orchestration.VerifyPoint(r.curve, args[0], args[1]); err != nil {
		r.errorf("✗ Invalid point: %v", err)
		return
	}
	fmt.Fprintf(r.out, "%s✓ Valid point of %s%s\n", ui.ColorGreen(), r.curve.Name(), ui.ColorReset())
}

// cmdNumeric evaluates an integer or modular operation.
func (r *REPL) cmdNumeric(op string, args []string) {
	var in orchestration.Operands
	switch op {
	case "inverse":
		if len(args) != 2 {
			r.errorf("Usage: inverse <a> <m>")
			return
		}
		in = orchestration.Operands{A: args[0], M: args[1]}
	case "modmul", "modexp":
		if len(args) != 3 {
			r.errorf("Usage: %s <a> <b> <m>", op)
			return
		}
		in = orchestration.Operands{A: args[0], B: args[1], M: args[2]}
	default:
		if len(args) != 2 {
			r.errorf("Usage: %s <a> <b>", op)
			return
		}
		in = orchestration.Operands{A: args[0], B: args[1]}
	}

	result, err := orchestration.Evaluate(op, in, r.config.Cache)
	if err != nil {
		r.errorf("Error: %v", err)
		return
	}
	fmt.Fprintf(r.out, "  = %s%s%s\n", ui.ColorGreen(), result, ui.ColorReset())
}

// cmdCurve switches the active curve.
func (r *REPL) cmdCurve(args []string) {
	if len(args) != 1 {
		r.errorf("Usage: curve <name>")
		fmt.Fprintf(r.out, "Available curves: %s\n", strings.Join(curve.ParamNames(), ", "))
		return
	}
	if err := r.useCurve(strings.ToLower(args[0])); err != nil {
		r.errorf("%v", err)
		return
	}
	fmt.Fprintf(r.out, "Curve changed to: %s%s%s\n", ui.ColorGreen(), r.curve.Name(), ui.ColorReset())
}

// cmdAlgo handles the "algo" command.
func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		r.errorf("Usage: algo <name>")
		fmt.Fprintf(r.out, "Available strategies: %s\n", strings.Join(r.registry.List(), ", "))
		return
	}

	name := strings.ToLower(args[0])
	if _, err := r.registry.Get(name); err != nil {
		r.errorf("Unknown strategy: %s", name)
		fmt.Fprintf(r.out, "Available strategies: %s\n", strings.Join(r.registry.List(), ", "))
		return
	}

	r.currentAlgo = name
	fmt.Fprintf(r.out, "Strategy changed to: %s%s%s\n", ui.ColorGreen(), name, ui.ColorReset())
}

// cmdList handles the "list" command.
func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable strategies:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, name := range r.registry.List() {
		marker := "  "
		if name == r.currentAlgo {
			marker = ui.ColorGreen() + "► " + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "%s%s%s%s\n", marker, ui.ColorYellow(), name, ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	cached := 0
	if r.config.Cache != nil {
		cached = r.config.Cache.Len()
	}
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Strategy:       %s%s%s\n", ui.ColorCyan(), r.currentAlgo, ui.ColorReset())
	fmt.Fprintf(r.out, "  Curve:          %s%s%s (%d bits)\n", ui.ColorCyan(), r.curve.Name(), ui.ColorReset(), r.curve.Params().P.BitLen())
	fmt.Fprintf(r.out, "  Timeout:        %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Cached moduli:  %s%d%s\n", ui.ColorCyan(), cached, ui.ColorReset())
	fmt.Fprintln(r.out)
}
