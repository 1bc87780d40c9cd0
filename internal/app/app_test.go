package app

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/ecccalc/internal/errors"
	"github.com/agbru/ecccalc/internal/logging"
)

const (
	p256Gx  = "48439561293906451759052585252797914202762949526041747995844080717082404635286"
	p256Gy  = "36134250956749795798585127919587881956611106672985015071877198253568414405109"
	p256G2x = "56515219790691171413109057904011688695424810155802929973526481321309856242040"
	p256G2y = "3377031843712258259223711451491452598088675519751548567112458094635497583569"
)

// run builds an Application from args and returns its exit code and output.
func run(t *testing.T, stdin string, args ...string) (int, string) {
	t.Helper()
	var errBuf bytes.Buffer
	a, err := New(append([]string{"ecccalc", "-no-color"}, args...), &errBuf,
		WithLogger(logging.NewStdLoggerAdapter(log.New(io.Discard, "", 0))),
		WithInput(strings.NewReader(stdin)))
	require.NoError(t, err, errBuf.String())

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	return code, out.String()
}

func TestRunNumericOperations(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"-op", "add", "-a", "5", "-b", "-7"}, "-2"},
		{"mul", []string{"-op", "mul", "-a", "4294967296", "-b", "4294967296"}, "18446744073709551616"},
		{"div", []string{"-op", "div", "-a", "-7", "-b", "2"}, "-3"},
		{"gcd", []string{"-op", "gcd", "-a", "462", "-b", "1071"}, "21"},
		{"inverse", []string{"-op", "inverse", "-a", "3", "-m", "11"}, "4"},
		{"modmul", []string{"-op", "modmul", "-a", "12", "-b", "15", "-m", "23"}, "19"},
		{"modexp", []string{"-op", "modexp", "-a", "4", "-b", "13", "-m", "497"}, "445"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := run(t, "", append(tt.args, "-q")...)
			assert.Equal(t, apperrors.ExitSuccess, code, out)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestRunNumericVerbose(t *testing.T) {
	code, out := run(t, "", "-op", "gcd", "-a", "462", "-b", "1071", "-d")
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "Execution Configuration")
	assert.Contains(t, out, "gcd(a=462, b=1071) = 21")
	assert.Contains(t, out, "Computed in")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{"division by zero", []string{"-op", "div", "-a", "1", "-b", "0"}, apperrors.ExitErrorGeneric, "division by zero"},
		{"malformed operand", []string{"-op", "add", "-a", "12x", "-b", "1"}, apperrors.ExitErrorConfig, "Invalid input"},
		{"not invertible", []string{"-op", "inverse", "-a", "6", "-m", "9"}, apperrors.ExitErrorGeneric, "not invertible"},
		{"point off curve", []string{"-op", "verify", "-a", "1", "-b", "2"}, apperrors.ExitErrorGeneric, "not on the curve"},
		{"malformed scalar", []string{"-k", "12-3"}, apperrors.ExitErrorConfig, "Invalid input"},
		{"empty scalar list", []string{"-k", ","}, apperrors.ExitErrorConfig, "at least one scalar"},
		{"timeout", []string{"-k", "123456789", "-timeout", "1ns"}, apperrors.ExitErrorTimeout, "Timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := run(t, "", tt.args...)
			assert.Equal(t, tt.wantCode, code, out)
			assert.Contains(t, out, tt.wantOut)
		})
	}
}

func TestRunScalarMultQuiet(t *testing.T) {
	code, out := run(t, "", "-k", "2", "-algo", "ladder", "-q")
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Equal(t, p256G2x+" "+p256G2y+"\n", out)

	code, out = run(t, "", "-k", "0", "-q")
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Equal(t, "infinity\n", out)
}

func TestRunScalarMultComparison(t *testing.T) {
	code, out := run(t, "", "-k", "20", "-d")
	assert.Equal(t, apperrors.ExitSuccess, code, out)
	for _, want := range []string{
		"Parallel comparison of 3 strategies",
		"Comparison Summary",
		"repeated-addition",
		"Global Status: Success",
		"x = 59535862115950685744176693329402396749019581632805653266809849538337418304154",
		"Memory Stats:",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRunScalarMultSkipsInapplicableStrategies(t *testing.T) {
	code, out := run(t, "", "-k", "115792089210356248762697446949407573529996955224135760342422259061068512044368")
	assert.Equal(t, apperrors.ExitSuccess, code, out)
	assert.Contains(t, out, "Parallel comparison of 2 strategies")
	assert.NotContains(t, out, "❌")
	// (n-1)·G = -G
	assert.Contains(t, out, "x = "+p256Gx)
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "batch.txt")

	code, out := run(t, "", "-k", "1, 2,0", "-algo", "ladder", "-workers", "2", "-q", "-o", outFile)
	assert.Equal(t, apperrors.ExitSuccess, code, out)
	want := p256Gx + " " + p256Gy + "\n" + p256G2x + " " + p256G2y + "\ninfinity\n"
	assert.Equal(t, want, out)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}

func TestRunBatchWithGCControl(t *testing.T) {
	code, out := run(t, "", "-k", "5,6", "-algo", "double-and-add", "-gc", "aggressive", "-d")
	assert.Equal(t, apperrors.ExitSuccess, code, out)
	assert.Contains(t, out, "--- Batch Results")
	assert.Contains(t, out, "k = 6: ")
	assert.Contains(t, out, "GC suspended during the batch")
}

func TestRunVerify(t *testing.T) {
	code, out := run(t, "", "-op", "verify", "-a", p256Gx, "-b", p256Gy, "-q")
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Equal(t, "valid\n", out)
}

func TestRunOutputFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "nested", "result.txt")
	code, out := run(t, "", "-k", "2", "-curve", "p256", "-o", outFile)
	assert.Equal(t, apperrors.ExitSuccess, code, out)
	assert.Contains(t, out, "Result saved to")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "x = "+p256G2x)
}

func TestRunMetricsDump(t *testing.T) {
	code, out := run(t, "", "-op", "modmul", "-a", "2", "-b", "3", "-m", "7", "-q", "-metrics")
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, `ecccalc_operations_total{op="modmul",status="ok"} 1`)
	assert.Contains(t, out, `ecccalc_montgomery_cache_lookups_total{result="miss"} 1`)
}

func TestRunCompletion(t *testing.T) {
	code, out := run(t, "", "-completion", "bash")
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "complete -F _ecccalc_completions ecccalc")
}

func TestRunREPL(t *testing.T) {
	code, out := run(t, "mul 2\nexit\n", "-repl", "-curve", "p256")
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "x = "+p256G2x)
	assert.Contains(t, out, "Goodbye!")
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"ecccalc", "-curve", "p999", "-k", "1"}, &errBuf)
	require.Error(t, err)

	_, err = New([]string{"ecccalc", "-help"}, &errBuf)
	assert.True(t, IsHelpError(err))
}

func TestVersion(t *testing.T) {
	assert.True(t, HasVersionFlag([]string{"-k", "1", "--version"}))
	assert.True(t, HasVersionFlag([]string{"-V"}))
	assert.False(t, HasVersionFlag([]string{"-v"}))

	var buf bytes.Buffer
	PrintVersion(&buf)
	assert.Contains(t, buf.String(), "ecccalc "+Version)
	assert.Contains(t, buf.String(), "runtime:")
}
