package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	algos := []string{"double-and-add", "ladder", "repeated-addition"}

	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"complete -F _ecccalc_completions ecccalc", `algorithms="double-and-add ladder repeated-addition all"`, "--curve)", "p256 p384 secp256k1", "--output|-o)", "--op)"}},
		{"zsh", []string{"#compdef ecccalc", "algorithms=(double-and-add ladder repeated-addition all)", "'--curve[Curve for scalarmult and verify]:curve:(p256 p384 secp256k1)'", "'-k[Scalars, comma separated]:scalars:'"}},
		{"fish", []string{"complete -c ecccalc -f", "# Operation", "complete -c ecccalc -l algo -d 'Scalar multiplication strategy' -xa 'double-and-add ladder repeated-addition all'", "complete -c ecccalc -s o -l output -d 'Output file path' -rF"}},
		{"powershell", []string{"Register-ArgumentCompleter -CommandName 'ecccalc'", "$ecccalcAlgorithms = @('double-and-add', 'ladder', 'repeated-addition', 'all')", "{ $_ -in @('--log-level') }"}},
		{"ps", []string{"Register-ArgumentCompleter"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell, algos); err != nil {
				t.Fatalf("GenerateCompletion(%s): %v", tt.shell, err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script should contain %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := GenerateCompletion(&buf, "tcsh", nil); err == nil {
		t.Error("expected an error for an unsupported shell")
	}
}

func TestFlagRegistryCoversEveryFlag(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, f := range flagRegistry {
		for _, name := range flagNames(f) {
			if seen[name] {
				t.Errorf("duplicate completion entry %s", name)
			}
			seen[name] = true
		}
	}
	for _, name := range []string{"--op", "-a", "-b", "-m", "-k", "--curve", "--algo", "--timeout", "--workers", "--quiet", "-q", "--verbose", "-v", "--details", "-d", "--output", "-o", "--metrics", "--log-level", "--no-color", "--repl", "--completion", "--version"} {
		if !seen[name] {
			t.Errorf("flag %s has no completion entry", name)
		}
	}
}
