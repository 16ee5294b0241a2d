package cli

import (
	"bytes"
	"testing"

	"github.com/leapstack-labs/leapmath/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return out.String(), errOut.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"parse", "format", "tokens", "check", "repl", "serve", "version", "completion"} {
		found, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	flags := NewRootCmd().PersistentFlags()
	for _, name := range []string{"config", "verbose", "output", "mixed-numbers", "singletons", "max-depth", "log-level"} {
		assert.NotNil(t, flags.Lookup(name), "flag %q should exist", name)
	}
	assert.Equal(t, "v", flags.Lookup("verbose").Shorthand)
	assert.Equal(t, "o", flags.Lookup("output").Shorthand)
}

func TestRootCmd_Execute(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		want    string
		wantErr string
	}{
		{name: "format", args: []string{"format", "x^( a+1 )"}, want: "x^(a + 1)\n"},
		{name: "fmt alias", args: []string{"fmt", "2", "x"}, want: "2x\n"},
		{name: "json output", args: []string{"-o", "json", "format", "x+1"}, want: `"text": "x + 1"`},
		{name: "output from env", args: []string{"format", "x+1"}, env: map[string]string{"LEAPMATH_OUTPUT": "yaml"}, want: "text: x + 1"},
		{name: "flag beats env", args: []string{"-o", "text", "format", "x+1"}, env: map[string]string{"LEAPMATH_OUTPUT": "json"}, want: "x + 1\n"},
		{name: "mixed numbers", args: []string{"--mixed-numbers", "parse", "[1 2/3]"}, want: "MixedNumber 1 2/3"},
		{name: "singletons", args: []string{"--singletons", "parse", "x"}, want: "Sum"},
		{name: "version", args: []string{"version"}, want: "leapmath v" + Version},
		{name: "version flag", args: []string{"--version"}, want: "leapmath " + Version + " (commit unknown, built unknown)"},
		{name: "completion", args: []string{"completion", "bash"}, want: "bash completion"},
		{name: "invalid output", args: []string{"-o", "xml", "format", "x"}, wantErr: "invalid configuration"},
		{name: "invalid max depth", args: []string{"--max-depth", "0", "format", "x"}, wantErr: "max_depth"},
		{name: "too deep", args: []string{"--max-depth", "2", "format", "(((x)))"}, wantErr: "invalid expression"},
		{name: "parse error", args: []string{"parse", "[1/"}, wantErr: "invalid expression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			out, _, err := execute(t, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestRootCmd_DiagnosticOnStderr(t *testing.T) {
	out, errOut, err := execute(t, "format", "2+*x")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "error: parse error at line 1, column 3")
	assert.Contains(t, errOut, "  2+*x\n    ^\n")
}
