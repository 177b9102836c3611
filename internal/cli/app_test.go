package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioA = "1,1\n1.1,1.1\n9,9\n9.1,9.1\n"

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), append([]string{"kmeans"}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRun_Success(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "two clusters",
			stdin: scenarioA,
			args:  []string{"2", "10"},
			want:  "1.0500,1.0500\n9.0500,9.0500\n",
		},
		{
			name:  "default max iterations",
			stdin: scenarioA,
			args:  []string{"2"},
			want:  "1.0500,1.0500\n9.0500,9.0500\n",
		},
		{
			name:  "single point clusters",
			stdin: "0\n1\n2\n10\n",
			args:  []string{"3", "100"},
			want:  "0.0000\n1.5000\n10.0000\n",
		},
		{
			name:  "identical points",
			stdin: "2.0,2.0\n2.0,2.0\n2.0,2.0\n2.0,2.0\n",
			args:  []string{"2"},
			want:  "2.0000,2.0000\n2.0000,2.0000\n",
		},
		{
			name:  "natural numbers with zero fraction",
			stdin: scenarioA,
			args:  []string{"2.0", "81.00"},
			want:  "1.0500,1.0500\n9.0500,9.0500\n",
		},
		{
			name:  "blank line ends input",
			stdin: scenarioA + "\nnot a number\n",
			args:  []string{"2"},
			want:  "1.0500,1.0500\n9.0500,9.0500\n",
		},
		{
			name:  "whitespace around fields",
			stdin: " 1 , 1 \n1.1,1.1\r\n9,9\n9.1,9.1",
			args:  []string{"2"},
			want:  "1.0500,1.0500\n9.0500,9.0500\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, tt.stdin, tt.args...)
			assert.Equal(t, 0, r.code)
			assert.Equal(t, tt.want, r.stdout)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	const (
		clusters   = "Incorrect number of clusters!\n"
		iterations = "Incorrect maximum iteration!\n"
		generic    = "An Error Has Occurred\n"
	)

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"no arguments", scenarioA, nil, generic},
		{"too many arguments", scenarioA, []string{"2", "10", "3"}, generic},
		{"k not a number", scenarioA, []string{"two"}, clusters},
		{"k fractional", scenarioA, []string{"2.5"}, clusters},
		{"k too small", scenarioA, []string{"1"}, clusters},
		{"k equals n", scenarioA, []string{"4"}, clusters},
		{"iterations not a number", scenarioA, []string{"2", "ten"}, iterations},
		{"iterations too small", scenarioA, []string{"2", "1"}, iterations},
		{"iterations too large", scenarioA, []string{"2", "1000"}, iterations},
		{"k format checked before iterations", scenarioA, []string{"x", "1000"}, clusters},
		{"iterations checked before data", "1,a\n", []string{"2", "0"}, iterations},
		{"data checked before k range", "", []string{"9"}, generic},
		{"empty input", "", []string{"2"}, generic},
		{"bad field", "1,1\n1,a\n3,3\n", []string{"2"}, generic},
		{"empty field", "1,,1\n2,2,2\n3,3,3\n", []string{"2"}, generic},
		{"dimension mismatch", "1,1\n2,2,2\n3,3\n", []string{"2"}, generic},
		{"unknown format", scenarioA, []string{"--format", "yaml", "2"}, generic},
		{"k negative", scenarioA, []string{"-3"}, clusters},
		{"k negative with iterations", scenarioA, []string{"-3", "10"}, clusters},
		{"k negative fraction", scenarioA, []string{"-2.0"}, clusters},
		{"k negative after flags", scenarioA, []string{"-f", "json", "-3"}, clusters},
		{"short help is not a flag", scenarioA, []string{"-h"}, clusters},
		{"unknown flag is read as k", scenarioA, []string{"--bogus", "2"}, clusters},
		{"iterations negative", scenarioA, []string{"2", "-5"}, iterations},
		{"negative flag value", scenarioA, []string{"--io-limit", "-5", "2"}, generic},
		{"bad flag value", scenarioA, []string{"--concurrency", "many", "2"}, generic},
		{"stdin listed twice", scenarioA, []string{"-i", "-", "-i", "-", "2"}, generic},
		{"missing input file", "", []string{"-i", "/nonexistent/points.txt", "2"}, generic},
		{"bad log level", scenarioA, []string{"--log-level", "loud", "2"}, generic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, tt.stdin, tt.args...)
			assert.Equal(t, 1, r.code)
			assert.Equal(t, tt.want, r.stdout)
		})
	}
}

func TestRun_JSONFormat(t *testing.T) {
	for _, format := range []string{"json", "go-json"} {
		t.Run(format, func(t *testing.T) {
			r := run(t, scenarioA, "-f", format, "2", "10")
			require.Equal(t, 0, r.code)
			assert.Contains(t, r.stdout, `"k":2`)
			assert.Contains(t, r.stdout, `"iterations":3`)
			assert.Contains(t, r.stdout, `"state":"converged"`)
			assert.Contains(t, r.stdout, `"sizes":[2,2]`)
		})
	}
}

func TestRun_InputFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("1,1\n1.1,1.1\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("9,9\n9.1,9.1\n"), 0o644))

	r := run(t, "", "-i", a, "-i", b, "2")
	require.Equal(t, 0, r.code, r.stdout)
	assert.Equal(t, "1.0500,1.0500\n9.0500,9.0500\n", r.stdout)

	// Order of inputs decides the seeds.
	r = run(t, "", "-i", b, "-i", a, "2")
	require.Equal(t, 0, r.code)
	assert.Equal(t, "9.0500,9.0500\n1.0500,1.0500\n", r.stdout)
}

func TestRun_EnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("KMEANS_FORMAT=json\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("KMEANS_FORMAT") })

	r := run(t, scenarioA, "--env-file", envPath, "2")
	require.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, `"state":"converged"`)

	r = run(t, scenarioA, "--env-file", filepath.Join(t.TempDir(), "missing.env"), "2")
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "An Error Has Occurred\n", r.stdout)
}

func TestRun_Logging(t *testing.T) {
	r := run(t, scenarioA, "--log-level", "debug", "--log-format", "json", "2")
	require.Equal(t, 0, r.code)

	assert.Contains(t, r.stderr, `"msg":"run completed"`)
	assert.Contains(t, r.stderr, `"msg":"iteration completed"`)
	assert.Contains(t, r.stderr, `"run_id":`)
	assert.NotContains(t, r.stdout, "run_id")
}

func TestRun_QuietByDefault(t *testing.T) {
	r := run(t, scenarioA, "2")
	require.Equal(t, 0, r.code)
	assert.Empty(t, r.stderr)
}
