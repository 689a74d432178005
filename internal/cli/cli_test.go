package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/transduce/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := New()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunFold(t *testing.T) {
	out, err := execute(t, "run", "--logging.level=disabled",
		"--source.end=4", "--stages=map:inc,filter:even")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.TrimSpace(out) != "6" {
		t.Errorf("output = %q, want 6", out)
	}
}

func TestRunScan(t *testing.T) {
	out, err := execute(t, "run", "--logging.level=disabled",
		"--source.kind=naturals", "--source.limit=4",
		"--stages=map:inc,filter:even", "--mode=scan")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.Fields(out); strings.Join(got, " ") != "0 2 2 6" {
		t.Errorf("output = %q, want 0 2 2 6", out)
	}
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, "run", "--logging.level=disabled",
		"--source.kind=values", "--source.values=3,-1,4",
		"--stages=remove:negative", "--reducer=collect", "-o", "json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var res struct {
		RunID    string `json:"run_id"`
		Reducer  string `json:"reducer"`
		Value    []int  `json:"value"`
		Elements int    `json:"elements"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if res.Reducer != "collect" || res.Elements != 3 || res.RunID == "" {
		t.Errorf("unexpected result %+v", res)
	}
	if len(res.Value) != 2 || res.Value[0] != 3 || res.Value[1] != 4 {
		t.Errorf("value = %v, want [3 4]", res.Value)
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
logging:
  level: disabled
source:
  kind: range
  start: 1
  end: 4
stages:
  - map:square
reducer: sum
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "run", "--config", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.TrimSpace(out) != "14" {
		t.Errorf("output = %q, want 14", out)
	}

	// Flags override the file.
	out, err = execute(t, "run", "--config", path, "--reducer=count")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.TrimSpace(out) != "3" {
		t.Errorf("output = %q, want 3", out)
	}
}

func TestRunEnvOverride(t *testing.T) {
	t.Setenv("TRANSDUCE_SOURCE_END", "3")
	t.Setenv("TRANSDUCE_LOGGING_LEVEL", "disabled")

	out, err := execute(t, "run")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.TrimSpace(out) != "3" {
		t.Errorf("output = %q, want 3 (0+1+2)", out)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		code     errors.ErrorCode
		exitCode int
	}{
		{"unknown stage", []string{"--stages=map:cube"}, errors.ErrCodeUnknownStage, errors.ExitUsage},
		{"unknown reducer", []string{"--reducer=max"}, errors.ErrCodeUnknownReducer, errors.ExitUsage},
		{"naturals without limit", []string{"--source.kind=naturals"}, errors.ErrCodeInvalidInput, errors.ExitUsage},
		{"bad output", []string{"-o", "yaml"}, errors.ErrCodeInvalidInput, errors.ExitUsage},
		{"bad flag", []string{"--source.end=many"}, errors.ErrCodeInvalidInput, errors.ExitUsage},
		{"missing config", []string{"--config=/nonexistent/config.yml"}, errors.ErrCodeInvalidInput, errors.ExitUsage},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"run", "--logging.level=disabled"}, tc.args...)
			_, err := execute(t, args...)
			if !errors.HasCode(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
			if got := ExitCode(err); got != tc.exitCode {
				t.Errorf("ExitCode = %d, want %d", got, tc.exitCode)
			}
		})
	}
}

func TestExitCodePlainError(t *testing.T) {
	if got := ExitCode(os.ErrNotExist); got != errors.ExitFailure {
		t.Errorf("ExitCode = %d, want %d", got, errors.ExitFailure)
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.UnknownStage("map:cube"))
	if !strings.Contains(buf.String(), "Unknown stage: map:cube (UNKNOWN_STAGE)") {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	PrintError(&buf, errors.SourceFailed("naturals", os.ErrClosed))
	if !strings.Contains(buf.String(), "cause: "+os.ErrClosed.Error()) {
		t.Errorf("expected cause line, got %q", buf.String())
	}
}

func TestStages(t *testing.T) {
	out, err := execute(t, "stages")
	if err != nil {
		t.Fatalf("stages: %v", err)
	}
	for _, want := range []string{"map:inc", "filter:even", "remove:odd", "Reducers: sum, count, collect"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output %q", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version", "--format=json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var info map[string]any
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if info["version"] == "" || info["version"] == nil {
		t.Errorf("expected a version, got %v", info)
	}

	if _, err := execute(t, "version", "-f", "yaml"); !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT for unknown format, got %v", err)
	}
}
