package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestBaseConfigApplyDefaults(t *testing.T) {
	cfg := BaseConfig{Name: "svc"}
	cfg.ApplyDefaults()
	if cfg.Environment != "development" {
		t.Errorf("expected environment 'development', got %q", cfg.Environment)
	}
	if !cfg.Debug {
		t.Error("expected Debug to be true in development")
	}

	prod := BaseConfig{Name: "svc", Environment: "production"}
	prod.ApplyDefaults()
	if prod.Debug {
		t.Error("expected Debug to stay false in production")
	}
}

func TestBaseConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    BaseConfig
		errMsg string
	}{
		{"valid", BaseConfig{Name: "svc", Environment: "staging"}, ""},
		{"missing name", BaseConfig{Environment: "staging"}, "base.name is required"},
		{"bad environment", BaseConfig{Name: "svc", Environment: "qa"}, "base.environment must be one of"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.errMsg != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestServiceConfig(t *testing.T) {
	cfg := ServiceConfig{Base: BaseConfig{Name: "transduce"}}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging defaults to be applied, got level %q", cfg.Logging.Level)
	}

	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "config.logging") {
		t.Errorf("expected logging validation error, got %v", err)
	}
}

type testConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Stages        []string `mapstructure:"stages"`
	Source        struct {
		Kind  string `mapstructure:"kind"`
		Limit int    `mapstructure:"limit"`
	} `mapstructure:"source"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", `
base:
  name: transduce
  environment: staging
logging:
  level: debug
stages:
  - map:inc
  - filter:even
source:
  kind: naturals
  limit: 10
`)

	var cfg testConfig
	if err := LoadConfig("transduce", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Base.Name != "transduce" || cfg.Base.Environment != "staging" {
		t.Errorf("unexpected base section %+v", cfg.Base)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected logging.level=debug, got %q", cfg.Logging.Level)
	}
	if len(cfg.Stages) != 2 || cfg.Stages[0] != "map:inc" || cfg.Stages[1] != "filter:even" {
		t.Errorf("unexpected stages %v", cfg.Stages)
	}
	if cfg.Source.Kind != "naturals" || cfg.Source.Limit != 10 {
		t.Errorf("unexpected source %+v", cfg.Source)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg testConfig
	err := LoadConfig("nonexistent", &cfg, WithConfigFile("/nonexistent/path.yml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected an error for an explicit missing file, got %v", err)
	}

	// Without an explicit path a missing file is fine.
	if err := LoadConfig("nonexistent", &cfg, WithFileSystem(&mockFS{})); err != nil {
		t.Fatalf("expected LoadConfig to succeed without a config file, got %v", err)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", "stages: [unclosed\n")
	var cfg testConfig
	if err := LoadConfig("transduce", &cfg, WithConfigFile(configPath)); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", `
source:
  kind: range
  limit: 5
`)
	t.Setenv("TRANSDUCE_SOURCE_LIMIT", "7")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("source.kind", "values", "")
	fs.Int("source.limit", 0, "")
	if err := fs.Parse([]string{"--source.kind=naturals"}); err != nil {
		t.Fatal(err)
	}

	var cfg testConfig
	err := LoadConfig("transduce", &cfg,
		WithConfigFile(configPath),
		WithEnvPrefix("TRANSDUCE"),
		WithFlags(fs),
		WithDefaults(map[string]any{"logging.level": "warn"}),
	)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Source.Kind != "naturals" {
		t.Errorf("explicit flag should win, got kind %q", cfg.Source.Kind)
	}
	if cfg.Source.Limit != 7 {
		t.Errorf("env should override file, got limit %d", cfg.Source.Limit)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected default logging.level=warn, got %q", cfg.Logging.Level)
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "TRANSDUCE_SOURCE_KIND=naturals\n")
	t.Cleanup(func() { os.Unsetenv("TRANSDUCE_SOURCE_KIND") })

	var cfg testConfig
	err := LoadConfig("transduce", &cfg,
		WithEnvFile(envPath),
		WithEnvPrefix("TRANSDUCE"),
		WithDefaults(map[string]any{"source.kind": "range"}),
	)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Source.Kind != "naturals" {
		t.Errorf("expected kind from .env, got %q", cfg.Source.Kind)
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/transduce/config.yml": true,
		".env":                       true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("transduce", LoaderConfig{})
	if files.ConfigFile != "./cmd/transduce/config.yml" {
		t.Errorf("expected config file at ./cmd/transduce/config.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != ".env" {
		t.Errorf("expected env file .env, got %q", files.EnvFile)
	}

	explicit := resolver.ResolveFiles("transduce", LoaderConfig{ConfigFile: "/etc/x.yml"})
	if explicit.ConfigFile != "/etc/x.yml" {
		t.Errorf("explicit path should win, got %q", explicit.ConfigFile)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	flags := pflag.NewFlagSet("x", pflag.ContinueOnError)
	for _, opt := range []LoaderOption{
		WithFileSystem(fs),
		WithConfigFile("/path/to/config.yml"),
		WithEnvFile("/path/to/.env"),
		WithEnvPrefix("APP"),
		WithFlags(flags),
		WithDefaults(map[string]any{"a": 1}),
	} {
		opt(&lc)
	}
	if lc.FileSystem == nil || lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" {
		t.Errorf("unexpected loader config %+v", lc)
	}
	if lc.EnvPrefix != "APP" || lc.Flags != flags || lc.Defaults["a"] != 1 {
		t.Errorf("unexpected loader config %+v", lc)
	}
}

func TestLoadConfigFlagKey(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("run-id", "", "")
	if err := fs.Parse([]string{"--run-id=abc"}); err != nil {
		t.Fatal(err)
	}

	var cfg struct {
		RunID string `mapstructure:"run_id"`
	}
	err := LoadConfig("transduce", &cfg,
		WithFileSystem(&mockFS{}),
		WithFlags(fs),
		WithFlagKey("run_id", "run-id"),
	)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.RunID != "abc" {
		t.Errorf("expected run_id from --run-id, got %q", cfg.RunID)
	}
}

func TestLoadConfigFlagKeyUnknownFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var cfg struct{}
	err := LoadConfig("transduce", &cfg,
		WithFileSystem(&mockFS{}),
		WithFlags(fs),
		WithFlagKey("run_id", "missing"),
	)
	if err == nil {
		t.Fatal("expected an error binding an undefined flag")
	}
}
