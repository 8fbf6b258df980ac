package config

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	appconfig "github.com/Iron-Ham/tripplan/internal/config"
)

// setupConfigTest points the config dir at a temp directory and resets viper.
func setupConfigTest(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	viper.Reset()
	appconfig.SetDefaults()
	t.Cleanup(viper.Reset)
}

func run(t *testing.T, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	err := fn(cmd, args)
	return buf.String(), err
}

func TestConfigSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		want    any
		wantErr string
	}{
		{name: "select", key: "endpoint.backend", value: "redis", want: "redis"},
		{name: "int", key: "client.timeout_seconds", value: "15", want: 15},
		{name: "bool", key: "tui.show_breakdown", value: "false", want: false},
		{name: "string", key: "client.user_agent", value: "ops-desk", want: "ops-desk"},
		{name: "unknown key", key: "nope.key", value: "x", wantErr: "unknown configuration key"},
		{name: "bad option", key: "output.format", value: "html", wantErr: "Valid options"},
		{name: "bad bool", key: "logging.enabled", value: "yes", wantErr: "expected true or false"},
		{name: "bad int", key: "tui.result_width", value: "wide", wantErr: "expected integer"},
		{name: "negative int", key: "logging.max_backups", value: "-1", wantErr: "non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupConfigTest(t)

			out, err := run(t, runConfigSet, tt.key, tt.value)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("runConfigSet() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("runConfigSet() error = %v", err)
			}
			if got := viper.Get(tt.key); got != tt.want {
				t.Errorf("viper.Get(%q) = %v, want %v", tt.key, got, tt.want)
			}
			if !strings.Contains(out, "Config saved to") {
				t.Errorf("output = %q", out)
			}
			if _, err := os.Stat(appconfig.ConfigFile()); err != nil {
				t.Errorf("config file not written: %v", err)
			}
		})
	}
}

func TestConfigReset(t *testing.T) {
	setupConfigTest(t)
	viper.Set("output.format", "json")
	viper.Set("client.timeout_seconds", 9)

	if _, err := run(t, runConfigReset, "output.format"); err != nil {
		t.Fatalf("reset key: %v", err)
	}
	if got := viper.GetString("output.format"); got != "text" {
		t.Errorf("output.format = %q, want text", got)
	}
	if got := viper.GetInt("client.timeout_seconds"); got != 9 {
		t.Errorf("single-key reset touched client.timeout_seconds: %d", got)
	}

	if _, err := run(t, runConfigReset); err != nil {
		t.Fatalf("reset all: %v", err)
	}
	if got := viper.GetInt("client.timeout_seconds"); got != 0 {
		t.Errorf("client.timeout_seconds = %d, want 0", got)
	}

	if _, err := run(t, runConfigReset, "bogus"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestConfigInit(t *testing.T) {
	setupConfigTest(t)

	out, err := run(t, runConfigInit)
	if err != nil {
		t.Fatalf("runConfigInit() error = %v", err)
	}
	if !strings.Contains(out, appconfig.ConfigFile()) {
		t.Errorf("output = %q, want config path", out)
	}

	data, err := os.ReadFile(appconfig.ConfigFile())
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	var parsed appconfig.Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("generated config is not valid YAML: %v", err)
	}
	if parsed.Endpoint.Backend != "file" || parsed.TUI.ResultWidth != 72 {
		t.Errorf("generated config = %+v, want defaults", parsed)
	}

	if _, err := run(t, runConfigInit); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second init error = %v, want already exists", err)
	}
}

func TestConfigShow(t *testing.T) {
	setupConfigTest(t)
	viper.Set("endpoint.redis.password", "hunter2")

	out, err := run(t, runConfigShow)
	if err != nil {
		t.Fatalf("runConfigShow() error = %v", err)
	}
	for _, want := range []string{"(none - using defaults)", "backend: file", "result_width: 72"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "hunter2") {
		t.Error("show output leaks the redis password")
	}
}

func TestConfigPath(t *testing.T) {
	setupConfigTest(t)

	out, err := run(t, runConfigPath)
	if err != nil {
		t.Fatalf("runConfigPath() error = %v", err)
	}
	for _, want := range []string{appconfig.ConfigFile(), appconfig.StateFile(), "TRIPPLAN_"} {
		if !strings.Contains(out, want) {
			t.Errorf("path output missing %q", want)
		}
	}
}

func TestConfigInteractiveUsesEditor(t *testing.T) {
	called := false
	orig := runEditor
	runEditor = func() error { called = true; return nil }
	defer func() { runEditor = orig }()

	if _, err := run(t, runConfigInteractive); err != nil {
		t.Fatalf("runConfigInteractive() error = %v", err)
	}
	if !called {
		t.Error("editor was not started")
	}
}

func TestRegister(t *testing.T) {
	root := &cobra.Command{Use: "tripplan"}
	Register(root)

	found := false
	for _, c := range root.Commands() {
		if c.Name() == "config" {
			found = true
			names := map[string]bool{}
			for _, sub := range c.Commands() {
				names[sub.Name()] = true
			}
			for _, want := range []string{"show", "set", "init", "path", "reset"} {
				if !names[want] {
					t.Errorf("config subcommand %q missing", want)
				}
			}
		}
	}
	if !found {
		t.Fatal("config command not registered")
	}
}
