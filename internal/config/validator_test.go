package config

import (
	"strings"
	"testing"
)

func hasField(errs []ValidationError, field string) bool {
	for _, err := range errs {
		if err.Field == field {
			return true
		}
	}
	return false
}

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Field: "endpoint.backend", Value: "etcd", Message: "must be one of: file, redis, memory"}
	want := "endpoint.backend: must be one of: file, redis, memory (got: etcd)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := ValidationErrors(nil).Error(); got != "" {
			t.Errorf("Error() = %q, want empty", got)
		}
	})

	t.Run("multiple", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "a", Value: 1, Message: "bad"},
			{Field: "b", Value: 2, Message: "worse"},
		}
		got := errs.Error()
		if !strings.HasPrefix(got, "2 validation errors:") {
			t.Errorf("Error() = %q, want count prefix", got)
		}
		if !strings.Contains(got, "1. a: bad") || !strings.Contains(got, "2. b: worse") {
			t.Errorf("Error() = %q, want numbered entries", got)
		}
	})
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	if errs := Default().Validate(); len(errs) != 0 {
		t.Errorf("default config should be valid, got %v", errs)
	}
}

func TestConfig_Validate_Endpoint(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		field   string
		wantErr bool
	}{
		{"file backend", func(c *Config) { c.Endpoint.Backend = "file" }, "endpoint.backend", false},
		{"memory backend", func(c *Config) { c.Endpoint.Backend = "memory" }, "endpoint.backend", false},
		{"unknown backend", func(c *Config) { c.Endpoint.Backend = "etcd" }, "endpoint.backend", true},
		{"redis without addr", func(c *Config) {
			c.Endpoint.Backend = "redis"
			c.Endpoint.Redis.Addr = ""
		}, "endpoint.redis.addr", true},
		{"redis negative db", func(c *Config) {
			c.Endpoint.Backend = "redis"
			c.Endpoint.Redis.DB = -1
		}, "endpoint.redis.db", true},
		{"redis addr ignored for file backend", func(c *Config) { c.Endpoint.Redis.Addr = "" }, "endpoint.redis.addr", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if got := hasField(cfg.Validate(), tt.field); got != tt.wantErr {
				t.Errorf("error on %s = %v, want %v", tt.field, got, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_Client(t *testing.T) {
	cfg := Default()
	cfg.Client.TimeoutSeconds = -1
	if !hasField(cfg.Validate(), "client.timeout_seconds") {
		t.Error("expected error for negative timeout")
	}
}

func TestConfig_Validate_TUI(t *testing.T) {
	tests := []struct {
		width   int
		wantErr bool
	}{
		{39, true},
		{40, false},
		{72, false},
		{200, false},
		{201, true},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.TUI.ResultWidth = tt.width
		if got := hasField(cfg.Validate(), "tui.result_width"); got != tt.wantErr {
			t.Errorf("result_width %d: error = %v, want %v", tt.width, got, tt.wantErr)
		}
	}
}

func TestConfig_Validate_Output(t *testing.T) {
	for _, format := range ValidOutputFormats() {
		cfg := Default()
		cfg.Output.Format = format
		if hasField(cfg.Validate(), "output.format") {
			t.Errorf("format %q should be valid", format)
		}
	}

	cfg := Default()
	cfg.Output.Format = "html"
	if !hasField(cfg.Validate(), "output.format") {
		t.Error("expected error for unknown output format")
	}
}

func TestConfig_Validate_Logging(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", ""} {
			cfg := Default()
			cfg.Logging.Level = level
			if hasField(cfg.Validate(), "logging.level") {
				t.Errorf("level %q should be valid", level)
			}
		}
	})

	t.Run("case sensitive log level", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Level = "INFO"
		if !hasField(cfg.Validate(), "logging.level") {
			t.Error("expected error for uppercase log level")
		}
	})

	t.Run("size bounds", func(t *testing.T) {
		for _, size := range []int{0, -5, 1001} {
			cfg := Default()
			cfg.Logging.MaxSizeMB = size
			if !hasField(cfg.Validate(), "logging.max_size_mb") {
				t.Errorf("expected error for max_size_mb=%d", size)
			}
		}
	})

	t.Run("negative backups", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.MaxBackups = -1
		if !hasField(cfg.Validate(), "logging.max_backups") {
			t.Error("expected error for negative max_backups")
		}
	})
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.Endpoint.Backend = "etcd"
	cfg.Output.Format = "html"
	cfg.Logging.MaxSizeMB = 0

	if errs := cfg.Validate(); len(errs) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(errs), errs)
	}
}
