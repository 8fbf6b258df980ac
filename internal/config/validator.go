package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "endpoint.backend")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found.
// The planning request itself is never validated here; the service owns that.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateEndpoint()...)
	errors = append(errors, c.validateClient()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateEndpoint validates the EndpointConfig
func (c *Config) validateEndpoint() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidBackends(), c.Endpoint.Backend) {
		errors = append(errors, ValidationError{
			Field:   "endpoint.backend",
			Value:   c.Endpoint.Backend,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidBackends(), ", ")),
		})
	}

	if c.Endpoint.Backend == "redis" {
		if c.Endpoint.Redis.Addr == "" {
			errors = append(errors, ValidationError{
				Field:   "endpoint.redis.addr",
				Value:   c.Endpoint.Redis.Addr,
				Message: "is required when endpoint.backend is redis",
			})
		}
		if c.Endpoint.Redis.DB < 0 {
			errors = append(errors, ValidationError{
				Field:   "endpoint.redis.db",
				Value:   c.Endpoint.Redis.DB,
				Message: "must be non-negative",
			})
		}
	}

	return errors
}

// validateClient validates the ClientConfig
func (c *Config) validateClient() []ValidationError {
	var errors []ValidationError

	if c.Client.TimeoutSeconds < 0 {
		errors = append(errors, ValidationError{
			Field:   "client.timeout_seconds",
			Value:   c.Client.TimeoutSeconds,
			Message: "must be non-negative (0 = no timeout)",
		})
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	const minWidth, maxWidth = 40, 200
	if c.TUI.ResultWidth < minWidth || c.TUI.ResultWidth > maxWidth {
		errors = append(errors, ValidationError{
			Field:   "tui.result_width",
			Value:   c.TUI.ResultWidth,
			Message: fmt.Sprintf("must be between %d and %d", minWidth, maxWidth),
		})
	}

	return errors
}

// validateOutput validates the OutputConfig
func (c *Config) validateOutput() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidOutputFormats(), c.Output.Format) {
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Value:   c.Output.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidOutputFormats(), ", ")),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	const maxLogSizeMB = 1000 // 1GB
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}
