package endpoint

import (
	"github.com/Iron-Ham/tripplan/internal/config"
	"github.com/Iron-Ham/tripplan/internal/errors"
)

// Open returns the Store selected by cfg.Backend.
func Open(cfg config.EndpointConfig) (Store, error) {
	switch cfg.Backend {
	case "", "file":
		return NewFileStore(cfg.ResolveStateFile()), nil
	case "redis":
		prefix := cfg.Redis.Prefix
		if prefix == "" {
			prefix = DefaultRedisPrefix
		}
		return NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, WithPrefix(prefix)), nil
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, errors.NewValidationError("unsupported endpoint store backend").
			WithField("endpoint.backend").
			WithValue(cfg.Backend).
			WithCause(errors.ErrUnknownBackend)
	}
}
