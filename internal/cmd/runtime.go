package cmd

import (
	"context"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/tripplan/internal/config"
	"github.com/Iron-Ham/tripplan/internal/endpoint"
	"github.com/Iron-Ham/tripplan/internal/logging"
	"github.com/Iron-Ham/tripplan/internal/metrics"
	"github.com/Iron-Ham/tripplan/internal/planclient"
	"github.com/Iron-Ham/tripplan/internal/submit"
)

// runtime is everything a command needs to talk to the planning service.
type runtime struct {
	cfg        *config.Config
	logger     *logging.Logger
	metrics    *metrics.Metrics
	store      endpoint.Store
	client     *planclient.Client
	controller *submit.Controller

	stopMetrics context.CancelFunc
}

func newRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if ephemeral, _ := cmd.Flags().GetBool("ephemeral"); ephemeral {
		cfg.Endpoint.Backend = "memory"
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	store, err := endpoint.Open(cfg.Endpoint)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	m := metrics.New()
	client := planclient.New(
		planclient.WithHTTPClient(&http.Client{Timeout: cfg.Client.Timeout()}),
		planclient.WithLogger(logger),
		planclient.WithMetrics(m),
		planclient.WithUserAgent(cfg.Client.UserAgent),
	)

	rt := &runtime{
		cfg:        cfg,
		logger:     logger,
		metrics:    m,
		store:      store,
		client:     client,
		controller: submit.New(store, client, submit.WithLogger(logger), submit.WithMetrics(m)),
	}

	if cfg.Metrics.Addr != "" {
		ctx, cancel := context.WithCancel(context.Background())
		rt.stopMetrics = cancel
		go func() {
			if err := m.Serve(ctx, cfg.Metrics.Addr); err != nil {
				logger.Warn("metrics listener stopped", "addr", cfg.Metrics.Addr, "error", err)
			}
		}()
	}

	return rt, nil
}

func newLogger(cfg config.LoggingConfig) (*logging.Logger, error) {
	if !cfg.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLoggerWithRotation(config.LogDir(), logging.ParseLevel(cfg.Level), logging.RotationConfig{
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
	})
}

// Close releases the store connection, the metrics listener and the log file.
func (r *runtime) Close() {
	if r.stopMetrics != nil {
		r.stopMetrics()
	}
	if c, ok := r.store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			r.logger.Warn("failed to close endpoint store", "error", err)
		}
	}
	_ = r.logger.Close()
}
