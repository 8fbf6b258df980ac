package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/tripplan/internal/config"
	"github.com/Iron-Ham/tripplan/internal/stubservice"
)

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Run a local planning service for development",
	Long: `Run a deterministic planning service that answers /api/health and
/api/plan the way the production service does, using built-in city
templates. Stops on Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runStub,
}

func init() {
	stubCmd.Flags().String("addr", ":8000", "listen address")
}

func runStub(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Close()

	addr, _ := cmd.Flags().GetString("addr")
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Stub planning service listening on %s\n", addr)
	return stubservice.Serve(ctx, addr, logger)
}
