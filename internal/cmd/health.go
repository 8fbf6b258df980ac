package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the planning service is reachable",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func init() {
	healthCmd.Flags().String("endpoint", "", "planning service base URL (default: last used)")
}

func runHealth(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx := cmd.Context()
	ep, _ := cmd.Flags().GetString("endpoint")
	if ep == "" {
		ep = rt.controller.Endpoint(ctx)
	}

	status, err := rt.client.Health(ctx, ep)
	if err != nil {
		return err
	}
	if !status.OK() {
		return fmt.Errorf("%s reported status %q", ep, status.Status)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is up (%s)\n", ep, status.Service)
	return nil
}
