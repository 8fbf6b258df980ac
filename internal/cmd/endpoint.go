package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/tripplan/internal/endpoint"
)

var endpointCmd = &cobra.Command{
	Use:   "endpoint",
	Short: "Show or change the remembered planning service URL",
	Long: `Show or change the planning service URL remembered between runs.

Without a subcommand, prints the current value (the default
` + endpoint.DefaultEndpoint + ` when nothing is stored).`,
	Args: cobra.NoArgs,
	RunE: runEndpointGet,
}

var endpointGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the remembered endpoint",
	Args:  cobra.NoArgs,
	RunE:  runEndpointGet,
}

var endpointSetCmd = &cobra.Command{
	Use:   "set <url>",
	Short: "Remember a new endpoint",
	Long: `Remember a new planning service URL.

Surrounding whitespace and trailing slashes are removed. The value is not
checked; an empty value restores the default on the next read.`,
	Args: cobra.ExactArgs(1),
	RunE: runEndpointSet,
}

func init() {
	endpointCmd.AddCommand(endpointGetCmd)
	endpointCmd.AddCommand(endpointSetCmd)
}

func runEndpointGet(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	value, err := rt.store.Load(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runEndpointSet(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	value := endpoint.Normalize(args[0])
	if err := rt.store.Save(cmd.Context(), value); err != nil {
		return err
	}
	if value == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Endpoint cleared; using %s\n", endpoint.DefaultEndpoint)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Endpoint set to %s\n", value)
	return nil
}
