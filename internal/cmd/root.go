package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/tripplan/internal/cmd/config"
	appconfig "github.com/Iron-Ham/tripplan/internal/config"
	"github.com/Iron-Ham/tripplan/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "tripplan",
	Short: "Travel planning client",
	Long: `tripplan collects a trip description (destination, days, travelers,
budget and preferences), sends it to a planning service and renders the
returned itinerary, price estimate and risk flags.

Without a subcommand it opens the interactive planning form.`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/tripplan/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	rootCmd.PersistentFlags().Bool("ephemeral", false, "keep the endpoint in memory only for this run")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("metrics.addr", rootCmd.PersistentFlags().Lookup("metrics-addr"))

	config.Register(rootCmd)
	rootCmd.AddCommand(planCmd, endpointCmd, healthCmd, stubCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	appconfig.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(appconfig.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TRIPPLAN")
	// e.g. TRIPPLAN_ENDPOINT_BACKEND for endpoint.backend
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runInteractive(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	app := tui.New(cmd.Context(), rt.controller, tui.Options{
		ResultWidth:   rt.cfg.TUI.ResultWidth,
		ShowBreakdown: rt.cfg.TUI.ShowBreakdown,
	})
	return app.Run()
}
