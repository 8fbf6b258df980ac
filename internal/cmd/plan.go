package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/tripplan/internal/config"
	"github.com/Iron-Ham/tripplan/internal/render"
	"github.com/Iron-Ham/tripplan/internal/submit"
	"github.com/Iron-Ham/tripplan/internal/trip"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Request a plan without the interactive form",
	Long: `Send one plan request and print the result.

Values are passed to the planning service as typed: numbers that do not
parse are sent as invalid and the service reports what is missing.
The command exits non-zero when the service asks for more information
or the request fails.

Examples:
  tripplan plan --destination 成都 --days 3 --travelers 2 --budget 4000
  tripplan plan --destination 上海 --days 2 --travelers 1 --budget 3000 \
    --preferences "food, museums" --output markdown`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().String("destination", "", "destination city")
	planCmd.Flags().String("days", "", "trip length in days")
	planCmd.Flags().String("travelers", "", "number of travelers")
	planCmd.Flags().String("budget", "", "total budget in CNY")
	planCmd.Flags().String("preferences", "", "comma-separated preferences")
	planCmd.Flags().String("endpoint", "", "planning service base URL (default: last used)")
	planCmd.Flags().StringP("output", "o", "", "output format: text, markdown, json, yaml (default from output.format)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = viper.GetString("output.format")
	}
	if !slices.Contains(config.ValidOutputFormats(), format) {
		return fmt.Errorf("invalid output format: %s\nValid options: %s",
			format, strings.Join(config.ValidOutputFormats(), ", "))
	}

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

	final, err := rt.controller.Submit(ctx, ep, planFields(cmd))
	if err != nil {
		return err
	}

	if err := writeState(cmd.OutOrStdout(), final, format, rt.cfg); err != nil {
		return err
	}
	return outcomeError(final)
}

func planFields(cmd *cobra.Command) trip.Fields {
	get := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return trip.Fields{
		Destination: get("destination"),
		Days:        get("days"),
		Travelers:   get("travelers"),
		Budget:      get("budget"),
		Preferences: get("preferences"),
	}
}

// writeState prints the terminal state in the requested format.
func writeState(w io.Writer, s submit.State, format string, cfg *config.Config) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload(s))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(payload(s)); err != nil {
			return err
		}
		return enc.Close()
	case "markdown":
		md := render.Markdown(render.Render(s))
		out, err := render.Glamour(md, cfg.TUI.ResultWidth)
		if err != nil {
			// Raw markdown is still readable.
			out = md
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		_, err := io.WriteString(w, render.Text(render.Render(s)))
		return err
	}
}

// failure is the machine-readable form of a Failed state.
type failure struct {
	Status  string `json:"status" yaml:"status"`
	Message string `json:"message" yaml:"message"`
}

// payload is the value encoded for json and yaml output.
func payload(s submit.State) any {
	switch s := s.(type) {
	case submit.Success:
		return s.Result
	case submit.NeedsInfo:
		return s.Info
	case submit.Failed:
		return failure{Status: "error", Message: s.Message}
	default:
		return failure{Status: "error", Message: fmt.Sprintf("unexpected state %s", s.Kind())}
	}
}

// outcomeError turns a non-success terminal state into the command's error.
func outcomeError(s submit.State) error {
	switch s := s.(type) {
	case submit.Success:
		return nil
	case submit.NeedsInfo:
		return fmt.Errorf("planning service needs more information: %s", strings.Join(s.Info.MissingFields, ", "))
	case submit.Failed:
		if s.Message == "" {
			return fmt.Errorf("plan request failed")
		}
		return fmt.Errorf("plan request failed: %s", s.Message)
	default:
		return fmt.Errorf("plan request ended in state %s", s.Kind())
	}
}
