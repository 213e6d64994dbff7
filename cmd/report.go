package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/goreg/internal/config"
	"github.com/mouse-blink/goreg/internal/controller"
	"github.com/mouse-blink/goreg/internal/domain"
	m "github.com/mouse-blink/goreg/internal/model"
)

var fromFlag string

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the HTML and JUnit reports from an existing JSON report",
		Long: `Report rebuilds the HTML document and, when --junit is set, the JUnit
report from a JSON report written by a previous goreg run. No images are
compared and the JSON report is left untouched.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			renderArgs := domain.RenderArgs{
				FromJSON:       fromFlag,
				ReportPath:     cfg.Report,
				JUnitPath:      cfg.JUnit,
				ExtendedErrors: cfg.ExtendedErrors,
			}

			return execute(cmd, cfg, controller.WithRenderMode(), func(ctx context.Context, wf domain.Workflow) (m.JSONReport, error) {
				return wf.Render(ctx, renderArgs)
			})
		},
	}

	d := config.Default()
	flags := cmd.Flags()

	flags.StringVarP(&fromFlag, "from", "F", d.JSON, "JSON report to render from")
	flags.StringP(config.FlagReport, "R", d.Report, "path of the HTML report")
	flags.String(config.FlagJUnit, "", "path of the JUnit XML report")
	flags.BoolP(config.FlagExtendedErrors, "E", false, "report new and deleted images as JUnit failures")
	flags.Bool(config.FlagTracing, false, "record execution spans")
	flags.String(config.FlagTraceOutput, d.TraceOutput, "path of the exported trace JSON")
	flags.String(config.FlagTraceID, "", "external trace id attached to the exported trace")
	flags.String(config.FlagParentSpanID, "", "external parent span id attached to the exported trace")
	flags.String(config.FlagLogLevel, d.LogLevel, "log level (debug, info, warn, error)")

	return cmd
}
