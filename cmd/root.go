// Package cmd provides the root command and CLI setup for goreg.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/goreg/internal/adapter"
	"github.com/mouse-blink/goreg/internal/config"
	"github.com/mouse-blink/goreg/internal/controller"
	"github.com/mouse-blink/goreg/internal/domain"
	"github.com/mouse-blink/goreg/internal/logger"
	m "github.com/mouse-blink/goreg/internal/model"
	"github.com/mouse-blink/goreg/internal/trace"
)

var fsAdapter adapter.ImageFSAdapter
var reportStore adapter.ReportStore
var differ adapter.Differ

// workflow and ui are built per invocation unless a test has set them.
var workflow domain.Workflow
var ui controller.UI

func init() {
	fsAdapter = adapter.NewLocalImageFSAdapter()
	reportStore = adapter.NewReportStore()
	differ = adapter.NewPixelDiffer()
}

var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goreg ACTUAL EXPECTED DIFF",
		Short: "Visual regression testing tool",
		Long: `Goreg compares a directory of actual screenshots against a directory of
expected ones, writes a diff image for every changed file and produces
JSON, HTML and JUnit reports.

Images are matched by their path relative to each directory:
  - present in both      compared pixel by pixel
  - only in ACTUAL       reported as new
  - only in EXPECTED     reported as deleted`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			runArgs, err := newRunArgs(cfg, args[0], args[1], args[2])
			if err != nil {
				return err
			}

			return execute(cmd, cfg, controller.WithCompareMode(), func(ctx context.Context, wf domain.Workflow) (m.JSONReport, error) {
				return wf.Run(ctx, runArgs)
			})
		},
	}

	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default .goreg.yaml, then $XDG_CONFIG_HOME/goreg/config.yaml)")
	config.RegisterFlags(cmd.Flags())

	cmd.AddCommand(newReportCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		printFailure(os.Stderr, err)
		os.Exit(1)
	}
}

// printFailure writes err unless the summary already showed it or it only
// signals detected changes.
func printFailure(w io.Writer, err error) {
	var shown displayedError
	if errors.Is(err, m.ErrChangesDetected) || errors.As(err, &shown) {
		return
	}

	_, _ = fmt.Fprintln(w, "goreg:", err)
}

// displayedError wraps a workflow error that the UI summary has printed.
type displayedError struct {
	err error
}

func (e displayedError) Error() string { return e.err.Error() }

func (e displayedError) Unwrap() error { return e.err }

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newRunArgs(cfg *config.Config, actualDir, expectedDir, diffDir string) (domain.RunArgs, error) {
	prefix, err := cfg.ParseURLPrefix()
	if err != nil {
		return domain.RunArgs{}, err
	}

	return domain.RunArgs{
		ActualDir:         actualDir,
		ExpectedDir:       expectedDir,
		DiffDir:           diffDir,
		JSONPath:          cfg.JSON,
		ReportPath:        cfg.Report,
		JUnitPath:         cfg.JUnit,
		URLPrefix:         prefix,
		MatchingThreshold: cfg.MatchingThreshold,
		Thresholds: m.Thresholds{
			Pixel: cfg.ThresholdPixel,
			Rate:  cfg.ThresholdRate,
		},
		Concurrency:     cfg.Concurrency,
		EnableAntialias: cfg.EnableAntialias,
		Update:          cfg.Update,
		ExtendedErrors:  cfg.ExtendedErrors,
		IgnoreChange:    cfg.IgnoreChange,
	}, nil
}

type runFunc func(ctx context.Context, wf domain.Workflow) (m.JSONReport, error)

// execute wires logging, tracing and the UI around a single workflow call.
func execute(cmd *cobra.Command, cfg *config.Config, mode controller.StartOption, run runFunc) error {
	logger.Level.SetByName(cfg.LogLevel)
	log := logger.New(logger.Options{Output: cmd.ErrOrStderr(), Tracing: cfg.Tracing})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var collector *trace.Collector
	if cfg.Tracing {
		collector = trace.Default()
		collector.Reset()
		collector.SetExternalContext(cfg.TraceID, cfg.ParentSpanID)
		ctx = trace.WithCollector(ctx, collector)
	}

	view := ui
	if view == nil {
		view = controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	}

	wf := workflow
	if wf == nil {
		wf = domain.NewWorkflow(fsAdapter, reportStore, differ,
			domain.WithObserver(uiObserver{ui: view}),
			domain.WithLogger(log),
		)
	}

	if err := view.Start(mode, controller.WithInterrupt(cancel)); err != nil {
		return err
	}

	result, runErr := run(ctx, wf)

	view.Close()
	view.Wait()

	summaryErr := view.DisplaySummary(result, runErr)

	if collector != nil {
		if err := exportTrace(collector, cfg.TraceOutput); err != nil {
			log.Error("trace export failed", "path", cfg.TraceOutput, "error", err)
		}
	}

	if runErr != nil {
		return displayedError{err: runErr}
	}

	return summaryErr
}

func exportTrace(collector *trace.Collector, path string) error {
	data, err := collector.ExportJSON()
	if err != nil {
		return err
	}

	return reportStore.SaveArtifact(path, []byte(data))
}

// uiObserver forwards workflow progress to the UI.
type uiObserver struct {
	ui controller.UI
}

func (o uiObserver) OnDiscovered(detected m.DetectedImages, workers int) {
	o.ui.DisplayDiscovery(detected, workers)
}

func (o uiObserver) OnCompared(path m.Path, outcome m.DiffOutcome) {
	o.ui.DisplayCompletedDiff(path, outcome)
}

var _ domain.Observer = uiObserver{}
