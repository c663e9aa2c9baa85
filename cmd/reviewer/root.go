package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/jeremyhunt/empathetic-reviewer/config"
	"github.com/jeremyhunt/empathetic-reviewer/logger"
	"github.com/jeremyhunt/empathetic-reviewer/review"
)

// options holds the parsed command-line flags
type options struct {
	inPath  string
	outPath string
	model   string
	quiet   bool
	verbose bool
	debug   bool
	preview bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "reviewer --in <input.json> --out <report.md>",
		Short: "Empathetic Code Reviewer",
		Long: "Rewrites blunt code review comments into kind, actionable feedback and writes a Markdown report.\n" +
			"Uses OpenAI when OPENAI_API_KEY is set and falls back to canned rewrites otherwise.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.inPath, "in", "", "Path to input JSON")
	cmd.Flags().StringVar(&opts.outPath, "out", "", "Path to output Markdown")
	cmd.Flags().StringVar(&opts.model, "model", "", "OpenAI model to use (overrides OPENAI_MODEL)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Only print errors")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show detailed progress")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Show debug output")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Render the report in the terminal after writing it")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	cmd.MarkFlagsMutuallyExclusive("quiet", "verbose", "debug")

	return cmd
}

// run loads the input, builds the report and writes it. Nothing is written if an earlier step fails.
func run(ctx context.Context, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	switch {
	case opts.debug:
		logger.Initialize(logger.VerbosityDebug)
	case opts.verbose:
		logger.Initialize(logger.VerbosityVerbose)
	case opts.quiet:
		logger.Initialize(logger.VerbosityQuiet)
	default:
		logger.Initialize(logger.VerbosityNormal)
	}
	logger.SetTotalSteps(3)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	if opts.model != "" {
		cfg.Model = opts.model
	}

	strategy := review.NewStrategy(cfg)
	if cfg.HasOpenAIKey() {
		logger.Verbose("Using model: %s", cfg.Model)
	} else {
		logger.Verbose("OPENAI_API_KEY not set, using canned rewrites")
	}

	logger.Step("Loading review input")
	req, err := review.LoadRequest(opts.inPath)
	if err != nil {
		return err
	}
	logger.StepDetail("%d comment(s) found", len(req.Comments))

	logger.Step("Rewriting comments")
	report, err := review.BuildReport(ctx, strategy, req, time.Now())
	if err != nil {
		return err
	}

	logger.Step("Writing report")
	if err := review.WriteReport(opts.outPath, report); err != nil {
		return err
	}

	if opts.preview {
		renderPreview(report)
	}

	logger.Complete()
	return nil
}

// renderPreview prints the report as styled Markdown. Failures only affect the preview.
func renderPreview(report string) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		logger.Error("could not create preview renderer: %v", err)
		return
	}

	out, err := renderer.Render(report)
	if err != nil {
		logger.Error("could not render preview: %v", err)
		return
	}
	logger.Info("%s", out)
}
