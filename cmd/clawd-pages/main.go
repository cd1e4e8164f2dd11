// Command clawd-pages renders a curated digest document (JSON or YAML)
// into a static HTML page.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/wxyz-claw/clawd-pages/internal/digest"
	"github.com/wxyz-claw/clawd-pages/internal/output/render"
	"github.com/wxyz-claw/clawd-pages/internal/output/writer"
	"github.com/wxyz-claw/clawd-pages/internal/platform/config"
	"github.com/wxyz-claw/clawd-pages/internal/watch"
)

var CLI struct {
	Input    string `short:"i" required:"" help:"Path to the digest document, or - for stdin"`
	Output   string `short:"o" help:"Output HTML path (default: index.html, or DIGEST_OUTPUT)"`
	Template string `short:"t" help:"Template path (default: built-in template, or DIGEST_TEMPLATE)"`
	Format   string `short:"f" enum:"auto,json,yaml" default:"auto" help:"Input format"`
	Date     string `help:"Override the digest date; machine-readable dates are prettified"`
	Sanitize bool   `help:"Run raw HTML fields through a UGC sanitizer"`
	Watch    bool   `short:"w" help:"Re-render whenever the input or template changes"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("clawd-pages"),
		kong.Description("Render a curated digest document into a static HTML page."))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.AppEnv, CLI.Verbose)

	output := CLI.Output
	if output == "" {
		output = cfg.Output
	}

	templatePath := CLI.Template
	if templatePath == "" {
		templatePath = cfg.Template
	}

	renderer := render.New(render.Options{SanitizeRawHTML: CLI.Sanitize || cfg.SanitizeHTML})

	renderOnce := func() error {
		return renderPage(logger, renderer, cfg, templatePath, output)
	}

	if CLI.Watch {
		if CLI.Input == digest.StdinPath {
			logger.Fatal().Msg("--watch requires a file input, not stdin")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := renderOnce(); err != nil {
			logger.Error().Err(err).Msg("initial render failed")
		}

		paths := []string{CLI.Input, templatePath}
		if err := watch.Run(ctx, logger, paths, renderOnce); err != nil && !errors.Is(err, context.Canceled) {
			logger.Fatal().Err(err).Msg("watch failed")
		}

		logger.Info().Msg("stopped")

		return
	}

	if err := renderOnce(); err != nil {
		logger.Fatal().Err(err).Msg("render failed")
	}
}

func renderPage(logger zerolog.Logger, renderer *render.Renderer, cfg *config.Config, templatePath, output string) error {
	raw, err := digest.Load(CLI.Input, digest.Format(CLI.Format))
	if err != nil {
		return err
	}

	doc := digest.Normalize(raw, digest.Options{
		LinkLabel: cfg.LinkLabel,
		Date:      digest.PrettyDate(CLI.Date),
	})

	template, err := render.LoadTemplate(templatePath)
	if err != nil {
		return err
	}

	page, err := renderer.Render(doc, template)
	if err != nil {
		return err
	}

	if err := writer.WriteFile(output, page); err != nil {
		return err
	}

	logger.Debug().
		Str("input", CLI.Input).
		Str("output", output).
		Int("bytes", len(page)).
		Int("sections", len(doc.Sections)).
		Msg("rendered digest")

	return nil
}

func newLogger(appEnv string, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	if appEnv == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(level).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}
