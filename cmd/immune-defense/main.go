package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/appengine-ltd/immune-defense/internal/audio"
	"github.com/appengine-ltd/immune-defense/internal/catalog"
	"github.com/appengine-ltd/immune-defense/internal/config"
	"github.com/appengine-ltd/immune-defense/internal/game"
	"github.com/appengine-ltd/immune-defense/internal/gui"
	"github.com/appengine-ltd/immune-defense/internal/log"
	"github.com/appengine-ltd/immune-defense/internal/metrics"
	"github.com/appengine-ltd/immune-defense/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		noAudio     bool
		frontend    string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&noAudio, "no-audio", false, "disable sound cues")
	flag.StringVar(&frontend, "frontend", "", "front-end to run: tui, gui or script (overrides IMMUNE_FRONTEND)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Immune Defense %s (%s) %s\n", version, commit, date)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	if frontend != "" {
		cfg.Frontend = frontend
	}
	if noAudio {
		cfg.Audio = false
	}
	if err := cfg.Validate(); err != nil {
		config.Exitf("config: %v", err)
	}

	logOut, closeLog, err := openLogOutput(cfg)
	if err != nil {
		config.Exitf("open log: %v", err)
	}
	defer closeLog()
	logger := log.Configure(log.Config{Level: cfg.LogLevel, Output: logOut})

	cat, err := catalog.Builtin()
	if err != nil {
		config.Exitf("load catalog: %v", err)
	}

	opts := []game.Option{game.WithLogger(log.WithComponent("game"))}

	var recorder *metrics.Recorder
	if cfg.MetricsAddr != "" {
		recorder = metrics.NewRecorder()
		opts = append(opts, game.WithObserver(recorder))
	}

	if cfg.Audio && cfg.Frontend != config.FrontendScript {
		player := audio.NewCuePlayer(log.WithComponent("audio"))
		if err := player.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio unavailable; continuing without sound")
		} else {
			defer player.Cleanup()
			opts = append(opts, game.WithObserver(player))
		}
	}

	ctrl := game.NewController(cat, opts...)
	logger.Info().
		Str("frontend", cfg.Frontend).
		Int("scenarios", cat.ScenarioCount()).
		Str("version", version).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	if recorder != nil {
		serveMetrics(gctx, g, cfg.MetricsAddr, recorder)
	}

	// raylib needs the main OS thread, so the front-end runs here rather
	// than in the group.
	runErr := runFrontend(ctx, cfg, ctrl)
	stop()
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("metrics listener failed")
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		config.Exitf("%v", runErr)
	}
}

func runFrontend(ctx context.Context, cfg config.App, ctrl *game.Controller) error {
	switch cfg.Frontend {
	case config.FrontendGUI:
		return gui.NewApp(gui.AppConfig{Version: version, FeedbackTTL: cfg.FeedbackTTL}, ctrl).Run()
	case config.FrontendScript:
		return ui.RunScript(ctx, ui.NewInterpreter(ctrl), os.Stdin, os.Stdout)
	default:
		return ui.NewApp(ui.AppConfig{Version: version, FeedbackTTL: cfg.FeedbackTTL}, ctrl).Run()
	}
}

func serveMetrics(ctx context.Context, g *errgroup.Group, addr string, recorder *metrics.Recorder) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", recorder.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics listener: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}

// openLogOutput picks where logs go. The terminal UI owns stdout and
// stderr, so without a log file its logs are dropped.
func openLogOutput(cfg config.App) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Close() }, nil
	}
	if cfg.Frontend == config.FrontendTUI {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}
