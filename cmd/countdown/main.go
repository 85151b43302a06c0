// Countdown is a big, colorful terminal countdown.
//
// Usage:
//
//	countdown [flags] [duration]
//
// The duration token takes plain seconds ("90"), colon forms ("1:30",
// "0:1:30"), unit suffixes ("2h45m"), or ISO-8601 time durations ("PT10S").
// The -until flag targets a clock time ("18:30") or a full date-time
// ("2026-01-02 15:04") instead; when both are given, -until wins.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/carlmjohnson/versioninfo"
	"github.com/joho/godotenv"

	"github.com/LucaBoschetto/countdown.sh/internal/display"
	"github.com/LucaBoschetto/countdown.sh/internal/domain"
	"github.com/LucaBoschetto/countdown.sh/internal/engine"
	"github.com/LucaBoschetto/countdown.sh/internal/logger"
	"github.com/LucaBoschetto/countdown.sh/internal/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	var (
		until    = flag.String("until", "", "count down to a clock time or date-time instead of a duration")
		font     = flag.String("font", envOr("COUNTDOWN_FONT", domain.DefaultFont), "glyph font for countdown frames")
		mode     = flag.String("mode", envOr("COUNTDOWN_MODE", "overwrite"), "frame redraw style: scroll, clear, or overwrite")
		left     = flag.Bool("left", false, "left-align frames instead of centering them")
		throttle = flag.Duration("throttle", 0, "per-line paint delay for a rolling reveal, e.g. 40ms")
		color    = flag.Bool("color", colorDefault(), "pipe frames through the gradient colorizer")
		spread   = flag.Float64("spread", domain.DefaultSpread, "colorizer gradient spread")
		freq     = flag.Float64("freq", domain.DefaultFreq, "colorizer gradient frequency")
		soundOn  = flag.Bool("sound", false, "play audible cues on completion")
		title    = flag.Bool("title", false, "mirror the remaining time into the terminal title")
		message  = flag.String("message", domain.DefaultMessage, "completion message")
		command  = flag.String("command", "", "shell command to run after completion")
		yes      = flag.Bool("yes", false, "assume yes for confirmations")
		verbose  = flag.Bool("verbose", false, "enable debug logging on stderr")
		version  = flag.Bool("version", false, "print version information and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println("countdown " + versioninfo.Short())
		return 0
	}

	level := logger.LevelOff
	if *verbose {
		level = logger.LevelVerbose
	}
	log := logger.New(level, os.Stderr)
	diag := display.NewDiag(log, os.Stderr)

	// Frames own stdout; anything the standard log package emits must stay
	// off it.
	stdlog.SetOutput(os.Stderr)
	stdlog.SetFlags(stdlog.Ltime)

	if flag.NArg() > 1 {
		diag.Errorf("expected at most one duration argument, got %d", flag.NArg())
		return 2
	}

	renderMode, err := domain.ParseRenderMode(*mode)
	if err != nil {
		diag.Errorf("%v", err)
		return 2
	}

	settings := domain.Settings{
		Duration:    flag.Arg(0),
		Until:       *until,
		Font:        *font,
		Mode:        renderMode,
		LeftAlign:   *left,
		Throttle:    *throttle,
		Color:       *color,
		Spread:      *spread,
		Freq:        *freq,
		Sound:       *soundOn,
		Title:       *title,
		Message:     *message,
		Command:     *command,
		AssumeYes:   *yes,
		Interactive: terminal.IsInteractive(),
	}
	if err := settings.Validate(); err != nil {
		return report(diag, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher := terminal.NewWatcher()
	watcher.Start()
	defer watcher.Stop()

	eng := engine.New(settings, log, engine.WithResizeEvents(watcher.Events()))
	if err := eng.Run(ctx); err != nil {
		return report(diag, err)
	}
	return 0
}

// report maps a run error onto the process exit code, printing it unless the
// engine already explained itself.
func report(diag *display.Diag, err error) int {
	var exitErr *exec.ExitError
	switch {
	case errors.Is(err, domain.ErrInterrupted):
		// The interruption notice is already on screen.
		return 130
	case errors.As(err, &exitErr):
		// The finish command spoke for itself; forward its status.
		return exitErr.ExitCode()
	case errors.Is(err, domain.ErrParse):
		diag.Errorf("%v", err)
		return 2
	case errors.Is(err, domain.ErrRenderDepMissing):
		diag.Errorf("%v", err)
		return 3
	case errors.Is(err, domain.ErrConfirmationDeclined):
		diag.Noticef("countdown cancelled")
		return 1
	default:
		diag.Errorf("%v", err)
		return 1
	}
}

// envOr returns the environment value for key, or fallback when it is unset
// or empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// colorDefault keeps pipes clean and honors the NO_COLOR convention: color
// defaults on only for an interactive stdout.
func colorDefault() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return terminal.IsTTY(os.Stdout)
}
