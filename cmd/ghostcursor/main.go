package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"log/slog"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"golang.org/x/sync/errgroup"

	slogger "ghostcursor/cmd/ghostcursor/log"
	"ghostcursor/internal/config"
	"ghostcursor/internal/cursor"
	"ghostcursor/internal/event"
	"ghostcursor/internal/geometry"
	"ghostcursor/internal/motion"
	"ghostcursor/internal/surface"
)

// wrapWithRecover wraps a function with panic recovery logic.
func wrapWithRecover(logger *slog.Logger, f func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				logger.Error(fmt.Sprintf("panic recovered: %v\nStacktrace: %s", r, debug.Stack()))
			}
		}()
		return f()
	}
}

func main() {
	cfgPath := flag.String("config", "ghostcursor.yaml", "path to the YAML configuration")
	pageURL := flag.String("url", "", "page to open")
	flag.Usage = func() {
		fmt.Println("usage: ghostcursor -url <page> [flags] action...")
		fmt.Println("actions: click:<selector> | move:<selector> | moveto:<x>,<y>")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		stdlog.Fatalf("Error loading configuration: %s", err.Error())
	}

	logger, err := slogger.NewLogger(cfg.Log.Debug, cfg.Log.Dir)
	if err != nil {
		stdlog.Fatalf("Error starting logger: %s", err.Error())
	}
	defer slogger.FlushAndClose()

	if *pageURL == "" || flag.NArg() == 0 {
		flag.Usage()
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	controlURL := cfg.Browser.ControlURL
	if controlURL == "" {
		launch := launcher.New().Context(ctx).Headless(cfg.Browser.Headless)
		if cfg.Browser.Bin != "" {
			launch = launch.Bin(cfg.Browser.Bin)
		}
		controlURL, err = launch.Launch()
		if err != nil {
			logger.Error("failed to launch browser", slog.Any("error", err))
			return
		}
		defer launch.Cleanup()
	}

	browser := rod.New().Context(ctx).ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		logger.Error("failed to connect to browser", slog.Any("error", err))
		return
	}
	defer func() {
		_ = browser.Close()
	}()

	page, err := browser.Page(proto.TargetCreateTarget{URL: *pageURL})
	if err != nil {
		logger.Error("failed to open page", slog.Any("error", err))
		return
	}
	if err := page.WaitLoad(); err != nil {
		logger.Error("failed to load page", slog.Any("error", err))
		return
	}

	listener := event.NewListener(logger)
	listener.Register(func(_ context.Context, e event.Event) error {
		logger.Info(e.Message(), slog.String("id", e.ID()))
		return nil
	})

	cur := cursor.New(
		surface.NewRod(browser, page),
		motion.NewGenerator(cfg.Motion),
		logger,
		cursor.WithEmitter(listener),
		cursor.WithStepDelay(cfg.Trace.StepDelayMs),
		cursor.WithClickTiming(
			time.Duration(cfg.Click.HoldMinMs)*time.Millisecond,
			time.Duration(cfg.Click.HoldMaxMs)*time.Millisecond,
			time.Duration(cfg.Click.SettleMaxMs)*time.Millisecond,
		),
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(wrapWithRecover(logger, func() error {
		return listener.Listen(ctx)
	}))

	if cfg.Idle.Enabled {
		cur.StartIdleJitter(ctx,
			time.Duration(cfg.Idle.MinIntervalMs)*time.Millisecond,
			time.Duration(cfg.Idle.MaxIntervalMs)*time.Millisecond,
		)
	}

	g.Go(wrapWithRecover(logger, func() error {
		defer cancel()
		for _, action := range flag.Args() {
			if err := runAction(ctx, cur, action); err != nil {
				return err
			}
		}
		return nil
	}))

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Error running ghostcursor", slog.Any("error", err))
	}
}

func runAction(ctx context.Context, cur *cursor.Cursor, action string) error {
	verb, arg, ok := strings.Cut(action, ":")
	if !ok {
		return fmt.Errorf("malformed action %q", action)
	}
	switch verb {
	case "click":
		return cur.Click(ctx, arg)
	case "move":
		return cur.Move(ctx, arg, 0)
	case "moveto":
		var p geometry.Point
		if _, err := fmt.Sscanf(arg, "%f,%f", &p.X, &p.Y); err != nil {
			return fmt.Errorf("malformed coordinates %q: %w", arg, err)
		}
		return cur.MoveTo(ctx, p)
	default:
		return fmt.Errorf("unknown action %q", verb)
	}
}
