package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/go-drift/toolsarea/pkg/geometry"
	"github.com/go-drift/toolsarea/pkg/hosttree"
	"github.com/go-drift/toolsarea/pkg/theme"
	"github.com/go-drift/toolsarea/pkg/toolsarea"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Preview color scheme changes live",
		Long: `Watch the --theme color scheme file and print the tools area colors of a
sample window every time the file changes. Invalid edits are reported and
the previous palette is kept.

Flags:
  --listen ADDR   Serve Prometheus metrics on ADDR (for example :9464)

Stop with Ctrl-C.`,
		Usage: "toolsarea --theme FILE watch [--listen ADDR]",
		Run:   runWatch,
	})
}

// frameInterval paces the manager's frame loop.
const frameInterval = 16 * time.Millisecond

func runWatch(args []string) error {
	var listen string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--listen":
			if i+1 >= len(args) {
				return fmt.Errorf("--listen requires an address")
			}
			listen = args[i+1]
			i++
		default:
			return fmt.Errorf("unexpected argument %q", args[i])
		}
	}
	if globals.themePath == "" {
		return fmt.Errorf("--theme is required\n\nUsage: toolsarea --theme FILE watch")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tree := hosttree.New()
	reg := prometheus.NewRegistry()

	var m *toolsarea.Manager
	watcher, err := theme.NewWatcher(globals.themePath, func(p theme.Palette) {
		// Runs on the watcher goroutine; hand over to the frame loop.
		m.Post(func() {
			m.ThemeChanged()
			printPalette(globals.stdout, p)
		})
	}, logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	m = toolsarea.New(tree, toolsarea.Options{
		Config:     &cfg,
		Theme:      watcher,
		Logger:     logger,
		Registerer: reg,
	})
	defer m.Close()
	tree.SetSink(m.Dispatch)

	win := tree.AddWindow(geometry.RectFromLTWH(0, 0, 800, 600))
	bar, err := tree.Add(win, toolsarea.Node{Geometry: geometry.RectFromLTWH(0, 0, 800, 24), Visible: true})
	if err != nil {
		return err
	}
	m.RegisterElement(bar, toolsarea.KindCommandBar, win)
	printPalette(globals.stdout, watcher.Palette())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := watcher.Run(ctx)
		if stderrors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				m.Tick()
			}
		}
	})
	if listen != "" {
		srv := &http.Server{
			Addr:              listen,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logger.Info("serving metrics", slog.String("addr", listen))
			if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}
	return g.Wait()
}
