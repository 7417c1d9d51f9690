package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/windmill-labs/windmill-homepage/internal/content"
	"github.com/windmill-labs/windmill-homepage/internal/devserver"
	"github.com/windmill-labs/windmill-homepage/internal/server"
	"github.com/windmill-labs/windmill-homepage/internal/site"
	"github.com/windmill-labs/windmill-homepage/pkg/logging"
	"github.com/windmill-labs/windmill-homepage/pkg/metrics"
	"github.com/windmill-labs/windmill-homepage/pkg/shutdown"
	"github.com/windmill-labs/windmill-homepage/pkg/tracing"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the homepage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context(), false)
		},
	}
}

func newDevCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dev",
		Short: "Serve the homepage and reload it when the content file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context(), true)
		},
	}
}

func (a *app) serve(ctx context.Context, dev bool) error {
	cfg, log := a.cfg, a.logger

	stopTracing, err := tracing.Setup(ctx, cfg.ServiceName, cfg.OTelEndpoint)
	if err != nil {
		return err
	}

	m := metrics.NewMetrics("windmill_homepage")
	srv := server.New(server.Options{
		Addr:      cfg.Addr,
		StaticDir: cfg.StaticDir,
		Version:   version,
		Logger:    log,
		Metrics:   m,
	})
	s := site.New(site.PageConfig(cfg.BaseURL), m)

	h := shutdown.NewHandler(shutdown.Config{
		Timeout: cfg.ShutdownTimeout,
		OnHookComplete: func(name string, err error, d time.Duration) {
			if err != nil {
				log.Warn("shutdown hook failed", logging.String("hook", name), logging.Err(err))
				return
			}
			log.Debug("shutdown hook done", logging.String("hook", name), logging.Duration("duration", d))
		},
	})
	h.RegisterFunc("http", shutdown.PriorityHTTP, srv.Shutdown)
	h.RegisterFunc("tracing", shutdown.PriorityTracing, stopTracing)
	if z, ok := log.(interface{ Sync() error }); ok {
		h.RegisterFunc("logging", shutdown.PriorityLogging, func(context.Context) error {
			z.Sync()
			return nil
		})
	}

	if dev {
		ds := devserver.New(devserver.Config{
			ContentFile: cfg.ContentFile,
			Debounce:    cfg.ReloadDebounce,
			Site:        s,
			Publisher:   srv,
			Logger:      log.With(logging.String("component", "devserver")),
			Metrics:     m,
		})
		ds.Routes(srv.Handle)

		devCtx, cancel := context.WithCancel(ctx)
		go func() {
			if err := ds.Run(devCtx); err != nil {
				log.Error("content watcher stopped", logging.Err(err))
			}
		}()
		h.RegisterFunc("devserver", shutdown.PriorityDevReload, func(context.Context) error {
			cancel()
			return ds.Close()
		})
	} else {
		cat, err := content.Load(cfg.ContentFile)
		if err != nil {
			return err
		}
		snap, err := s.Build(ctx, cat)
		if err != nil {
			return err
		}
		srv.Swap(snap)
		log.Info("homepage rendered", logging.Int("features", snap.Features), logging.String("etag", snap.ETag))
	}

	ctx, stop := context.WithCancel(ctx)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			serveErr <- err
			stop()
		}
	}()

	waitErr := h.Wait(ctx)
	select {
	case err := <-serveErr:
		return errors.Join(err, waitErr)
	default:
	}
	if waitErr != nil {
		return waitErr
	}
	log.Info("stopped")
	return nil
}
