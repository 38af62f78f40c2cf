package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/theme"
)

const cleanupInterval = 24 * time.Hour

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
}

func sessionOptions(cfg *config.Config) (session.Options, error) {
	pref, err := theme.Parse(cfg.Theme.Default)
	if err != nil {
		return session.Options{}, err
	}
	return session.Options{
		Theme:           pref,
		RevealThreshold: cfg.Reveal.Threshold,
		ContactDelay:    cfg.Contact.Delay,
		TTL:             cfg.Session.TTL,
		MaxViews:        cfg.Session.MaxViews,
	}, nil
}

func runServe(ctx context.Context, flags *rootFlags) error {
	cfg, log, err := setup(flags)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, err := sessionOptions(cfg)
	if err != nil {
		return err
	}
	views := session.NewStore(opts, log)

	var visits *analytics.Store
	if cfg.Analytics.Enabled {
		db, err := analytics.Open(cfg.Analytics.Path)
		if err != nil {
			return err
		}
		if visits, err = analytics.NewStore(db, cfg.Analytics.Salt); err != nil {
			db.Close()
			return err
		}
		defer visits.Close()
		log.Info("visitor tracking enabled with hashed addresses", zap.String("db", cfg.Analytics.Path))
	}

	srv, err := server.New(cfg, views, visits, log)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(ctx, ":"+cfg.Server.Port)
	})
	g.Go(func() error {
		return views.Run(ctx, cfg.Session.SweepInterval)
	})
	if visits != nil {
		g.Go(func() error {
			return cleanupLoop(ctx, visits, cfg.Analytics.Retention, log)
		})
	}
	return g.Wait()
}

// cleanupLoop purges visits past retention at start and then daily.
func cleanupLoop(ctx context.Context, visits *analytics.Store, retention time.Duration, log *zap.Logger) error {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		removed, err := visits.Cleanup(ctx, retention)
		switch {
		case err != nil && ctx.Err() == nil:
			log.Warn("privacy cleanup failed", zap.Error(err))
		case removed > 0:
			log.Info("privacy cleanup", zap.Int64("removed", removed))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
