package client

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/service"
	"github.com/MKhiriev/go-pass-bridge/internal/workers"
	"github.com/MKhiriev/go-pass-bridge/models"
)

type App struct {
	services *service.Services

	userID       string
	follow       bool
	syncEnabled  bool
	syncInterval time.Duration

	out    io.Writer
	logger *logger.Logger
}

// NewApp wires the runtime over services. Items are printed to out.
// Returns [ErrNoUserID] when cfg.App.UserID is empty.
func NewApp(services *service.Services, cfg config.StructuredConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	if cfg.App.UserID == "" {
		return nil, ErrNoUserID
	}

	return &App{
		services:     services,
		userID:       cfg.App.UserID,
		follow:       cfg.App.Follow,
		syncEnabled:  cfg.Sync.SourceURL != "" || cfg.Sync.SourceFile != "",
		syncInterval: cfg.Sync.Interval,
		out:          out,
		logger:       logger,
	}, nil
}

// Run implements [Client]. A failed initial sync is logged and the locally
// stored items are shown instead. With sync or follow enabled Run blocks
// until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.services.BridgeItemService.EnsureKey(ctx); err != nil {
		return fmt.Errorf("ensure shared key: %w", err)
	}

	if a.syncEnabled {
		if err := a.services.SyncService.FullSync(ctx, a.userID); err != nil {
			a.logger.Warn().Err(err).Str("func", "App.Run").Str("user_id", a.userID).Msg("initial sync failed")
		}
	}

	var ws []workers.Worker
	if a.syncEnabled {
		ws = append(ws, workers.Func(a.runSyncJob))
	}
	if a.follow {
		ws = append(ws, workers.Func(a.followItems))
	} else if err := a.printItems(a.services.BridgeItemService.AvailableItems(ctx, a.userID)); err != nil {
		return err
	}

	return workers.New(ws...).Run(ctx)
}

func (a *App) runSyncJob(ctx context.Context) error {
	a.services.SyncJob.Start(ctx, a.userID, a.syncInterval)
	<-ctx.Done()
	a.services.SyncJob.Stop()
	return nil
}

// followItems prints every snapshot of the user's items, starting with the
// current one, until ctx is cancelled.
func (a *App) followItems(ctx context.Context) error {
	stream, err := a.services.BridgeItemService.ItemsStream(ctx, a.userID)
	if err != nil {
		return fmt.Errorf("open items stream: %w", err)
	}

	for items := range stream {
		if err = a.printItems(items); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) printItems(items []models.BridgeItem) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "ID\tNAME\tUSERNAME\tTOTP\tFAVORITE\n")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", item.ID, item.Name, deref(item.Username), mask(item.TOTPKey), item.Favorite)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("print items: %w", err)
	}

	a.logger.Debug().Str("func", "App.printItems").Str("user_id", a.userID).Int("count", len(items)).Msg("printed bridge items")
	return nil
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// mask hides the TOTP secret and only shows whether one is set.
func mask(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return "set"
}
