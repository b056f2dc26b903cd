package cli

import (
	"context"
	"errors"
	"fmt"

	"memos-widget/config"
	"memos-widget/internal/checklist"
	"memos-widget/internal/checklist/repository"
	"memos-widget/internal/checklist/repository/cache"
	"memos-widget/internal/checklist/repository/memos"
	"memos-widget/internal/checklist/usecase"
	"memos-widget/pkg/log"
)

var errNotPushed = errors.New("change kept locally, Memos did not accept it")

// app is everything a command needs, built from one config load.
type app struct {
	cfg      *config.Config
	l        log.Logger
	client   *memos.Client
	settings *config.Settings
	uc       checklist.UseCase
}

// newApp wires config, logger, Memos client, cache and use case. When
// logToFile is set the logger writes to the configured file so the terminal
// stays clean.
func newApp(configPath string, logToFile bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	zc := log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	}
	if logToFile {
		zc.OutputPath = cfg.Logger.File
	}
	l := log.Init(zc)

	client := memos.NewClient(cfg.Memos.URL, cfg.Memos.AccessToken, cfg.Memos.Timeout)
	store := memos.New(client, cfg.Memos.MemoID, l)

	var blobCache repository.BlobCache
	if cfg.Cache.Enabled {
		blobCache = cache.New(cfg.Cache.Dir, client.MemoURL(cfg.Memos.MemoID))
	}

	settings := config.NewSettings(cfg.Widget)

	return &app{
		cfg:      cfg,
		l:        l,
		client:   client,
		settings: settings,
		uc:       usecase.New(l, store, blobCache, settings),
	}, nil
}

func (a *app) memoURL() string {
	return a.client.MemoURL(a.cfg.Memos.MemoID)
}

// load pulls once for a one-shot command. A failed pull is fine as long as
// the cache produced a document.
func (a *app) load(ctx context.Context) error {
	out, err := a.uc.Pull(ctx)
	if err == nil || out.FromCache {
		return nil
	}
	return err
}

// edit loads, applies fn and insists the push went through.
func (a *app) edit(ctx context.Context, fn func(ctx context.Context, uc checklist.UseCase) (checklist.EditOutput, error)) (checklist.EditOutput, error) {
	if err := a.load(ctx); err != nil {
		return checklist.EditOutput{}, err
	}
	out, err := fn(ctx, a.uc)
	if err != nil {
		return out, err
	}
	if out.Applied && !out.Pushed {
		return out, errNotPushed
	}
	return out, nil
}
