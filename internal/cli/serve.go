package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	_ "memos-widget/docs" // Swagger docs
	checklistHTTP "memos-widget/internal/checklist/delivery/http"
	"memos-widget/internal/httpserver"
	"memos-widget/internal/scheduler"
	memosSync "memos-widget/internal/sync"
	"memos-widget/internal/webhook"
)

func addServe(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run headless with a JSON API and the Memos webhook.",
		Example: `
memowidget serve
curl localhost:8765/api/v1/checklist/panel
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			a, err := newApp(ro.configPath, false)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a)
		},
	}
	topLevel.AddCommand(cmd)
}

func serve(ctx context.Context, a *app) error {
	a.l.Info(ctx, "Starting memowidget server...")
	a.l.Infof(ctx, "Environment: %s", a.cfg.Environment.Name)
	a.l.Infof(ctx, "Memos URL: %s, memo %s", a.cfg.Memos.URL, a.cfg.Memos.MemoID)

	a.cfg.Watch(a.settings.Store)
	loop := scheduler.New(a.l, a.uc, a.settings)

	srvCfg := httpserver.Config{
		Logger:           a.l,
		Host:             a.cfg.HTTPServer.Host,
		Port:             a.cfg.HTTPServer.Port,
		Mode:             a.cfg.HTTPServer.Mode,
		Environment:      a.cfg.Environment.Name,
		ChecklistHandler: checklistHTTP.New(a.l, loop),
	}
	if a.cfg.Webhook.Enabled {
		security := webhook.NewSecurityValidator(webhook.SecurityConfig{
			Secret:          a.cfg.Webhook.Secret,
			AllowedIPs:      a.cfg.Webhook.AllowedIPs,
			RateLimitPerMin: a.cfg.Webhook.RateLimitPerMin,
		})
		srvCfg.WebhookHandler = memosSync.NewWebhookHandler(loop, a.cfg.Memos.MemoID, security, a.l)
	}

	srv, err := httpserver.New(a.l, srvCfg)
	if err != nil {
		a.l.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loop.Run(gctx) })
	g.Go(func() error { return srv.Run(gctx) })

	if err := g.Wait(); err != nil {
		a.l.Error(ctx, "Server stopped with error: ", err)
		return err
	}
	a.l.Info(ctx, "Server stopped gracefully")
	return nil
}
