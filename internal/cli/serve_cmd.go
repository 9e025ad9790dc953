package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hikarisalon/concierge/internal/line"
	"github.com/hikarisalon/concierge/internal/server"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the webhook server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := buildApp(*configPath, true)
			if err != nil {
				return err
			}
			defer app.Close()

			replier := line.NewClient(app.Cfg.Line.ChannelToken)
			webhook := server.NewWebhookHandler(app.Cfg.Line.ChannelSecret, app.Bot, replier, app.Log)
			srv := server.New(app.Cfg.Server.Addr, webhook, app.Metrics, app.Log)

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-stop:
				app.Log.Info("shutting down", zap.String("signal", sig.String()))
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			return <-errCh
		},
	}
}
