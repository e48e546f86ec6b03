package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nanwallalit20/home-task-payment-providers/config"
	"github.com/nanwallalit20/home-task-payment-providers/internal/app"
	"github.com/nanwallalit20/home-task-payment-providers/internal/webapi"
	"github.com/nanwallalit20/home-task-payment-providers/internal/webserver"
)

var (
	cfile  = flag.String("c", "shopd.yml", "config file")
	initdb = flag.Bool("initdb", false, "drop and recreate the database schema, then exit")
)

func main() {
	flag.Parse()

	cfg := config.LoadConfig(*cfile)
	cfg.InitDirs()

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.L().Info("database initialized")
		return
	}

	ws := webserver.Init(cfg, application.DB())
	webapi.InitRouter(cfg, application.PaymentService())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ws.Listen(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		zap.L().Info("shutting down")
		return ws.Close()
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}
