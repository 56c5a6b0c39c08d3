package main

import (
	"context"

	"github.com/niksmo/emporium/config"
	"github.com/niksmo/emporium/internal/app"
	"github.com/niksmo/emporium/pkg/sigctx"
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	emporium := app.New(sigCtx, cfg)

	emporium.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	emporium.Close(ctx)
}
