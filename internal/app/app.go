package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	historyService "futsal/internal/domains/history/service"
	"futsal/internal/scheduler"
	"futsal/transport/http"
)

// App ties the HTTP server to the background workers: the async history
// writer and the auto-completion scheduler.
type App struct {
	HTTP       *http.HTTP
	History    historyService.Logger
	Completion scheduler.Completion
}

func New(httpServer *http.HTTP, history historyService.Logger, completion scheduler.Completion) *App {
	return &App{
		HTTP:       httpServer,
		History:    history,
		Completion: completion,
	}
}

// Run starts the background workers and serves HTTP until shutdown. The
// history writer is drained last so entries emitted during shutdown still
// reach the database.
func (a *App) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go a.History.Run()
	defer a.History.Close()

	go a.Completion.Start(ctx)

	a.HTTP.Serve()
}
