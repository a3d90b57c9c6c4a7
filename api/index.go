package handler

import (
	"net/http"
	"sync"

	"futsal/config"
	"futsal/di"
	"futsal/shared/logger"
)

var (
	once    sync.Once
	adaptor http.HandlerFunc
)

// Handler is the serverless entry point. The booking scheduler does not run
// here; deployments on this path trigger sweeps via the admin endpoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app := di.InitializeService()
		go app.History.Run()

		adaptor = app.HTTP.Adaptor()
	})

	adaptor(w, r)
}
