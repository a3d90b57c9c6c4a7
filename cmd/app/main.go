package main

import (
	"futsal/config"
	"futsal/di"
	"futsal/shared/logger"
)

// @title Futsal Field Booking API
// @version 1.0
// @description REST backend for futsal field reservations, payments and booking audit trails.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeService()
	app.Run()
}
