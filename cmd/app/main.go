package main

import (
	"tripgate/config"
	"tripgate/di"
	"tripgate/shared/logger"

	_ "tripgate/docs"
)

// @title Tripgate API
// @version 1.0
// @description Booking gateway for the travel platform: public catalog browsing, the OTP-gated booking flow, and the admin dashboard proxy.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
