package main

import (
	"github.com/Lucasteinmann/Aarebooking/config"
	"github.com/Lucasteinmann/Aarebooking/di"
	"github.com/Lucasteinmann/Aarebooking/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
