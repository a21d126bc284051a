package main

import (
	"potteryloop/config"
	"potteryloop/di"
	"potteryloop/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
