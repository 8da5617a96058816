package main

import (
	"os"

	"github.com/insightdelivered/finance-insights/internal/commands"
	"github.com/insightdelivered/finance-insights/internal/logger"
)

func main() {
	logger.Init()
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
