package main

import (
	"os"

	"github.com/your-org/roster/internal/cli"
	"github.com/your-org/roster/internal/logger"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		logger.Errorf("Error: %v", err)
		os.Exit(1)
	}
}
