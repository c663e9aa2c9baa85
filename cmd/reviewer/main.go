package main

import (
	"os"

	"github.com/jeremyhunt/empathetic-reviewer/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
