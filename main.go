package main

import (
	"github.com/ubports/installer-reporter/cmd"
	"github.com/ubports/installer-reporter/pkg/logger"
)

func main() {
	logger.InitializeWithFallback("")
	cmd.Execute()
}
