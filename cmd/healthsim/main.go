package main

import (
	"fmt"
	"os"

	"aushealthsim/internal/app/config"
	"aushealthsim/internal/app/delivery/cli"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	command := cli.NewRootCommand(driverConfig, internalConfig)
	if err := command.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.Message(err))
		os.Exit(cli.ExitCode(err))
	}
}
