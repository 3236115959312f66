package main

import (
	"fmt"
	"os"

	"github.com/light-bringer/salesgen/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "salesgen: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return newRootCmd(cfg, os.Stdout, os.Stderr).Execute()
}
