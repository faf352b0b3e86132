package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/polkiloo/fundvault/internal/cli"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "fundvaultctl",
	Short:   "Operator utilities for the fundvault service",
	Version: version,
}

func init() {
	rootCmd.AddCommand(cli.NewAuthCmd())
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
