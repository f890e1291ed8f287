package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/camber-app/camber/internal/interfaces/cli/migrate"
	"github.com/camber-app/camber/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "camber",
		Short: "Camber - car build list catalog",
		Long:  `Camber is a web backend for cataloging car modifications: cars, parts, build lists, votes, and reports.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
