package main

import (
	"github.com/spf13/cobra"

	"sqlgenie/config"
	"sqlgenie/logger"
)

func main() {
	cfg := config.GetConfig()
	logger.Setup(cfg.Log.Level, cfg.Log.Format)

	rootCmd := &cobra.Command{
		Use:           "sqlgenie",
		Short:         "Turn natural-language questions into (mock) SQL",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cfg)
		},
	}

	rootCmd.AddCommand(newServeCmd(cfg), newAskCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Command failed", logger.Ctx{"err": err})
	}
}
