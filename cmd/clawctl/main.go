package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/clawguinness/clawboard/cmd/clawctl/cmd"
	"github.com/clawguinness/clawboard/internal/config"
	"github.com/clawguinness/clawboard/internal/logger"
)

func main() {
	cfg := config.Load()

	flush := logger.Init(logger.Options{
		AppName:     cfg.AppName + "-ctl",
		Environment: cfg.AppEnv,
		Development: cfg.IsDevelopment(),
		SentryDSN:   cfg.SentryDSN,
	})
	defer flush()

	rootCmd := &cobra.Command{
		Use:          "clawctl",
		Short:        "Operator tools for clawboard",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cmd.MigrateCmd(cfg))
	rootCmd.AddCommand(cmd.AgentCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		flush()
		os.Exit(1)
	}
}
