package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avolkov/besedka/internal/config"
	"github.com/avolkov/besedka/internal/daemon"
	"github.com/avolkov/besedka/internal/logger"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bot",
	Long:  `Start the bot in the foreground and serve Telegram chats until interrupted.`,
	RunE:  runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader(cfgFile).Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := config.NewValidator().Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Console: cfg.Logging.Console,
		Pretty:  cfg.Logging.Pretty,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Close()

	d, err := daemon.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create daemon: %w", err)
	}

	return d.Run()
}
