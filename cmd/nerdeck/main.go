package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vytor/nerdeck/internal/app"
	"github.com/vytor/nerdeck/internal/config"
	"github.com/vytor/nerdeck/internal/logger"
)

// cli carries state shared by every subcommand.
type cli struct {
	verbose bool
	app     *app.App
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:           "nerdeck",
		Short:         "Spaced-repetition flashcards in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.close()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log at LOG_LEVEL instead of WARN")

	rootCmd.AddCommand(
		newUserCmd(c),
		newDeckCmd(c),
		newCardCmd(c),
		newDecksCmd(c),
		newStudyCmd(c),
		newLadderCmd(),
	)
	return rootCmd
}

func (c *cli) open() error {
	cfg := config.Load()

	level := logger.WARN
	if c.verbose {
		level = logger.ParseLevel(cfg.LogLevel)
	}
	logger.SetDefault(logger.New(
		logger.WithOutput(os.Stderr),
		logger.WithLevel(level),
		logger.WithColors(true),
	))

	a, err := app.Open(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	c.app = a
	return nil
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	return c.app.Close()
}
