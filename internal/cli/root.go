// Package cli wires configuration, logging and the two front ends into a
// cobra command tree.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/config"
	"github.com/robalobadob/wordle/internal/daily"
	"github.com/robalobadob/wordle/internal/words"
)

// app carries state shared by subcommands after PersistentPreRunE.
type app struct {
	envFile string
	cfg     config.Config
}

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "wordle",
		Short: "Play Wordle in the terminal or serve it over HTTP",
		Long: `wordle is a word-guessing game. Guess the hidden word in a limited number
of tries; each guess is scored letter by letter as correct, misplaced or absent.

Settings come from the environment (optionally a .env file) and can be
overridden per command with flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	rootCmd.AddCommand(newPlayCommand(a))
	rootCmd.AddCommand(newServeCommand(a))
	rootCmd.AddCommand(newWordsCommand(a))
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// load reads .env (if present) and the environment.
func (a *app) load() error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", a.envFile, err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// picker returns the configured target picker.
func (a *app) picker() words.Picker {
	if a.cfg.Picker == "daily" {
		return daily.Picker{Salt: a.cfg.DailySalt}
	}
	return words.RandomPicker{}
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			if version == "dev" || version == "" {
				version = "development"
			}
			if commit == "none" || commit == "" {
				commit = "local-build"
			}
			if date == "unknown" || date == "" {
				date = "local-build"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "wordle %s (%s) built on %s\n", version, commit, date)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
