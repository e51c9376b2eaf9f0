package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/daily"
	"github.com/robalobadob/wordle/internal/tui"
	"github.com/robalobadob/wordle/internal/words"
)

func newPlayCommand(a *app) *cobra.Command {
	var (
		logFile string
		length  int
		tries   int
		today   bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: `Start an interactive game. Type letters, backspace to delete, enter to
submit, ctrl+n for a new word and esc to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("length") {
				a.cfg.WordLength = length
			}
			if cmd.Flags().Changed("tries") {
				a.cfg.MaxTries = tries
			}
			if today {
				a.cfg.Picker = "daily"
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			// the TUI owns the terminal, so logs go to a file or nowhere
			closeLog, err := fileLogger(logFile)
			if err != nil {
				return err
			}
			defer closeLog()

			list, err := words.Load(cmd.Context(), a.cfg.WordOptions())
			if err != nil {
				return err
			}
			if a.cfg.Picker == "daily" {
				log.Info().Str("date", daily.DateKey(time.Now())).Msg("daily word")
			}
			return tui.Run(tui.Options{
				Words:    list,
				Picker:   a.picker(),
				MaxTries: a.cfg.Tries(),
				Scoring:  a.cfg.ScoringMode(),
			})
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while playing")
	cmd.Flags().IntVarP(&length, "length", "l", 5, "word length")
	cmd.Flags().IntVarP(&tries, "tries", "t", 0, "number of tries (0 = length + 1)")
	cmd.Flags().BoolVar(&today, "daily", false, "play today's word")
	return cmd
}

// fileLogger points the global logger at path, or disables it.
func fileLogger(path string) (func(), error) {
	if path == "" {
		log.Logger = zerolog.Nop()
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }, nil
}
