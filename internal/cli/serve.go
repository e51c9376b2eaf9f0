package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/daily"
	"github.com/robalobadob/wordle/internal/httpserver"
	"github.com/robalobadob/wordle/internal/store"
	"github.com/robalobadob/wordle/internal/words"
)

func newServeCommand(a *app) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Port = port
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
				With().Timestamp().Logger()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			list, err := words.Load(ctx, a.cfg.WordOptions())
			if err != nil {
				return err
			}
			srv := httpserver.New(store.NewMemoryStore(), httpserver.Options{
				Words:        list,
				Picker:       a.picker(),
				Daily:        daily.Picker{Salt: a.cfg.DailySalt},
				MaxTries:     a.cfg.Tries(),
				Scoring:      a.cfg.ScoringMode(),
				JWTSecret:    []byte(a.cfg.JWTSecret),
				TokenTTL:     a.cfg.TokenTTL,
				CookieName:   a.cfg.CookieName,
				CookieSecure: a.cfg.CookieSecure,
				ClientOrigin: a.cfg.ClientOrigin,
				IdleTTL:      a.cfg.SessionIdleTTL,
			})
			log.Info().Str("port", a.cfg.Port).Str("picker", a.cfg.Picker).Msg("starting wordle server")
			return srv.Run(ctx, ":"+a.cfg.Port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "5175", "listen port")
	return cmd
}
