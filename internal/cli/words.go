package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/assets"
	"github.com/robalobadob/wordle/internal/words"
)

func newWordsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage word lists",
	}
	cmd.AddCommand(newWordsImportCommand(a))
	cmd.AddCommand(newWordsStatsCommand(a))
	return cmd
}

func newWordsImportCommand(a *app) *cobra.Command {
	var db, answersFile, allowedFile string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy word lists into a SQLite database",
		Long: `Import answers and allowed guesses into the SQLite database used by
WORDS_DB. Without --answers/--allowed the built-in lists are imported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if db == "" {
				db = a.cfg.WordsDB
			}
			if db == "" {
				return errors.New("no database: pass --db or set WORDS_DB")
			}
			answers, allowed, err := importSources(answersFile, allowedFile)
			if err != nil {
				return err
			}
			n, err := words.ImportSQLite(cmd.Context(), db, answers, allowed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d new words into %s\n", n, db)
			return nil
		},
	}
	cmd.Flags().StringVar(&db, "db", "", "SQLite database path (default WORDS_DB)")
	cmd.Flags().StringVar(&answersFile, "answers", "", "answers file, one word per line")
	cmd.Flags().StringVar(&allowedFile, "allowed", "", "allowed guesses file, one word per line")
	return cmd
}

// importSources reads the lists to import. A lone allowed file doubles as
// the answers list, matching words.Load.
func importSources(answersFile, allowedFile string) (answers, allowed []string, err error) {
	switch {
	case answersFile != "" && allowedFile != "":
		if answers, err = words.ReadFile(answersFile); err == nil {
			allowed, err = words.ReadFile(allowedFile)
		}
	case allowedFile != "":
		allowed, err = words.ReadFile(allowedFile)
		answers = allowed
	case answersFile != "":
		answers, err = words.ReadFile(answersFile)
	default:
		if answers, err = assets.AnswersList(); err == nil {
			allowed, err = assets.AllowedList()
		}
	}
	return answers, allowed, err
}

func newWordsStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how many words the configured source provides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := words.Load(cmd.Context(), a.cfg.WordOptions())
			if err != nil {
				return err
			}
			ans, allowed := list.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "length %d: %d answers, %d allowed\n", list.Length(), ans, allowed)
			return nil
		},
	}
}
