package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprechen/internal/app"
	"github.com/abhisek/sprechen/internal/deck"
	"github.com/abhisek/sprechen/internal/rewards"
	"github.com/abhisek/sprechen/internal/screens/practice"
	"github.com/abhisek/sprechen/internal/spacedrep"
	"github.com/abhisek/sprechen/internal/store"
)

// defaultSessionSize is how many phrases a session plans when --count is
// not given.
const defaultSessionSize = 10

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a practice session of due and new phrases",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func init() {
	addPracticeFlags(practiceCmd)
}

func addPracticeFlags(cmd *cobra.Command) {
	cmd.Flags().String("topic", "", "Only practice phrases of this topic")
	cmd.Flags().String("level", "", "Only practice phrases of this CEFR level (A1-C2)")
	cmd.Flags().Int("count", defaultSessionSize, "Number of phrases in the session (0 = all due and new)")
	cmd.Flags().Bool("fold", false, "Treat ß/ss and case variants as equal")
	cmd.Flags().String("deck", "", "Additional YAML deck file to practice from")
}

// runPractice opens the store, plans the session and launches the TUI.
func runPractice(cmd *cobra.Command) error {
	ctx := cmd.Context()
	topic, _ := cmd.Flags().GetString("topic")
	levelStr, _ := cmd.Flags().GetString("level")
	count, _ := cmd.Flags().GetInt("count")
	fold, _ := cmd.Flags().GetBool("fold")
	deckPath, _ := cmd.Flags().GetString("deck")

	level, err := parseOptionalLevel(levelStr)
	if err != nil {
		return err
	}

	d, err := loadDeck(deckPath)
	if err != nil {
		return err
	}
	phrases := d.Filter(topic, level)
	if len(phrases) == 0 {
		return fmt.Errorf("no phrases match topic %q and level %q", topic, levelStr)
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	sched, err := spacedrep.NewScheduler(ctx, st.ReviewRepo())
	if err != nil {
		return err
	}
	tracker, err := rewards.NewTracker(ctx, st.RewardRepo())
	if err != nil {
		return err
	}

	plan := sched.Plan(phrases, time.Now(), count)
	slog.Info("session planned", "phrases", len(plan), "pool", len(phrases))

	closeLog, err := redirectLogging(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	return app.Run(app.Options{
		Practice: practice.Deps{
			Phrases:    plan,
			Scheduler:  sched,
			Rewards:    tracker,
			Attempts:   st.AttemptRepo(),
			RewardRepo: st.RewardRepo(),
			Fold:       fold,
		},
	})
}

// redirectLogging sends logs to a file in the data directory while the TUI
// owns the terminal. The returned func restores stderr logging.
func redirectLogging(cmd *cobra.Command) (func(), error) {
	dir, err := store.DataDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, "sprechen.log")
	if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	level, _ := cmd.Flags().GetString("log-level")
	lvl, err := parseLevel(level)
	if err != nil {
		f.Close()
		return nil, err
	}

	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})))
	return func() {
		slog.SetDefault(prev)
		f.Close()
	}, nil
}

// loadDeck returns the built-in deck merged with the user deck and, when
// given, an extra deck file.
func loadDeck(extra string) (*deck.Deck, error) {
	d, err := deck.Builtin()
	if err != nil {
		return nil, err
	}

	userPath, err := userDeckPath()
	if err != nil {
		return nil, err
	}
	user, err := loadUserDeck(userPath)
	if err != nil {
		return nil, err
	}
	d.Merge(user)

	if extra != "" {
		x, err := deck.LoadFile(extra)
		if err != nil {
			return nil, err
		}
		d.Merge(x)
	}
	return d, nil
}

// userDeckPath is where imported and generated phrases are kept.
func userDeckPath() (string, error) {
	if p := os.Getenv("SPRECHEN_DECK"); p != "" {
		return p, nil
	}
	dir, err := store.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "deck.yaml"), nil
}

// loadUserDeck reads the user deck, returning an empty deck if the file
// does not exist yet.
func loadUserDeck(path string) (*deck.Deck, error) {
	d, err := deck.LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return deck.New("My phrases", nil)
	}
	return d, err
}

// saveUserDeck writes d to the user deck path.
func saveUserDeck(path string, d *deck.Deck) error {
	if err := store.EnsureDir(path); err != nil {
		return fmt.Errorf("create deck dir: %w", err)
	}
	return deck.SaveFile(path, d)
}

func parseOptionalLevel(s string) (deck.Level, error) {
	if s == "" {
		return "", nil
	}
	return deck.ParseLevel(s)
}
