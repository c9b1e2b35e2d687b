package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprechen/internal/deck"
	"github.com/abhisek/sprechen/internal/spacedrep"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Browse and import practice phrases",
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List phrases (optionally filtered by topic or level)",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		levelStr, _ := cmd.Flags().GetString("level")
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
			fmt.Println("No phrases found.")
			return nil
		}

		fmt.Printf("%-36s  %-5s  %-12s  %s\n", "ID", "Level", "Topic", "Text")
		fmt.Println(strings.Repeat("─", 100))
		for _, p := range phrases {
			fmt.Printf("%-36s  %-5s  %-12s  %s\n", p.ID, p.Level, truncate(p.Topic, 12), p.Text)
		}

		fmt.Printf("\n%d phrases (topics: %s)\n", len(phrases), strings.Join(d.Topics(), ", "))
		return nil
	},
}

var deckImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import phrases from a YAML deck, .csv or .xlsx file into your deck",
	Long: "Import phrases into your deck. Spreadsheets are read with columns\n" +
		"text, translation, topic, level (A-D) and a header row.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		topic, _ := cmd.Flags().GetString("topic")
		levelStr, _ := cmd.Flags().GetString("level")

		var incoming *deck.Deck
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			d, err := deck.LoadFile(path)
			if err != nil {
				return err
			}
			incoming = d
		default:
			cfg := deck.DefaultImportConfig()
			if topic != "" {
				cfg.DefaultTopic = topic
			}
			if levelStr != "" {
				level, err := deck.ParseLevel(levelStr)
				if err != nil {
					return err
				}
				cfg.DefaultLevel = level
			}
			cfg.Sheet, _ = cmd.Flags().GetString("sheet")

			res, err := deck.ImportSpreadsheet(path, cfg)
			if err != nil {
				return fmt.Errorf("import %s: %w", path, err)
			}
			fmt.Printf("Processed %d rows: %d imported, %d skipped\n", res.Processed, res.Imported, res.Skipped)
			for _, e := range res.Errors {
				fmt.Println("  " + e)
			}
			incoming = res.Deck
		}

		userPath, err := userDeckPath()
		if err != nil {
			return err
		}
		user, err := loadUserDeck(userPath)
		if err != nil {
			return err
		}
		added := user.Merge(incoming)
		if err := saveUserDeck(userPath, user); err != nil {
			return err
		}

		fmt.Printf("Added %d new phrases to %s (%d total)\n", added, userPath, user.Len())
		return nil
	},
}

var deckShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a phrase with its review schedule and attempt history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath, _ := cmd.Flags().GetString("deck")
		d, err := loadDeck(deckPath)
		if err != nil {
			return err
		}
		p, ok := d.Get(args[0])
		if !ok {
			return fmt.Errorf("phrase %q not found", args[0])
		}

		fmt.Printf("ID:          %s\n", p.ID)
		fmt.Printf("Text:        %s\n", p.Text)
		if p.Translation != "" {
			fmt.Printf("Translation: %s\n", p.Translation)
		}
		fmt.Printf("Topic:       %s\n", p.Topic)
		fmt.Printf("Level:       %s\n", p.Level)

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		sched, err := spacedrep.NewScheduler(ctx, s.ReviewRepo())
		if err != nil {
			return err
		}
		now := time.Now()
		rs := sched.State(p.ID)

		fmt.Println()
		fmt.Printf("Status:      %s\n", rs.Status(now))
		if !rs.IsNew() {
			fmt.Printf("Easiness:    %.2f\n", rs.Easiness)
			fmt.Printf("Interval:    %d day(s), %d repetition(s)\n", rs.IntervalDays, rs.Repetitions)
			fmt.Printf("Next review: %s\n", rs.NextReview.Local().Format("2006-01-02"))
		}

		stats, err := s.AttemptRepo().PhraseStats(ctx)
		if err != nil {
			return fmt.Errorf("query phrase stats: %w", err)
		}
		for _, st := range stats {
			if st.PhraseID != p.ID {
				continue
			}
			fmt.Printf("Attempts:    %d (%d passed), best %d%%, average %.0f%%\n",
				st.Attempts, st.Passed, st.BestScore, st.AvgScore)
		}
		return nil
	},
}

func init() {
	deckListCmd.Flags().String("topic", "", "Filter by topic")
	deckListCmd.Flags().String("level", "", "Filter by CEFR level (A1-C2)")
	deckListCmd.Flags().String("deck", "", "Additional YAML deck file")

	deckImportCmd.Flags().String("topic", "", "Topic for rows without one")
	deckImportCmd.Flags().String("level", "", "Level for rows without one")
	deckImportCmd.Flags().String("sheet", "", "Sheet name (xlsx only; default first sheet)")

	deckShowCmd.Flags().String("deck", "", "Additional YAML deck file")

	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckImportCmd)
	deckCmd.AddCommand(deckShowCmd)
}
