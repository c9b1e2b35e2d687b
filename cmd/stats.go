package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		sum, err := s.AttemptRepo().Summary(ctx)
		if err != nil {
			return err
		}
		if sum.Attempts == 0 {
			fmt.Println("No attempts recorded yet. Run `sprechen practice` to get started.")
			return nil
		}

		rewards := s.RewardRepo()
		gems, err := rewards.GemTotal(ctx)
		if err != nil {
			return fmt.Errorf("query gems: %w", err)
		}
		streak, err := rewards.CurrentStreak(ctx)
		if err != nil {
			return fmt.Errorf("query streak: %w", err)
		}
		best, err := rewards.BestStreak(ctx)
		if err != nil {
			return fmt.Errorf("query best streak: %w", err)
		}

		fmt.Println("Overview")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Attempts:       %d (%d passed, %.0f%%)\n",
			sum.Attempts, sum.Passed, 100*float64(sum.Passed)/float64(sum.Attempts))
		fmt.Printf("Phrases:        %d\n", sum.Phrases)
		fmt.Printf("Average score:  %.1f%%\n", sum.AvgScore)
		fmt.Printf("Best score:     %d%%\n", sum.BestScore)
		fmt.Printf("Practice time:  %s\n", sum.Practice.Round(time.Second))
		fmt.Printf("Streak:         %d (best %d)\n", streak, best)
		fmt.Printf("Gems:           %d\n", gems)

		stats, err := s.AttemptRepo().PhraseStats(ctx)
		if err != nil {
			return err
		}
		if limit > 0 && len(stats) > limit {
			stats = stats[:limit]
		}

		fmt.Println()
		fmt.Println("Phrases")
		fmt.Println(strings.Repeat("─", 96))
		fmt.Printf("%-44s  %8s  %6s  %5s  %5s  %s\n", "Phrase", "Attempts", "Passed", "Best", "Avg", "Last")
		fmt.Println(strings.Repeat("─", 96))
		for _, st := range stats {
			fmt.Printf("%-44s  %8d  %6d  %4d%%  %4.0f%%  %s\n",
				truncate(st.Expected, 44),
				st.Attempts,
				st.Passed,
				st.BestScore,
				st.AvgScore,
				st.LastAttempt.Local().Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of phrases to show (0 = all)")
}
