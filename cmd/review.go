package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprechen/internal/spacedrep"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Show phrases due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		all, _ := cmd.Flags().GetBool("all")

		d, err := loadDeck("")
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		sched, err := spacedrep.NewScheduler(context.Background(), s.ReviewRepo())
		if err != nil {
			return err
		}
		now := time.Now()

		counts := make(map[spacedrep.ReviewStatus]int)
		for _, p := range d.Phrases() {
			counts[sched.State(p.ID).Status(now)]++
		}
		fmt.Printf("New: %d   Learning: %d   Due: %d   Mastered: %d\n\n",
			counts[spacedrep.StatusNew], counts[spacedrep.StatusLearning],
			counts[spacedrep.StatusDue], counts[spacedrep.StatusMastered])

		var states []*spacedrep.ReviewState
		if all {
			for _, rs := range sched.AllReviewStates() {
				states = append(states, rs)
			}
			states = spacedrep.SortForDisplay(states)
			if limit > 0 && len(states) > limit {
				states = states[:limit]
			}
		} else {
			states = sched.Due(now, limit)
		}

		if len(states) == 0 {
			fmt.Println("Nothing due. Run `sprechen practice` to learn new phrases.")
			return nil
		}

		fmt.Printf("%-9s  %-6s  %-8s  %-11s  %-12s  %s\n", "Status", "EF", "Interval", "Next", "When", "Phrase")
		fmt.Println(strings.Repeat("─", 104))
		for _, rs := range states {
			text := rs.PhraseID
			if p, ok := d.Get(rs.PhraseID); ok {
				text = p.Text
			}
			fmt.Printf("%-9s  %-6.2f  %-8s  %-11s  %-12s  %s\n",
				rs.Status(now),
				rs.Easiness,
				fmt.Sprintf("%dd", rs.IntervalDays),
				rs.NextReview.Local().Format("2006-01-02"),
				reviewWhen(rs, now),
				text,
			)
		}
		return nil
	},
}

// reviewWhen says how far a phrase is from its review date.
func reviewWhen(rs *spacedrep.ReviewState, now time.Time) string {
	if rs.IsNew() {
		return "new"
	}
	if days := rs.DaysUntilReview(now); days > 0 {
		return fmt.Sprintf("in %dd", days)
	}
	if overdue := int(rs.OverdueDays(now)); overdue > 0 {
		return fmt.Sprintf("%dd overdue", overdue)
	}
	return "today"
}

func init() {
	reviewCmd.Flags().IntP("limit", "n", 20, "Maximum phrases to list (0 = all)")
	reviewCmd.Flags().Bool("all", false, "List every reviewed phrase, not only due ones")
}
