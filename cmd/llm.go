package cmd

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/sprechen/internal/llm"
	"github.com/abhisek/sprechen/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM provider and the requests sent to it",
}

var llmConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show which LLM provider `generate` would use",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := llm.LoadConfig(os.Getenv)
		if err != nil {
			return err
		}
		fmt.Printf("Provider:  %s\n", cfg.Provider)
		fmt.Printf("Model:     %s\n", cfg.Model)
		fmt.Printf("API key:   %s\n", maskKey(cfg.APIKey))
		if cfg.BaseURL != "" {
			fmt.Printf("Base URL:  %s\n", cfg.BaseURL)
		}
		fmt.Printf("Timeout:   %s\n", cfg.Timeout)
		if p, ok := llm.LookupPrice(cfg.Model); ok {
			fmt.Printf("Price:     $%.2f in / $%.2f out per 1M tokens\n", p.Input, p.Output)
		}
		return nil
	},
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		failed, _ := cmd.Flags().GetBool("failed")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		events = slices.DeleteFunc(events, func(e store.LLMEventRecord) bool {
			return (purpose != "" && e.Purpose != purpose) || (failed && e.Success)
		})
		if len(events) == 0 {
			fmt.Println("No LLM requests recorded.")
			return nil
		}

		lipgloss.Println(eventTable(events))
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and reply of one LLM request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id %q", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("no LLM request with id %d", id)
		}

		fmt.Printf("#%d  %s  %s/%s  purpose=%s\n",
			e.ID, e.Timestamp.Local().Format(timeLayout), e.Provider, e.Model, e.Purpose)
		fmt.Printf("tokens %d in, %d out  latency %dms  %s\n",
			e.InputTokens, e.OutputTokens, e.LatencyMs, outcome(*e))
		if e.ErrorMessage != "" {
			fmt.Printf("error: %s\n", e.ErrorMessage)
		}
		printSection("Request", e.RequestBody)
		printSection("Reply", e.ResponseBody)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per purpose and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}
		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		lipgloss.Println(purposeTable(byPurpose))
		costs, unpriced := costTable(byModel)
		lipgloss.Println(costs)
		if len(unpriced) > 0 {
			fmt.Printf("No price known for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func newTable(headers ...string) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Faint(true)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

func eventTable(events []store.LLMEventRecord) *table.Table {
	t := newTable("ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "")
	for _, e := range events {
		t.Row(
			strconv.Itoa(e.ID),
			e.Timestamp.Local().Format(timeLayout),
			e.Purpose,
			truncate(e.Model, 28),
			strconv.Itoa(e.InputTokens),
			strconv.Itoa(e.OutputTokens),
			strconv.FormatInt(e.LatencyMs, 10),
			outcome(e),
		)
	}
	return t
}

func purposeTable(usage []store.LLMPurposeUsage) *table.Table {
	t := newTable("Purpose", "Calls", "In", "Out", "Avg ms")
	var calls, in, out int
	for _, u := range usage {
		t.Row(u.Purpose, strconv.Itoa(u.Calls), strconv.Itoa(u.InputTokens),
			strconv.Itoa(u.OutputTokens), strconv.FormatInt(u.AvgLatencyMs, 10))
		calls += u.Calls
		in += u.InputTokens
		out += u.OutputTokens
	}
	return t.Row("total", strconv.Itoa(calls), strconv.Itoa(in), strconv.Itoa(out), "")
}

// costTable prices each model's usage. Models without a known price are
// shown with "?" and returned so the total can be marked partial.
func costTable(usage []store.LLMModelUsage) (*table.Table, []string) {
	t := newTable("Model", "Calls", "In", "Out", "USD")
	var (
		total    float64
		unpriced []string
	)
	for _, u := range usage {
		cost := "?"
		if p, ok := llm.LookupPrice(u.Model); ok {
			c := p.Cost(u.InputTokens, u.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unpriced = append(unpriced, u.Model)
		}
		t.Row(truncate(u.Model, 32), strconv.Itoa(u.Calls),
			strconv.Itoa(u.InputTokens), strconv.Itoa(u.OutputTokens), cost)
	}
	label := "total"
	if len(unpriced) > 0 {
		label = "total (partial)"
	}
	return t.Row(label, "", "", "", formatCost(total)), unpriced
}

func outcome(e store.LLMEventRecord) string {
	if e.Success {
		return "ok"
	}
	return "failed"
}

func printSection(title, body string) {
	fmt.Printf("\n%s\n", lipgloss.NewStyle().Bold(true).Underline(true).Render(title))
	if body == "" {
		body = "(not captured)"
	}
	fmt.Println(body)
}

// maskKey keeps only the last four characters of an API key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", 8) + key[len(key)-4:]
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show one purpose, e.g. phrase-gen")
	llmListCmd.Flags().Bool("failed", false, "Only show failed requests")

	llmCmd.AddCommand(llmConfigCmd, llmListCmd, llmViewCmd, llmStatsCmd)
}
