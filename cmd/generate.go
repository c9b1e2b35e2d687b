package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprechen/internal/deck"
	"github.com/abhisek/sprechen/internal/llm"
	"github.com/abhisek/sprechen/internal/phrasegen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate new practice phrases with an LLM and add them to your deck",
	Long: "Generate new German practice phrases with the configured LLM provider.\n" +
		"Set SPRECHEN_LLM_PROVIDER and the provider API key (or GEMINI_API_KEY,\n" +
		"OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY).",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		topic, _ := cmd.Flags().GetString("topic")
		levelStr, _ := cmd.Flags().GetString("level")
		count, _ := cmd.Flags().GetInt("count")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		if topic == "" {
			return fmt.Errorf("--topic is required")
		}
		level, err := deck.ParseLevel(levelStr)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		cfg, err := llm.LoadConfig(os.Getenv)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		provider, err := llm.New(ctx, cfg, s.EventRepo())
		if err != nil {
			return err
		}
		fmt.Printf("Generating %d %s phrases about %q with %s (%s)...\n",
			count, level, topic, cfg.Provider, provider.ModelID())

		d, err := loadDeck("")
		if err != nil {
			return err
		}
		var prior []string
		for _, p := range d.Filter(topic, "") {
			prior = append(prior, p.Text)
		}

		genCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
		gen := phrasegen.New(provider, phrasegen.DefaultConfig())
		phrases, err := gen.Generate(genCtx, phrasegen.Input{
			Topic: topic,
			Level: level,
			Count: count,
			Prior: prior,
		})
		if err != nil {
			return fmt.Errorf("generate phrases: %w", err)
		}

		for _, p := range phrases {
			fmt.Printf("  %s\n    %s\n", p.Text, p.Translation)
		}
		if dryRun {
			return nil
		}

		generated, err := deck.New("generated", phrases)
		if err != nil {
			return err
		}
		userPath, err := userDeckPath()
		if err != nil {
			return err
		}
		user, err := loadUserDeck(userPath)
		if err != nil {
			return err
		}
		added := user.Merge(generated)
		if err := saveUserDeck(userPath, user); err != nil {
			return err
		}
		fmt.Printf("\nAdded %d new phrases to %s\n", added, userPath)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("topic", "", "Topic of the phrases, e.g. restaurant")
	generateCmd.Flags().String("level", "A1", "CEFR level (A1-C2)")
	generateCmd.Flags().Int("count", phrasegen.DefaultCount, "Number of phrases to generate")
	generateCmd.Flags().Bool("dry-run", false, "Print the phrases without saving them")
}
