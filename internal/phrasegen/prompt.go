package phrasegen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write German sentences for learners practicing pronunciation out loud.

Rules:
- Write natural, everyday German a native speaker would actually say.
- Match the requested CEFR level: A1/A2 use short sentences and common words, B1/B2 add subordinate clauses, C1/C2 may use idioms.
- Stay on the requested topic.
- Each sentence has 2 to 20 words and ends with ".", "!" or "?".
- Use correct spelling with umlauts (ä, ö, ü) and ß. Never write ae, oe, ue or ss as substitutes.
- Prefer sentences containing sounds that are hard for learners (ch, r, ü, ö, z, pf, final -ig).
- Give a short, natural English translation for each sentence.
- Do not repeat any sentence from the "already known" list.`

// buildUserMessage constructs the user message from Input and Config limits.
func buildUserMessage(input Input, count int, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Level: %s\n", input.Level)
	fmt.Fprintf(&b, "Number of sentences: %d\n", count)

	b.WriteString("\nAlready known:\n")
	b.WriteString(buildDedup(input.Prior, cfg.MaxPriorPhrases))

	return b.String()
}
