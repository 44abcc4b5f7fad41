package translator

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a translation engine."

// buildPrompt asks for an auto-detected source language and nothing but the
// translation in the reply.
func buildPrompt(text, targetLang string) string {
	b := strings.Builder{}
	b.WriteString("\nYou are a professional translation engine.\n\n")
	b.WriteString("Task:\n")
	b.WriteString("- Detect the source language automatically.\n")
	b.WriteString(fmt.Sprintf("- Translate the text into %s.\n\n", targetLang))
	b.WriteString("Rules:\n")
	b.WriteString("- Output ONLY the translated text.\n")
	b.WriteString("- Do NOT mention the source language.\n")
	b.WriteString("- Do NOT add explanations.\n")
	b.WriteString("- Do NOT add labels or prefixes.\n")
	b.WriteString("- Do NOT repeat the input.\n\n")
	b.WriteString("Text:\n")
	b.WriteString(text)
	b.WriteString("\n")
	return b.String()
}
