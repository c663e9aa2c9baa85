package review

import "fmt"

const (
	rewriteSystemPrompt = "You are an empathetic senior developer. Rewrite feedback kindly, explain WHY, and show better code."
	summarySystemPrompt = "Summarize feedback in 1-2 sentences, encouraging tone."

	// summaryUserPrompt names fixed themes; it does not depend on the comments in the request.
	summaryUserPrompt = "Summarize the main improvements about naming clarity, avoiding redundant checks, and efficiency."

	rewriteTemperature float32 = 0.4
	summaryTemperature float32 = 0.3
)

// rewriteUserPrompt embeds the snippet and one reviewer comment
func rewriteUserPrompt(code, comment string) string {
	return fmt.Sprintf("Code:\n```%s\n%s\n```\n\nComment: %s\n\n"+
		"Return exactly 3 parts:\n"+
		"1. Positive Rephrasing\n"+
		"2. The 'Why'\n"+
		"3. Suggested Improvement (code block)", codeLanguage, code, comment)
}
