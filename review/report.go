package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jeremyhunt/empathetic-reviewer/logger"
)

// TimestampLayout is the format of the "Generated on" header line
const TimestampLayout = "2006-01-02 15:04"

// BuildReport rewrites every comment in order, then asks for the summary, and
// renders the Markdown report. now is the generation time shown in the header.
func BuildReport(ctx context.Context, strategy Strategy, req *Request, now time.Time) (string, error) {
	var b strings.Builder

	writeHeader(&b, now)
	fmt.Fprintf(&b, "**Context code:**\n```%s\n%s\n```\n\n", codeLanguage, req.CodeSnippet)

	for i, comment := range req.Comments {
		logger.StepDetail("[%d/%d] Rewriting: %s", i+1, len(req.Comments), comment)

		result, err := strategy.Rewrite(ctx, req.CodeSnippet, comment)
		if err != nil {
			return "", err
		}
		writeSection(&b, comment, result)
	}

	logger.StepDetail("Generating holistic summary")
	summary, err := strategy.Summarize(ctx)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "\n---\n## Holistic Summary\n%s\n", summary)

	return b.String(), nil
}

func writeHeader(b *strings.Builder, now time.Time) {
	fmt.Fprintf(b, "# Empathetic Code Review Report\n_Generated on %s_\n\n", now.Format(TimestampLayout))
}

func writeSection(b *strings.Builder, comment string, result Result) {
	fmt.Fprintf(b, "---\n### Analysis of Comment: \"%s\"\n\n", comment)
	fmt.Fprintf(b, "* **Positive Rephrasing:** %s\n", result.Positive)
	fmt.Fprintf(b, "* **The 'Why':** %s\n", result.Why)
	fmt.Fprintf(b, "* **Suggested Improvement:**\n```%s\n%s\n```\n", codeLanguage, result.Code)
}
