package review

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhunt/empathetic-reviewer/openai"
)

var generatedOnPattern = regexp.MustCompile(`_Generated on (.+)_`)

// countSeparators counts the "---" lines that open comment and summary sections
func countSeparators(report string) int {
	count := 0
	for _, line := range strings.Split(report, "\n") {
		if line == "---" {
			count++
		}
	}
	return count
}

func TestBuildReportSingleComment(t *testing.T) {
	now := time.Date(2024, 7, 1, 9, 5, 0, 0, time.Local)
	req := &Request{CodeSnippet: "x=1", Comments: []string{"bad name here"}}

	report, err := BuildReport(context.Background(), Fallback{}, req, now)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(report, "# Empathetic Code Review Report\n_Generated on 2024-07-01 09:05_\n\n"))
	assert.Contains(t, report, "**Context code:**\n```python\nx=1\n```\n\n")
	assert.Contains(t, report, "### Analysis of Comment: \"bad name here\"\n")
	assert.Contains(t, report, "* **Positive Rephrasing:** "+cannedRewrites[1].positive+"\n")
	assert.Contains(t, report, "* **The 'Why':** "+withReference(cannedRewrites[1].why)+"\n")
	assert.Contains(t, report, "* **Suggested Improvement:**\n```python\n"+
		"for user in users:\n    if user.is_active and user.profile_complete:\n        results.append(user)"+
		"\n```\n")
	assert.True(t, strings.HasSuffix(report, "\n---\n## Holistic Summary\n"+FallbackSummary+"\n"))

	assert.Equal(t, 1, strings.Count(report, "### Analysis of Comment:"))
	assert.Equal(t, 2, countSeparators(report), "one comment section plus the summary")
}

func TestBuildReportSectionCount(t *testing.T) {
	for _, n := range []int{0, 1, 3, 10} {
		comments := make([]string, n)
		for i := range comments {
			comments[i] = strings.Repeat("z", i+1)
		}

		report, err := BuildReport(context.Background(), Fallback{}, &Request{CodeSnippet: "x=1", Comments: comments}, time.Now())
		require.NoError(t, err)

		assert.Equal(t, n, strings.Count(report, "### Analysis of Comment:"), "comments: %d", n)
		assert.Equal(t, n+1, countSeparators(report), "comments: %d", n)
		assert.Contains(t, report, "**Context code:**")
		assert.Contains(t, report, "## Holistic Summary")
	}
}

func TestBuildReportKeepsCommentOrder(t *testing.T) {
	comments := []string{"please clean this up", "inefficient", "bad name", "please clean this up"}

	report, err := BuildReport(context.Background(), Fallback{}, &Request{CodeSnippet: "x=1", Comments: comments}, time.Now())
	require.NoError(t, err)

	last := -1
	for _, comment := range comments {
		heading := "### Analysis of Comment: \"" + comment + "\""
		idx := strings.Index(report[last+1:], heading)
		require.GreaterOrEqual(t, idx, 0, "missing section for %q", comment)
		last += 1 + idx
	}
	assert.Equal(t, 2, strings.Count(report, "\"please clean this up\""), "duplicates are not removed")
}

func TestBuildReportTimestampParses(t *testing.T) {
	report, err := BuildReport(context.Background(), Fallback{}, &Request{CodeSnippet: "x=1"}, time.Now())
	require.NoError(t, err)

	m := generatedOnPattern.FindStringSubmatch(report)
	require.NotNil(t, m)
	_, err = time.Parse(TimestampLayout, m[1])
	assert.NoError(t, err)
}

func TestBuildReportRemoteCalls(t *testing.T) {
	mock := &MockCompleter{
		CompleteFunc: func(ctx context.Context, req openai.CompletionRequest) (string, error) {
			if req.System == summarySystemPrompt {
				return "Keep it up!", nil
			}
			return "Positive: Kind.\nWhy: Reason.", nil
		},
	}
	req := &Request{CodeSnippet: "x=1", Comments: []string{"a", "b"}}

	report, err := BuildReport(context.Background(), NewRemote(mock), req, time.Now())
	require.NoError(t, err)

	assert.Len(t, mock.Requests, 3, "one call per comment plus the summary")
	assert.Equal(t, summarySystemPrompt, mock.Requests[2].System)
	assert.Contains(t, report, "* **Positive Rephrasing:** Kind.\n")
	assert.Contains(t, report, "## Holistic Summary\nKeep it up!\n")
	// No fenced block in the responses: both sections reuse the context snippet
	assert.Equal(t, 3, strings.Count(report, "```python\nx=1\n```"))
}

func TestBuildReportStopsOnFatalError(t *testing.T) {
	cause := errors.New("unexpected")
	mock := &MockCompleter{
		CompleteFunc: func(ctx context.Context, req openai.CompletionRequest) (string, error) {
			return "", cause
		},
	}

	report, err := BuildReport(context.Background(), NewRemote(mock), &Request{CodeSnippet: "x=1", Comments: []string{"a", "b"}}, time.Now())
	require.ErrorIs(t, err, cause)
	assert.Empty(t, report)
	assert.Len(t, mock.Requests, 1)
}
