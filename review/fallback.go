package review

import (
	"context"
	"strings"
)

// FallbackSummary is used when no summary can be generated remotely
const FallbackSummary = "Great progress! Main improvements suggested: naming clarity, avoiding redundant checks, and efficiency with comprehensions."

// cannedRewrite is a keyword rule. Rules are checked in order and the first match wins.
type cannedRewrite struct {
	keyword  string
	positive string
	why      string
	code     string
}

var cannedRewrites = []cannedRewrite{
	{
		keyword:  "inefficient",
		positive: "Great start! We can make this more efficient by combining checks into one pass.",
		why:      "Efficiency matters for larger datasets. List comprehensions are faster and cleaner.",
		code:     "def get_active_users(users):\n    return [u for u in users if u.is_active and u.profile_complete]",
	},
	{
		keyword:  "bad name",
		positive: "Nice job! Let’s use a more descriptive variable name to improve readability.",
		why:      "Descriptive names make code easier to maintain and understand (see PEP 8).",
		code:     "for user in users:\n    if user.is_active and user.profile_complete:\n        results.append(user)",
	},
	{
		keyword:  "== true",
		positive: "Good use of conditions! In Python, comparing directly to True isn’t needed.",
		why:      "Booleans are already truthy. `if flag:` is the Pythonic way.",
		code:     "if user.is_active and user.profile_complete:\n    results.append(user)",
	},
}

const (
	genericPositive = "Solid work! We can polish this a little further for clarity."
	genericWhy      = "Small improvements in style or naming make code easier to review."
)

// Fallback is the offline strategy. It is deterministic and never fails.
type Fallback struct{}

// Rewrite matches the lower-cased comment against the canned rules
func (Fallback) Rewrite(_ context.Context, code, comment string) (Result, error) {
	return fallbackRewrite(code, comment), nil
}

// Summarize returns FallbackSummary
func (Fallback) Summarize(context.Context) (string, error) {
	return FallbackSummary, nil
}

func fallbackRewrite(code, comment string) Result {
	lower := strings.ToLower(comment)
	for _, rule := range cannedRewrites {
		if strings.Contains(lower, rule.keyword) {
			return Result{
				Positive: rule.positive,
				Why:      withReference(rule.why),
				Code:     rule.code,
			}
		}
	}

	// No rule matched: keep the original snippet as the improvement
	return Result{
		Positive: genericPositive,
		Why:      withReference(genericWhy),
		Code:     code,
	}
}
