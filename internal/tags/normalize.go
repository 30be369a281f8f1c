// Package tags normalizes placeholder competency tags into context-appropriate
// domain labels using keyword-scored rule matching.
package tags

import (
	"regexp"
	"strconv"
	"strings"
)

// placeholderPattern matches placeholder tags of the form "Tag N" (case-insensitive,
// optional whitespace between the word and the number).
var placeholderPattern = regexp.MustCompile(`(?i)^tag\s*(\d+)$`)

// ContextRule maps a set of context keywords to an ordered tag list.
type ContextRule struct {
	Keywords []string `json:"keywords"`
	Tags     []string `json:"tags"`
}

// Ruleset holds the default tag list and the context rules used to resolve
// placeholder tags. Rule declaration order matters: ties are broken by the
// first-declared rule.
type Ruleset struct {
	Default []string      `json:"default"`
	Rules   []ContextRule `json:"rules"`
}

// DefaultRuleset returns the built-in ruleset.
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		Default: []string{
			"Problem Solving",
			"Software Design",
			"Technical Communication",
			"Team Collaboration",
			"Version Control (Git)",
			"Software Testing",
		},
		Rules: []ContextRule{
			{
				Keywords: []string{"web", "frontend", "front-end", "react", "ui", "ux", "html", "css", "javascript"},
				Tags: []string{
					"Web Programming",
					"Frontend Development",
					"UI/UX Design",
					"JavaScript",
					"API Integration",
					"Version Control (Git)",
				},
			},
			{
				Keywords: []string{"database", "dbms", "sql", "data model", "schema", "query"},
				Tags: []string{
					"Database Design",
					"SQL Querying",
					"Data Modeling",
					"Database Optimization",
					"Backend Development",
					"Data Integrity",
				},
			},
			{
				Keywords: []string{"api", "backend", "server", "microservice", "rest"},
				Tags: []string{
					"API Development",
					"Backend Development",
					"System Design",
					"Authentication & Authorization",
					"Database Integration",
					"Software Testing",
				},
			},
			{
				Keywords: []string{"intelligent", "machine learning", "ml", "ai", "data mining", "analytics"},
				Tags: []string{
					"Machine Learning Basics",
					"Data Analysis",
					"Python Programming",
					"Model Evaluation",
					"Data Preprocessing",
					"Problem Solving",
				},
			},
		},
	}
}

// resolveContextTags selects the tag list for a context. A rule wins only with a
// strictly higher keyword score, so score 0 keeps the default list and ties keep
// the earlier-declared rule.
func (rs *Ruleset) resolveContextTags(contextText string) []string {
	ctx := strings.ToLower(strings.TrimSpace(contextText))
	if ctx == "" {
		return rs.Default
	}

	best := rs.Default
	bestScore := 0
	for _, rule := range rs.Rules {
		score := 0
		for _, kw := range rule.Keywords {
			if strings.Contains(ctx, kw) {
				score++
			}
		}
		if score > bestScore {
			best = rule.Tags
			bestScore = score
		}
	}
	return best
}

// Normalize maps placeholder tags ("Tag 1", "Tag 2", ...) to context-appropriate
// labels. Placeholders are replaced positionally, 1-indexed, wrapping modulo the
// resolved list length. Anything that does not match the placeholder pattern
// passes through as the literal trimmed string. The output always has the same
// length and positional alignment as the input.
func (rs *Ruleset) Normalize(tagList []string, contextText string) []string {
	contextTags := rs.resolveContextTags(contextText)
	out := make([]string, len(tagList))
	for i, tag := range tagList {
		out[i] = mapPlaceholder(tag, contextTags)
	}
	return out
}

func mapPlaceholder(tag string, contextTags []string) string {
	text := strings.TrimSpace(tag)
	m := placeholderPattern.FindStringSubmatch(text)
	if m == nil {
		return text
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		// "Tag 0" carries no usable position; leave it as written.
		return text
	}
	return contextTags[(n-1)%len(contextTags)]
}

// Normalize resolves tags against the built-in ruleset.
func Normalize(tagList []string, contextText string) []string {
	return DefaultRuleset().Normalize(tagList, contextText)
}
