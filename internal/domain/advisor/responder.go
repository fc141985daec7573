// Package advisor is the keyword-matching chat responder. It is a fixed,
// ordered lookup table with first-match semantics, deliberately not a
// natural-language system.
package advisor

import (
	"fmt"
	"strings"
)

// Rule pairs a keyword with its canned reply.
type Rule struct {
	Keyword string
	Reply   string
}

// Responder answers free-text questions by scanning its rule table in
// registration order and returning the reply of the first keyword that
// occurs as a substring of the lowercased input. Ties go to table order,
// never to longest match or scoring.
type Responder struct {
	rules        []Rule
	defaultReply string
}

// NewResponder builds a responder from an ordered rule table.
func NewResponder(rules []Rule, defaultReply string) (*Responder, error) {
	if defaultReply == "" {
		return nil, fmt.Errorf("default reply cannot be empty")
	}

	normalized := make([]Rule, 0, len(rules))
	for i, r := range rules {
		kw := strings.ToLower(strings.TrimSpace(r.Keyword))
		if kw == "" {
			return nil, fmt.Errorf("rule %d has an empty keyword", i)
		}
		if r.Reply == "" {
			return nil, fmt.Errorf("rule %q has an empty reply", r.Keyword)
		}
		normalized = append(normalized, Rule{Keyword: kw, Reply: r.Reply})
	}

	return &Responder{rules: normalized, defaultReply: defaultReply}, nil
}

// Respond returns the reply for the first matching keyword, or the default
// reply when nothing matches. Deterministic for a fixed table and input.
func (r *Responder) Respond(freeText string) string {
	text := strings.ToLower(freeText)
	for _, rule := range r.rules {
		if strings.Contains(text, rule.Keyword) {
			return rule.Reply
		}
	}
	return r.defaultReply
}

// DefaultReply returns the configured fallback reply.
func (r *Responder) DefaultReply() string {
	return r.defaultReply
}

// Rules returns a copy of the rule table in registration order.
func (r *Responder) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}
