package panels

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Completer ranks suggestions for free-text panel inputs (font families,
// color names). It is a plain helper the host's dropdown calls; the core
// knows nothing about it.
type Completer struct {
	options []string
}

// NewCompleter creates a completer over the given options.
func NewCompleter(options []string) *Completer {
	out := make([]string, len(options))
	copy(out, options)
	return &Completer{options: out}
}

// Extend appends options not already present.
func (c *Completer) Extend(options []string) {
	for _, opt := range options {
		present := false
		for _, existing := range c.options {
			if strings.EqualFold(existing, opt) {
				present = true
				break
			}
		}
		if !present {
			c.options = append(c.options, opt)
		}
	}
}

// Suggest returns up to max options fuzzy-matching query, best first. An
// empty query returns the leading options unranked.
func (c *Completer) Suggest(query string, max int) []string {
	if max <= 0 {
		return nil
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		n := max
		if n > len(c.options) {
			n = len(c.options)
		}
		out := make([]string, n)
		copy(out, c.options[:n])
		return out
	}

	ranks := fuzzy.RankFindNormalizedFold(trimmed, c.options)
	sort.Sort(ranks)
	out := make([]string, 0, max)
	for _, rank := range ranks {
		out = append(out, rank.Target)
		if len(out) == max {
			break
		}
	}
	return out
}
