package match

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
)

// Matcher finds the trigger that should fire for a message, if any.
// Chat-specific triggers are checked before global ones, in snapshot
// order; the first keyword hit wins. It only reads the snapshot, so it is
// safe for concurrent use.
type Matcher struct {
	threshold int
}

// NewMatcher creates a Matcher with the given fuzzy similarity threshold
// on the 0-100 ratio scale.
func NewMatcher(threshold int) *Matcher {
	return &Matcher{threshold: threshold}
}

func (m *Matcher) Match(text string, chatID int64, triggers []domain.Trigger) (domain.Trigger, bool) {
	if text == "" {
		return domain.Trigger{}, false
	}

	folded := strings.ToLower(text)
	tokens := strings.Fields(folded)

	for _, trigger := range triggers {
		if trigger.ChatID == chatID && m.matches(trigger, folded, tokens) {
			return trigger, true
		}
	}
	for _, trigger := range triggers {
		if trigger.IsGlobal() && m.matches(trigger, folded, tokens) {
			return trigger, true
		}
	}

	return domain.Trigger{}, false
}

func (m *Matcher) matches(trigger domain.Trigger, folded string, tokens []string) bool {
	for _, keyword := range trigger.Keywords {
		keyword = strings.ToLower(keyword)
		if keyword == "" {
			continue
		}

		// Substring check first, it is much cheaper than the ratio.
		if strings.Contains(folded, keyword) {
			return true
		}

		for _, token := range tokens {
			if fuzzy.Ratio(keyword, token) >= m.threshold {
				return true
			}
		}
	}
	return false
}
