// Package responder maps free-text visitor questions to canned profile answers
// using static keyword tables.
package responder

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// Scoring heuristics. Keywords of LongKeywordLen bytes or more are worth
// LongKeywordWeight per match, shorter ones ShortKeywordWeight. Matching is
// plain substring containment, so "c++" also matches inside longer tokens.
const (
	LongKeywordLen     = 5
	LongKeywordWeight  = 3
	ShortKeywordWeight = 2
)

// ErrInvalidIntent is returned when an intent table fails validation.
var ErrInvalidIntent = errors.New("invalid intent table")

// Answer is the outcome of a single question.
type Answer struct {
	Reply  string   `json:"reply"`
	Intent IntentID `json:"intent"`
}

// ScoredIntent is an intent with its score for one message.
type ScoredIntent struct {
	Intent Intent
	Score  int
}

// Responder selects the best matching intent for a message. It holds no
// mutable state and is safe for concurrent use.
type Responder struct {
	intents       []Intent
	emptyReply    string
	fallbackReply string
}

// New creates a Responder over the given intent table. Empty and fallback
// replies describe the built-in profile.
func New(intents []Intent) (*Responder, error) {
	return newResponder(intents, DefaultProfile())
}

// ForProfile creates a Responder over the default keyword table with every
// reply rendered from p.
func ForProfile(p Profile) (*Responder, error) {
	return newResponder(DefaultIntents(p), p)
}

func newResponder(intents []Intent, p Profile) (*Responder, error) {
	if err := validateIntents(intents); err != nil {
		return nil, err
	}
	return &Responder{
		intents: slices.Clone(intents),
		emptyReply: fmt.Sprintf(
			"Ask me about %s, %s (%s), C++/Windows work, ML interests, projects, or blogs.",
			p.Company, p.Education.School, p.Education.Graduation),
		fallbackReply: fmt.Sprintf(
			"I can help with: %s role, %s (%s), C++/Windows, ML interests, projects, and blogs. What would you like to know?",
			p.Company, p.Education.School, p.Education.Graduation),
	}, nil
}

var defaultResponder = sync.OnceValue(func() *Responder {
	r, err := ForProfile(DefaultProfile())
	if err != nil {
		panic(err)
	}
	return r
})

// Default returns the process-wide Responder over the built-in profile.
func Default() *Responder {
	return defaultResponder()
}

// Answer returns the reply and intent for message.
func (r *Responder) Answer(message string) Answer {
	text := normalize(message)
	if text == "" {
		return Answer{Reply: r.emptyReply, Intent: IntentEmpty}
	}

	ranked := r.Rank(text)
	if len(ranked) == 0 {
		return Answer{Reply: r.fallbackReply, Intent: IntentFallback}
	}

	top := ranked[0].Intent
	return Answer{Reply: top.Reply, Intent: top.ID}
}

// Rank scores every intent against the normalized text and returns those with
// a positive score, best first. Ties keep table order.
func (r *Responder) Rank(text string) []ScoredIntent {
	scored := lo.Map(r.intents, func(in Intent, _ int) ScoredIntent {
		return ScoredIntent{Intent: in, Score: Score(text, in)}
	})
	ranked := lo.Filter(scored, func(s ScoredIntent, _ int) bool {
		return s.Score > 0
	})
	slices.SortStableFunc(ranked, func(a, b ScoredIntent) int {
		return b.Score - a.Score
	})
	return ranked
}

// Score sums the keyword weights of intent found in text.
func Score(text string, intent Intent) int {
	score := 0
	for _, kw := range intent.Keywords {
		if strings.Contains(text, kw) {
			score += keywordWeight(kw)
		}
	}
	return score
}

func keywordWeight(kw string) int {
	if len(kw) >= LongKeywordLen {
		return LongKeywordWeight
	}
	return ShortKeywordWeight
}

func normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(text))
}
