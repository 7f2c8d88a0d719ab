package stats

import (
	"github.com/verte-zerg/coucou/internal/model"
)

// WeakestTenses returns up to top (mood, tense) pairs with the lowest
// accuracy, ignoring pairs with fewer than minAnswers answers.
func WeakestTenses(aggs []model.TenseAggregate, top, minAnswers int) []model.MoodTense {
	candidates := make([]model.TenseAggregate, 0, len(aggs))
	for _, agg := range aggs {
		if agg.Correct+agg.Incorrect < minAnswers {
			continue
		}
		candidates = append(candidates, agg)
	}
	candidates = sortTenses(candidates)
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	out := make([]model.MoodTense, 0, top)
	for _, agg := range candidates[:top] {
		out = append(out, model.MoodTense{Mood: agg.Mood, Tense: agg.Tense})
	}
	return out
}
