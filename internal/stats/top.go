package stats

import (
	"sort"

	"github.com/samber/lo"

	"github.com/verte-zerg/coucou/internal/model"
)

// TopMissedVerbs returns the n verbs with the most incorrect answers.
// Verbs never missed are left out.
func TopMissedVerbs(aggs []model.VerbAggregate, n int) []model.VerbAggregate {
	if n <= 0 || len(aggs) == 0 {
		return nil
	}
	items := lo.Filter(aggs, func(a model.VerbAggregate, _ int) bool { return a.Incorrect > 0 })
	sort.Slice(items, func(i, j int) bool {
		if items[i].Incorrect == items[j].Incorrect {
			return items[i].Verb < items[j].Verb
		}
		return items[i].Incorrect > items[j].Incorrect
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
