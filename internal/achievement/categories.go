// Package achievement tracks practice counters, milestones and rewards.
package achievement

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/verte-zerg/coucou/internal/model"
)

// Stable category keys.
const (
	CategoryStreak = "streak"
	CategoryTotal  = "total"
)

// Milestone is a counter threshold with its description.
type Milestone struct {
	Threshold   int
	Description string
}

// Category owns an ordered milestone list and a counter of the same key.
type Category struct {
	Key        string
	Name       string
	Milestones []Milestone
}

func (c Category) validate() error {
	if c.Key == "" {
		return fmt.Errorf("category has empty key")
	}
	prev := 0
	for _, m := range c.Milestones {
		if m.Threshold <= prev {
			return fmt.Errorf("category %s: thresholds must be positive and strictly increasing", c.Key)
		}
		prev = m.Threshold
	}
	return nil
}

// DefaultCategories returns streak, total, then one category per
// (mood, tense) pair in taxonomy order.
func DefaultCategories() []Category {
	categories := []Category{
		{
			Key:        CategoryStreak,
			Name:       "Streak",
			Milestones: countMilestones([]int{2, 4, 6, 8, 10, 20, 30, 50}, func(n int) string { return fmt.Sprintf("%d Correct in a Row", n) }),
		},
		{
			Key:        CategoryTotal,
			Name:       "Total Correct",
			Milestones: countMilestones([]int{5, 10, 20, 40, 80, 100, 200, 300, 500, 1000}, func(n int) string { return fmt.Sprintf("%d Total Correct", n) }),
		},
	}
	for _, pair := range model.MoodTensePairs() {
		label := model.MoodLabel(pair.Mood) + " - " + model.TenseLabel(pair.Tense)
		categories = append(categories, Category{
			Key:  model.TenseCategoryKey(pair.Mood, pair.Tense),
			Name: label + " Practice",
			Milestones: countMilestones([]int{1, 5, 15, 30, 50, 100, 250}, func(n int) string {
				if n == 1 {
					return fmt.Sprintf("1 %s Verb", label)
				}
				return fmt.Sprintf("%d %s Verbs", n, label)
			}),
		})
	}
	return categories
}

func countMilestones(thresholds []int, describe func(int) string) []Milestone {
	out := make([]Milestone, len(thresholds))
	for i, n := range thresholds {
		out[i] = Milestone{Threshold: n, Description: describe(n)}
	}
	return out
}

// PartitionRewards sorts assets and splits them evenly across categories in
// order. Remainder assets are left unassigned.
func PartitionRewards(assets []string, categories []Category) map[string][]string {
	pools := make(map[string][]string, len(categories))
	if len(categories) == 0 {
		return pools
	}
	assets = lo.Uniq(assets)
	slices.Sort(assets)
	per := len(assets) / len(categories)
	for i, c := range categories {
		start := i * per
		pools[c.Key] = append([]string(nil), assets[start:start+per]...)
	}
	return pools
}
