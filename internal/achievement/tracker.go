package achievement

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/coucou/internal/model"
)

// Saver persists progress after an earning event.
type Saver interface {
	SaveProgress(ctx context.Context, p model.Progress) error
}

// Tracker maintains counters, earned milestones and unlocked rewards.
// It is not safe for concurrent use.
type Tracker struct {
	categories []Category
	byKey      map[string]Category
	pools      map[string][]string

	earned         map[model.Earned]struct{}
	unlockedAssets map[string]struct{}
	progress       model.Progress
	streak         int

	rnd   *rand.Rand
	saver Saver
	log   logrus.FieldLogger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithRand sets the random source used to pick reward assets.
func WithRand(rnd *rand.Rand) Option {
	return func(t *Tracker) { t.rnd = rnd }
}

// WithSaver sets where progress is persisted after earning events.
func WithSaver(s Saver) Option {
	return func(t *Tracker) { t.saver = s }
}

// WithLogger sets the logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(t *Tracker) { t.log = log }
}

// NewTracker validates categories, partitions the reward assets and
// restores progress.
func NewTracker(categories []Category, assets []string, progress model.Progress, opts ...Option) (*Tracker, error) {
	byKey := make(map[string]Category, len(categories))
	for _, c := range categories {
		if err := c.validate(); err != nil {
			return nil, err
		}
		if _, dup := byKey[c.Key]; dup {
			return nil, fmt.Errorf("duplicate category %s", c.Key)
		}
		byKey[c.Key] = c
	}
	if err := progress.Validate(); err != nil {
		return nil, fmt.Errorf("invalid progress: %w", err)
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)
	t := &Tracker{
		categories:     categories,
		byKey:          byKey,
		pools:          PartitionRewards(assets, categories),
		earned:         make(map[model.Earned]struct{}, len(progress.Earned)),
		unlockedAssets: make(map[string]struct{}, len(progress.Unlocked)),
		progress:       progress.Clone(),
		rnd:            rand.New(rand.NewSource(time.Now().UnixNano())),
		log:            discard,
	}
	for _, opt := range opts {
		opt(t)
	}
	for _, e := range t.progress.Earned {
		t.earned[e] = struct{}{}
	}
	for _, u := range t.progress.Unlocked {
		t.unlockedAssets[u.Asset] = struct{}{}
	}
	for _, c := range categories {
		if _, ok := t.progress.Counters[c.Key]; !ok {
			t.progress.Counters[c.Key] = 0
		}
	}
	return t, nil
}

// Record updates counters after a correct answer: streak is absolute,
// total never decreases, and the tense counter is incremented.
func (t *Tracker) Record(streak, total int, mood, tense string) {
	t.progress.Counters[CategoryStreak] = streak
	if total > t.progress.Counters[CategoryTotal] {
		t.progress.Counters[CategoryTotal] = total
	}
	key := model.TenseCategoryKey(mood, tense)
	if _, ok := t.byKey[key]; ok {
		t.progress.Counters[key]++
	}
}

// ResetStreak sets the streak to zero after a wrong answer.
func (t *Tracker) ResetStreak() {
	t.streak = 0
	t.progress.Counters[CategoryStreak] = 0
}

// Submit applies an answer outcome for q and evaluates milestones.
func (t *Tracker) Submit(ctx context.Context, q model.Question, correct bool) (model.SubmissionResult, error) {
	if !correct {
		t.ResetStreak()
		return model.SubmissionResult{Streak: 0, TotalCorrect: t.TotalCorrect()}, nil
	}
	t.streak++
	t.Record(t.streak, t.TotalCorrect()+1, q.Mood, q.Tense)
	rewards, err := t.Evaluate(ctx)
	return model.SubmissionResult{
		Correct:      true,
		Streak:       t.streak,
		TotalCorrect: t.TotalCorrect(),
		Rewards:      rewards,
	}, err
}

// Evaluate earns every milestone whose threshold is met and unlocks at most
// one reward for each. Progress is saved only when something was earned.
// Calling it again without counter changes is a no-op.
func (t *Tracker) Evaluate(ctx context.Context) ([]model.Reward, error) {
	var rewards []model.Reward
	newlyEarned := 0
	for _, c := range t.categories {
		value := t.progress.Counters[c.Key]
		for _, m := range c.Milestones {
			key := model.Earned{Category: c.Key, Threshold: m.Threshold}
			if value < m.Threshold {
				break
			}
			if _, ok := t.earned[key]; ok {
				continue
			}
			t.earned[key] = struct{}{}
			t.progress.Earned = append(t.progress.Earned, key)
			newlyEarned++

			asset, ok := t.pickAsset(c.Key)
			if !ok {
				t.log.WithField("category", c.Key).WithField("threshold", m.Threshold).Debug("reward pool exhausted")
				continue
			}
			t.unlockedAssets[asset] = struct{}{}
			t.progress.Unlocked = append(t.progress.Unlocked, model.Unlocked{Asset: asset, Description: m.Description})
			rewards = append(rewards, model.Reward{Asset: asset, Description: m.Description, Category: c.Name})
		}
	}
	if newlyEarned == 0 || t.saver == nil {
		return rewards, nil
	}
	if err := t.saver.SaveProgress(ctx, t.Progress()); err != nil {
		return rewards, fmt.Errorf("failed to save progress: %w", err)
	}
	return rewards, nil
}

func (t *Tracker) pickAsset(category string) (string, bool) {
	available := lo.Filter(t.pools[category], func(asset string, _ int) bool {
		_, used := t.unlockedAssets[asset]
		return !used
	})
	if len(available) == 0 {
		return "", false
	}
	return available[t.rnd.Intn(len(available))], true
}

// AllCompleted reports whether every milestone of every category is earned.
func (t *Tracker) AllCompleted() bool {
	return t.EarnedCount() == t.TotalMilestones()
}

// EarnedCount returns the number of earned milestones that are defined.
func (t *Tracker) EarnedCount() int {
	return lo.CountBy(t.progress.Earned, func(e model.Earned) bool {
		c, ok := t.byKey[e.Category]
		if !ok {
			return false
		}
		return lo.ContainsBy(c.Milestones, func(m Milestone) bool { return m.Threshold == e.Threshold })
	})
}

// TotalMilestones returns the milestone count across all categories.
func (t *Tracker) TotalMilestones() int {
	return lo.SumBy(t.categories, func(c Category) int { return len(c.Milestones) })
}

// IsEarned reports whether the milestone has been earned.
func (t *Tracker) IsEarned(category string, threshold int) bool {
	_, ok := t.earned[model.Earned{Category: category, Threshold: threshold}]
	return ok
}

// Progress returns a copy of the persisted state.
func (t *Tracker) Progress() model.Progress {
	return t.progress.Clone()
}

// Counter returns the value of a category counter.
func (t *Tracker) Counter(key string) int {
	return t.progress.Counters[key]
}

// Streak returns the current session streak.
func (t *Tracker) Streak() int {
	return t.streak
}

// TotalCorrect returns the lifetime correct-answer counter.
func (t *Tracker) TotalCorrect() int {
	return t.progress.Counters[CategoryTotal]
}

// Unlocked returns unlocked rewards in unlock order.
func (t *Tracker) Unlocked() []model.Unlocked {
	return append([]model.Unlocked(nil), t.progress.Unlocked...)
}

// TotalRewards returns the number of assets assigned to categories.
func (t *Tracker) TotalRewards() int {
	return lo.SumBy(t.categories, func(c Category) int { return len(t.pools[c.Key]) })
}

// Categories returns the categories in evaluation order.
func (t *Tracker) Categories() []Category {
	return t.categories
}

// Pool returns the reward assets assigned to a category.
func (t *Tracker) Pool(category string) []string {
	return append([]string(nil), t.pools[category]...)
}
