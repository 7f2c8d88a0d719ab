package achievement

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/verte-zerg/coucou/internal/model"
)

type recordingSaver struct {
	saves []model.Progress
	err   error
}

func (s *recordingSaver) SaveProgress(_ context.Context, p model.Progress) error {
	s.saves = append(s.saves, p)
	return s.err
}

func testAssets(n int) []string {
	assets := make([]string, n)
	for i := range assets {
		assets[i] = fmt.Sprintf("monet-%03d.gif", i)
	}
	return assets
}

func newTestTracker(t *testing.T, assets []string, saver Saver) *Tracker {
	t.Helper()
	opts := []Option{WithRand(rand.New(rand.NewSource(9)))}
	if saver != nil {
		opts = append(opts, WithSaver(saver))
	}
	tr, err := NewTracker(DefaultCategories(), assets, model.EmptyProgress(), opts...)
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	return tr
}

var presentQ = model.Question{Verb: "parler", Mood: model.MoodIndicative, Tense: "present", Subject: "nous"}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	if len(cats) != 2+len(model.MoodTensePairs()) {
		t.Fatalf("unexpected category count %d", len(cats))
	}
	if cats[0].Key != CategoryStreak || cats[1].Key != CategoryTotal {
		t.Fatalf("unexpected leading categories %s, %s", cats[0].Key, cats[1].Key)
	}
	if cats[2].Key != "tense_indicative_present" {
		t.Fatalf("unexpected first tense category %s", cats[2].Key)
	}
	if got := cats[2].Milestones[0].Description; got != "1 indicatif - présent Verb" {
		t.Fatalf("unexpected description %q", got)
	}
	for _, c := range cats {
		if err := c.validate(); err != nil {
			t.Fatalf("default category invalid: %v", err)
		}
	}
}

func TestStreakAndTotalCounters(t *testing.T) {
	tr := newTestTracker(t, nil, nil)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := tr.Submit(ctx, presentQ, true); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	if tr.Streak() != 3 || tr.Counter(CategoryStreak) != 3 {
		t.Fatalf("expected streak 3, got %d/%d", tr.Streak(), tr.Counter(CategoryStreak))
	}
	res, err := tr.Submit(ctx, presentQ, false)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Correct || res.Streak != 0 || tr.Counter(CategoryStreak) != 0 {
		t.Fatalf("expected streak reset, got %+v", res)
	}
	if res.TotalCorrect != 3 || tr.TotalCorrect() != 3 {
		t.Fatalf("expected total untouched at 3, got %d", res.TotalCorrect)
	}
	if got := tr.Counter("tense_indicative_present"); got != 3 {
		t.Fatalf("expected tense counter 3, got %d", got)
	}
}

func TestRecordTotalIsMonotonic(t *testing.T) {
	tr := newTestTracker(t, nil, nil)
	tr.Record(1, 10, model.MoodIndicative, "present")
	tr.Record(2, 4, model.MoodIndicative, "present")
	if tr.TotalCorrect() != 10 {
		t.Fatalf("total must not decrease, got %d", tr.TotalCorrect())
	}
	tr.Record(1, 1, "unknown", "tense")
	if tr.Counter("tense_unknown_tense") != 0 {
		t.Fatalf("unknown tense categories must not be counted")
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	saver := &recordingSaver{}
	tr := newTestTracker(t, testAssets(64), saver)
	tr.Record(2, 5, model.MoodIndicative, "present")
	ctx := context.Background()

	first, err := tr.Evaluate(ctx)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	// streak 2, total 5, tense 1
	if len(first) != 3 {
		t.Fatalf("expected 3 rewards, got %d", len(first))
	}
	if len(saver.saves) != 1 {
		t.Fatalf("expected one save, got %d", len(saver.saves))
	}
	earned := len(tr.Progress().Earned)

	second, err := tr.Evaluate(ctx)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("expected no new rewards, got %d", len(second))
	}
	if len(tr.Progress().Earned) != earned {
		t.Fatalf("earned set changed on second evaluation")
	}
	if len(tr.Unlocked()) != 3 {
		t.Fatalf("expected 3 unlocked rewards, got %d", len(tr.Unlocked()))
	}
	if len(saver.saves) != 1 {
		t.Fatalf("expected no save without new achievements, got %d", len(saver.saves))
	}
}

func TestRewardsAreNeverRepeated(t *testing.T) {
	cats := DefaultCategories()
	tr := newTestTracker(t, testAssets(len(cats)*3+5), nil)
	ctx := context.Background()
	for i := 0; i < 400; i++ {
		q := presentQ
		if i%2 == 1 {
			q.Mood, q.Tense = model.MoodSubjunctive, "past"
		}
		if _, err := tr.Submit(ctx, q, true); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	seen := map[string]bool{}
	for _, u := range tr.Unlocked() {
		if seen[u.Asset] {
			t.Fatalf("asset %s unlocked twice", u.Asset)
		}
		seen[u.Asset] = true
	}
	// Each category owns 3 assets; exhausted pools earn without reward.
	for _, key := range []string{CategoryStreak, CategoryTotal, "tense_indicative_present"} {
		pool := tr.Pool(key)
		for _, asset := range pool {
			if !seen[asset] {
				t.Fatalf("expected every asset of %s to be unlocked", key)
			}
		}
	}
	if !tr.IsEarned(CategoryTotal, 300) {
		t.Fatalf("expected total 300 milestone to be earned")
	}
}

func TestPartitionRewards(t *testing.T) {
	cats := []Category{{Key: "a"}, {Key: "b"}, {Key: "c"}}
	pools := PartitionRewards([]string{"g.gif", "a.gif", "c.gif", "b.gif", "e.gif", "d.gif", "f.gif"}, cats)
	if fmt.Sprint(pools["a"]) != "[a.gif b.gif]" || fmt.Sprint(pools["b"]) != "[c.gif d.gif]" || fmt.Sprint(pools["c"]) != "[e.gif f.gif]" {
		t.Fatalf("unexpected partition: %v", pools)
	}
	empty := PartitionRewards([]string{"a.gif"}, cats)
	if len(empty["a"]) != 0 {
		t.Fatalf("expected empty pools when assets < categories")
	}
}

func TestAllCompleted(t *testing.T) {
	cats := []Category{
		{Key: CategoryStreak, Name: "Streak", Milestones: []Milestone{{Threshold: 1, Description: "1"}, {Threshold: 2, Description: "2"}}},
		{Key: CategoryTotal, Name: "Total", Milestones: []Milestone{{Threshold: 2, Description: "2"}}},
	}
	tr, err := NewTracker(cats, nil, model.EmptyProgress())
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	ctx := context.Background()
	if _, err := tr.Submit(ctx, presentQ, true); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if tr.AllCompleted() {
		t.Fatalf("did not expect completion after one answer")
	}
	if _, err := tr.Submit(ctx, presentQ, true); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !tr.AllCompleted() {
		t.Fatalf("expected completion, earned %d of %d", tr.EarnedCount(), tr.TotalMilestones())
	}
}

func TestNewTrackerRestoresProgress(t *testing.T) {
	progress := model.Progress{
		Earned:   []model.Earned{{Category: CategoryStreak, Threshold: 2}},
		Counters: map[string]int{CategoryStreak: 2, CategoryTotal: 4},
		Unlocked: []model.Unlocked{{Asset: "monet-000.gif", Description: "2 Correct in a Row"}},
	}
	tr, err := NewTracker(DefaultCategories(), testAssets(64), progress, WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	rewards, err := tr.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(rewards) != 0 {
		t.Fatalf("restored milestones must not be earned again, got %v", rewards)
	}
	if tr.Streak() != 0 {
		t.Fatalf("session streak starts at zero")
	}
	res, err := tr.Submit(context.Background(), presentQ, true)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.TotalCorrect != 5 {
		t.Fatalf("expected lifetime total 5, got %d", res.TotalCorrect)
	}
	for _, r := range res.Rewards {
		if r.Asset == "monet-000.gif" {
			t.Fatalf("restored asset unlocked again")
		}
	}
}

func TestNewTrackerRejectsBadInput(t *testing.T) {
	bad := []Category{{Key: "x", Milestones: []Milestone{{Threshold: 5}, {Threshold: 5}}}}
	if _, err := NewTracker(bad, nil, model.EmptyProgress()); err == nil {
		t.Fatalf("expected error for non-increasing thresholds")
	}
	progress := model.EmptyProgress()
	progress.Counters["total"] = -1
	if _, err := NewTracker(DefaultCategories(), nil, progress); err == nil {
		t.Fatalf("expected error for negative counter")
	}
}

func TestEvaluateReportsSaveError(t *testing.T) {
	saver := &recordingSaver{err: errors.New("disk full")}
	tr := newTestTracker(t, testAssets(64), saver)
	tr.Record(2, 2, model.MoodIndicative, "present")
	rewards, err := tr.Evaluate(context.Background())
	if err == nil {
		t.Fatalf("expected save error")
	}
	if len(rewards) == 0 {
		t.Fatalf("rewards must still be returned when saving fails")
	}
}
