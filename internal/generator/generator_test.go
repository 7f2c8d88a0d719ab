package generator

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/verte-zerg/coucou/internal/conjugate"
	"github.com/verte-zerg/coucou/internal/lexicon/lexicontest"
	"github.com/verte-zerg/coucou/internal/model"
)

type failingConjugator struct {
	calls int
}

func (f *failingConjugator) Conjugate(verb, mood, tense, subject string, reflexive bool) (string, error) {
	f.calls++
	return "", &conjugate.NoParadigmError{Verb: verb}
}

func newTestGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	lex := lexicontest.Load(t)
	return New(conjugate.New(lex), lex, WithRand(rand.New(rand.NewSource(seed))))
}

func TestGenerateProducesCanonicalAnswer(t *testing.T) {
	lex := lexicontest.Load(t)
	engine := conjugate.New(lex)
	g := New(engine, lex, WithRand(rand.New(rand.NewSource(7))))
	for i := 0; i < 200; i++ {
		q, err := g.Generate([]string{"parler", "laver", "aller"})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		want, err := engine.Conjugate(q.Verb, q.Mood, q.Tense, q.Subject, q.Reflexive)
		if err != nil {
			t.Fatalf("conjugate %+v: %v", q, err)
		}
		if q.Answer != want {
			t.Fatalf("expected answer %q, got %q", want, q.Answer)
		}
	}
}

func TestMoodTensePairsAreUniform(t *testing.T) {
	g := newTestGenerator(t, 42)
	pairs := model.MoodTensePairs()
	const perPair = 1000
	draws := perPair * len(pairs)
	counts := map[model.MoodTense]int{}
	for i := 0; i < draws; i++ {
		q := g.Draw([]string{"parler"})
		counts[model.MoodTense{Mood: q.Mood, Tense: q.Tense}]++
	}
	if len(counts) != len(pairs) {
		t.Fatalf("expected %d pairs, saw %d", len(pairs), len(counts))
	}
	for _, p := range pairs {
		got := counts[p]
		if math.Abs(float64(got-perPair)) > perPair*0.15 {
			t.Fatalf("pair %s/%s drawn %d times, expected about %d", p.Mood, p.Tense, got, perPair)
		}
	}
}

func TestImperativeSubjectsAndNoReflexive(t *testing.T) {
	g := newTestGenerator(t, 3)
	allowed := map[string]bool{"tu": true, "nous": true, "vous": true}
	for i := 0; i < 5000; i++ {
		q := g.Draw([]string{"laver"})
		if q.Mood != model.MoodImperative {
			continue
		}
		if !allowed[q.Subject] {
			t.Fatalf("unexpected imperative subject %q", q.Subject)
		}
		if q.Reflexive {
			t.Fatalf("imperative question must not be reflexive")
		}
	}
}

func TestReflexiveRespectsExclusionAndRate(t *testing.T) {
	g := newTestGenerator(t, 11)
	for i := 0; i < 2000; i++ {
		if q := g.Draw([]string{"aller"}); q.Reflexive {
			t.Fatalf("aller is non-reflexive")
		}
	}
	reflexive, eligible := 0, 0
	for i := 0; i < 20000; i++ {
		q := g.Draw([]string{"laver"})
		if q.Mood == model.MoodImperative {
			continue
		}
		eligible++
		if q.Reflexive {
			reflexive++
		}
	}
	rate := float64(reflexive) / float64(eligible)
	if rate < 0.13 || rate > 0.17 {
		t.Fatalf("reflexive rate %.3f outside expected range", rate)
	}
}

func TestGenerateResamplesOnFailure(t *testing.T) {
	var skipped int
	lex := lexicontest.Load(t)
	g := New(conjugate.New(lex), lex,
		WithRand(rand.New(rand.NewSource(5))),
		WithSkipHook(func(model.Question, error) { skipped++ }),
	)
	for i := 0; i < 50; i++ {
		if _, err := g.Generate([]string{"venir", "parler"}); err != nil {
			t.Fatalf("generate: %v", err)
		}
	}
	if skipped == 0 {
		t.Fatalf("expected some draws of venir to be discarded")
	}
}

func TestGenerateGivesUpAfterMaxAttempts(t *testing.T) {
	conj := &failingConjugator{}
	g := New(conj, nil, WithRand(rand.New(rand.NewSource(1))), WithMaxAttempts(12))
	_, err := g.Generate([]string{"venir"})
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
	if !errors.Is(err, conjugate.ErrNoParadigm) {
		t.Fatalf("expected wrapped engine error, got %v", err)
	}
	if conj.calls != 12 {
		t.Fatalf("expected 12 attempts, got %d", conj.calls)
	}
}

func TestGenerateEmptyPool(t *testing.T) {
	g := newTestGenerator(t, 1)
	if _, err := g.Generate(nil); !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}

func TestCheckAnswer(t *testing.T) {
	if !CheckAnswer("  Parlons ", "parlons") {
		t.Fatalf("expected trimmed case-insensitive match")
	}
	if !CheckAnswer("SONT ALLÉES", "sont allées") {
		t.Fatalf("expected accented case-insensitive match")
	}
	if CheckAnswer("sont allees", "sont allées") {
		t.Fatalf("accents must match")
	}
	if CheckAnswer("paye", "paie") {
		t.Fatalf("alternate spellings are not accepted")
	}
}

func TestPrompt(t *testing.T) {
	q := model.Question{Verb: "laver", Mood: model.MoodIndicative, Tense: "past-perfect", Subject: "elle", Reflexive: true}
	want := "Conjuguez 'laver' (réflexif) au indicatif - passé composé, sujet : 'elle'"
	if got := Prompt(q); got != want {
		t.Fatalf("unexpected prompt %q", got)
	}
}
