// Package generator builds randomized conjugation questions.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/coucou/internal/model"
)

// Defaults for question sampling.
const (
	DefaultReflexiveProb = 0.15
	DefaultMaxAttempts   = 50
)

var (
	// ErrEmptyPool is returned when there are no verbs to sample.
	ErrEmptyPool = errors.New("verb pool is empty")
	// ErrGenerationFailed is returned after MaxAttempts failed draws.
	ErrGenerationFailed = errors.New("could not generate a question")
)

// Conjugator produces canonical answers.
type Conjugator interface {
	Conjugate(verb, mood, tense, subject string, reflexive bool) (string, error)
}

// ReflexiveFilter reports verbs that never take a reflexive pronoun.
type ReflexiveFilter interface {
	IsNonReflexive(verb string) bool
}

// Generator produces randomized questions.
type Generator struct {
	rnd           *rand.Rand
	conj          Conjugator
	reflexive     ReflexiveFilter
	pairs         []model.MoodTense
	reflexiveProb float64
	maxAttempts   int
	onSkip        func(q model.Question, err error)
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source.
func WithRand(rnd *rand.Rand) Option {
	return func(g *Generator) { g.rnd = rnd }
}

// WithReflexiveProb sets the probability of a reflexive question.
func WithReflexiveProb(p float64) Option {
	return func(g *Generator) { g.reflexiveProb = p }
}

// WithMaxAttempts bounds the resampling loop.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithSkipHook is called for every discarded draw.
func WithSkipHook(fn func(q model.Question, err error)) Option {
	return func(g *Generator) { g.onSkip = fn }
}

// New returns a Generator seeded with the current time.
func New(conj Conjugator, reflexive ReflexiveFilter, opts ...Option) *Generator {
	g := &Generator{
		rnd:           rand.New(rand.NewSource(time.Now().UnixNano())),
		conj:          conj,
		reflexive:     reflexive,
		pairs:         model.MoodTensePairs(),
		reflexiveProb: DefaultReflexiveProb,
		maxAttempts:   DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate draws a fresh question from verbs. Every failed draw is replaced
// by a brand-new one, up to the attempt limit.
func (g *Generator) Generate(verbs []string) (model.Question, error) {
	if len(verbs) == 0 {
		return model.Question{}, ErrEmptyPool
	}
	var lastErr error
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		q := g.Draw(verbs)
		answer, err := g.conj.Conjugate(q.Verb, q.Mood, q.Tense, q.Subject, q.Reflexive)
		if err != nil {
			lastErr = err
			if g.onSkip != nil {
				g.onSkip(q, err)
			}
			continue
		}
		q.Answer = answer
		return q, nil
	}
	return model.Question{}, fmt.Errorf("%w after %d attempts: %w", ErrGenerationFailed, g.maxAttempts, lastErr)
}

// Draw samples verb, (mood, tense), subject and reflexivity without
// computing the answer.
func (g *Generator) Draw(verbs []string) model.Question {
	verb := verbs[g.rnd.Intn(len(verbs))]
	pair := g.pairs[g.rnd.Intn(len(g.pairs))]
	subjects := model.SubjectsFor(pair.Mood)
	subject := subjects[g.rnd.Intn(len(subjects))]
	return model.Question{
		Verb:      verb,
		Mood:      pair.Mood,
		Tense:     pair.Tense,
		Subject:   subject,
		Reflexive: g.drawReflexive(verb, pair.Mood),
	}
}

func (g *Generator) drawReflexive(verb, mood string) bool {
	if mood == model.MoodImperative {
		return false
	}
	if g.reflexive != nil && g.reflexive.IsNonReflexive(verb) {
		return false
	}
	return g.rnd.Float64() < g.reflexiveProb
}

// CheckAnswer compares input with the canonical answer, ignoring case and
// surrounding whitespace.
func CheckAnswer(input, canonical string) bool {
	return strings.EqualFold(strings.TrimSpace(input), strings.TrimSpace(canonical))
}

// Prompt renders the French instruction for q.
func Prompt(q model.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Conjuguez '%s'", q.Verb)
	if q.Reflexive {
		b.WriteString(" (réflexif)")
	}
	fmt.Fprintf(&b, " au %s - %s, sujet : '%s'", model.MoodLabel(q.Mood), model.TenseLabel(q.Tense), q.Subject)
	return b.String()
}
