// Package conjugate derives French verb forms from lexicon paradigms.
package conjugate

import (
	"fmt"

	"github.com/verte-zerg/coucou/internal/lexicon"
	"github.com/verte-zerg/coucou/internal/model"
)

const (
	participleMood  = "participle"
	participleTense = "past-participle"
)

// Engine conjugates verbs against a lexicon.
type Engine struct {
	lex *lexicon.Lexicon
}

// New returns an Engine backed by lex.
func New(lex *lexicon.Lexicon) *Engine {
	return &Engine{lex: lex}
}

// Conjugate produces the surface form of verb. Compound tenses are built
// from the auxiliary and the participle; reflexive use prefixes the pronoun.
func (e *Engine) Conjugate(verb, mood, tense, subject string, reflexive bool) (string, error) {
	if model.IsCompound(mood, tense) {
		return e.ConjugateCompound(verb, mood, tense, subject, reflexive)
	}
	form, err := e.ConjugateSimple(verb, mood, tense, subject)
	if err != nil {
		return "", err
	}
	if !reflexive {
		return form, nil
	}
	pronoun, err := reflexivePronoun(verb, subject)
	if err != nil {
		return "", err
	}
	return pronoun + " " + form, nil
}

// ConjugateSimple returns prefix + ending for a simple tense.
func (e *Engine) ConjugateSimple(verb, mood, tense, subject string) (string, error) {
	res, err := e.ResolveParadigm(verb)
	if err != nil {
		return "", err
	}
	missing := func(reason string, cause error) error {
		return &MissingFormError{
			Verb:     verb,
			Paradigm: res.Paradigm.Key,
			Mood:     mood,
			Tense:    tense,
			Subject:  subject,
			Reason:   reason,
			Err:      cause,
		}
	}
	table, ok := res.Paradigm.Table(mood, tense)
	if !ok {
		return "", missing("no table", nil)
	}
	if table.Malformed {
		return "", missing("table is not a list", nil)
	}
	slot, err := SubjectSlot(mood, subject)
	if err != nil {
		return "", missing("no slot", err)
	}
	if slot >= len(table.Forms) {
		return "", missing(fmt.Sprintf("table has %d slots", len(table.Forms)), nil)
	}
	ending, ok := table.Forms[slot].Canonical()
	if !ok {
		return "", missing("empty form", nil)
	}
	return res.Prefix + ending, nil
}

// Participle returns the past participle of verb, agreeing with subject
// only when the auxiliary is être.
func (e *Engine) Participle(verb, subject string, reflexive bool) (string, error) {
	res, err := e.ResolveParadigm(verb)
	if err != nil {
		return "", err
	}
	missing := func(reason string) error {
		return &MissingFormError{
			Verb:     verb,
			Paradigm: res.Paradigm.Key,
			Mood:     participleMood,
			Tense:    participleTense,
			Subject:  subject,
			Reason:   reason,
		}
	}
	table, ok := res.Paradigm.Table(participleMood, participleTense)
	if !ok {
		return "", missing("no participle table")
	}
	if table.Malformed {
		return "", missing("participle table is not a list")
	}
	idx := MascSingular
	if e.ResolveAuxiliary(verb, reflexive) == model.AuxEtre {
		idx = AgreementIndex(subject)
	}
	if idx >= len(table.Forms) {
		return "", missing(fmt.Sprintf("participle table has %d forms", len(table.Forms)))
	}
	ending, ok := table.Forms[idx].Canonical()
	if !ok {
		return "", missing("empty participle")
	}
	return res.Prefix + ending, nil
}

// ConjugateCompound returns "[pronoun ]auxiliary participle".
func (e *Engine) ConjugateCompound(verb, mood, tense, subject string, reflexive bool) (string, error) {
	auxTense, ok := model.AuxiliaryTense(mood, tense)
	if !ok {
		return "", &MissingFormError{
			Verb:   verb,
			Mood:   mood,
			Tense:  tense,
			Reason: "not a compound tense",
			Err:    ErrNotCompound,
		}
	}
	aux := e.ResolveAuxiliary(verb, reflexive)
	auxForm, err := e.ConjugateSimple(aux, mood, auxTense, subject)
	if err != nil {
		return "", fmt.Errorf("auxiliary %s: %w", aux, err)
	}
	participle, err := e.Participle(verb, subject, reflexive)
	if err != nil {
		return "", err
	}
	form := auxForm + " " + participle
	if !reflexive {
		return form, nil
	}
	pronoun, err := reflexivePronoun(verb, subject)
	if err != nil {
		return "", err
	}
	return pronoun + " " + form, nil
}

func reflexivePronoun(verb, subject string) (string, error) {
	pronoun, ok := model.ReflexivePronoun(subject)
	if !ok {
		return "", &MissingFormError{Verb: verb, Subject: subject, Reason: "no reflexive pronoun"}
	}
	return pronoun, nil
}
