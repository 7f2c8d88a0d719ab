package conjugate

import (
	"fmt"
	"slices"

	"github.com/verte-zerg/coucou/internal/lexicon"
	"github.com/verte-zerg/coucou/internal/model"
)

// Agreement slots of the past participle table.
const (
	MascSingular = iota
	MascPlural
	FemSingular
	FemPlural
)

// Resolved is the paradigm governing a verb and the literal prefix
// prepended to its endings.
type Resolved struct {
	Paradigm lexicon.Paradigm
	Prefix   string
}

// ResolveParadigm finds the paradigm of verb. Explicit lexicon entries win
// over structural matches.
func (e *Engine) ResolveParadigm(verb string) (Resolved, error) {
	if entry, ok := e.lex.Entry(verb); ok {
		p, ok := e.lex.Paradigm(entry.Template)
		if !ok {
			return Resolved{}, &NoParadigmError{Verb: verb, Paradigm: entry.Template}
		}
		if !p.Split {
			return Resolved{}, &MissingFormError{
				Verb:     verb,
				Paradigm: p.Key,
				Reason:   "paradigm key has no prefix:root split",
			}
		}
		if len(p.Root) > len(verb) {
			return Resolved{}, &MissingFormError{
				Verb:     verb,
				Paradigm: p.Key,
				Reason:   fmt.Sprintf("root %q is longer than the verb", p.Root),
			}
		}
		return Resolved{Paradigm: p, Prefix: verb[:len(verb)-len(p.Root)]}, nil
	}
	if key, ok := e.lex.StructuralParadigm(verb); ok {
		p, _ := e.lex.Paradigm(key)
		return Resolved{Paradigm: p, Prefix: p.Prefix}, nil
	}
	return Resolved{}, &NoParadigmError{Verb: verb}
}

// ResolveAuxiliary returns the auxiliary of verb in compound tenses.
func (e *Engine) ResolveAuxiliary(verb string, reflexive bool) string {
	if reflexive {
		return model.AuxEtre
	}
	if entry, ok := e.lex.Entry(verb); ok && entry.Aux != "" {
		return entry.Aux
	}
	return model.AuxAvoir
}

// AgreementIndex maps a subject to its participle agreement slot.
func AgreementIndex(subject string) int {
	switch subject {
	case "ils":
		return MascPlural
	case "elle":
		return FemSingular
	case "elles":
		return FemPlural
	default:
		return MascSingular
	}
}

// SubjectSlot maps a subject to its position in a paradigm table.
func SubjectSlot(mood, subject string) (int, error) {
	if mood == model.MoodImperative {
		idx := slices.Index(model.ImperativeSubjects, subject)
		if idx < 0 {
			return 0, fmt.Errorf("subject %q has no imperative form", subject)
		}
		return idx, nil
	}
	switch subject {
	case "je":
		return 0, nil
	case "tu":
		return 1, nil
	case "il", "elle", "on":
		return 2, nil
	case "nous":
		return 3, nil
	case "vous":
		return 4, nil
	case "ils", "elles":
		return 5, nil
	default:
		return 0, fmt.Errorf("unknown subject %q", subject)
	}
}
