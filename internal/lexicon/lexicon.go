// Package lexicon loads and indexes verb metadata and conjugation paradigms.
package lexicon

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"

	"github.com/samber/lo"
)

// Default feed file names.
const (
	VerbsFile        = "verbs-fr.json"
	ParadigmsFile    = "conjugation-fr.json"
	TopVerbsFile     = "top-verbs-fr.json"
	NonReflexiveFile = "not-reflexive.json"
)

// Pool selects which verb set questions are drawn from.
type Pool string

// Verb pools.
const (
	PoolAll Pool = "all"
	PoolTop Pool = "top"
)

// ParsePool parses a pool name.
func ParsePool(s string) (Pool, error) {
	switch Pool(s) {
	case PoolAll, PoolTop:
		return Pool(s), nil
	default:
		return "", fmt.Errorf("unknown verb pool %q (want all or top)", s)
	}
}

// Entry is an explicit lexicon entry.
type Entry struct {
	Template string `json:"t"`
	Aux      string `json:"aux,omitempty"`
}

// TopVerbs is the priority verb feed.
type TopVerbs struct {
	TopVerbs         []string `json:"top_verbs"`
	DrMrsVandertramp []string `json:"dr_mrs_vandertramp"`
}

// Collision records two split paradigms producing the same infinitive.
type Collision struct {
	Infinitive string
	Kept       string
	Ignored    string
}

// Lexicon is the read-only verb and paradigm index.
type Lexicon struct {
	entries      map[string]Entry
	paradigms    map[string]Paradigm
	order        []string
	structural   map[string]string
	nonReflexive map[string]struct{}

	all        []string
	known      map[string]struct{}
	top        []string
	droppedTop []string
	ambiguous  []Collision
}

// Files names the four feeds inside a data directory.
type Files struct {
	Verbs        string
	Paradigms    string
	TopVerbs     string
	NonReflexive string
}

// DefaultFiles returns the standard feed names.
func DefaultFiles() Files {
	return Files{
		Verbs:        VerbsFile,
		Paradigms:    ParadigmsFile,
		TopVerbs:     TopVerbsFile,
		NonReflexive: NonReflexiveFile,
	}
}

// Load reads the four JSON feeds from fsys and builds a Lexicon.
func Load(fsys fs.FS, files Files) (*Lexicon, error) {
	var entries map[string]Entry
	if err := readJSON(fsys, files.Verbs, &entries); err != nil {
		return nil, err
	}
	paradigmData, err := fs.ReadFile(fsys, files.Paradigms)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", files.Paradigms, err)
	}
	paradigms, err := decodeParadigms(paradigmData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", files.Paradigms, err)
	}
	var top TopVerbs
	if err := readJSON(fsys, files.TopVerbs, &top); err != nil {
		return nil, err
	}
	var nonReflexive []string
	if err := readJSON(fsys, files.NonReflexive, &nonReflexive); err != nil {
		return nil, err
	}
	return New(entries, paradigms, top, nonReflexive)
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// New builds a Lexicon from decoded tables. Paradigm order is significant:
// when two split keys yield the same infinitive the first one wins.
func New(entries map[string]Entry, paradigms []Paradigm, top TopVerbs, nonReflexive []string) (*Lexicon, error) {
	lex := &Lexicon{
		entries:      make(map[string]Entry, len(entries)),
		paradigms:    make(map[string]Paradigm, len(paradigms)),
		order:        make([]string, 0, len(paradigms)),
		structural:   map[string]string{},
		nonReflexive: make(map[string]struct{}, len(nonReflexive)),
	}
	for verb, entry := range entries {
		if entry.Template == "" {
			return nil, fmt.Errorf("verb %q has no paradigm key", verb)
		}
		lex.entries[verb] = entry
	}
	for _, p := range paradigms {
		if _, dup := lex.paradigms[p.Key]; dup {
			return nil, fmt.Errorf("duplicate paradigm key %q", p.Key)
		}
		lex.paradigms[p.Key] = p
		lex.order = append(lex.order, p.Key)

		inf, ok := p.Infinitive()
		if !ok {
			continue
		}
		if kept, exists := lex.structural[inf]; exists {
			lex.ambiguous = append(lex.ambiguous, Collision{Infinitive: inf, Kept: kept, Ignored: p.Key})
			continue
		}
		lex.structural[inf] = p.Key
	}
	for _, verb := range nonReflexive {
		lex.nonReflexive[verb] = struct{}{}
	}

	all := append(lo.Keys(lex.entries), lo.Keys(lex.structural)...)
	lex.all = lo.Uniq(all)
	sort.Strings(lex.all)
	lex.known = make(map[string]struct{}, len(lex.all))
	for _, verb := range lex.all {
		lex.known[verb] = struct{}{}
	}

	priority := lo.Uniq(append(append([]string(nil), top.TopVerbs...), top.DrMrsVandertramp...))
	known := func(verb string, _ int) bool { return lex.IsKnown(verb) }
	lex.top = lo.Filter(priority, known)
	lex.droppedTop = lo.Reject(priority, known)
	return lex, nil
}

// Entry returns the explicit lexicon entry for verb.
func (l *Lexicon) Entry(verb string) (Entry, bool) {
	e, ok := l.entries[verb]
	return e, ok
}

// Paradigm returns the paradigm for key.
func (l *Lexicon) Paradigm(key string) (Paradigm, bool) {
	p, ok := l.paradigms[key]
	return p, ok
}

// StructuralParadigm returns the paradigm key whose prefix+root equals verb.
func (l *Lexicon) StructuralParadigm(verb string) (string, bool) {
	key, ok := l.structural[verb]
	return key, ok
}

// ParadigmKeys returns paradigm keys in declaration order.
func (l *Lexicon) ParadigmKeys() []string {
	return append([]string(nil), l.order...)
}

// IsKnown reports whether verb is in the known-verb set.
func (l *Lexicon) IsKnown(verb string) bool {
	_, ok := l.known[verb]
	return ok
}

// IsNonReflexive reports whether verb is excluded from reflexive use.
func (l *Lexicon) IsNonReflexive(verb string) bool {
	_, ok := l.nonReflexive[verb]
	return ok
}

// AllVerbs returns the sorted known-verb set.
func (l *Lexicon) AllVerbs() []string {
	return l.all
}

// TopVerbs returns the curated subset in priority order.
func (l *Lexicon) TopVerbs() []string {
	return l.top
}

// Verbs returns the verb slice for pool.
func (l *Lexicon) Verbs(pool Pool) []string {
	if pool == PoolTop {
		return l.top
	}
	return l.all
}

// DroppedTop returns priority verbs that are not known.
func (l *Lexicon) DroppedTop() []string {
	return l.droppedTop
}

// Ambiguous returns split-key collisions detected at load.
func (l *Lexicon) Ambiguous() []Collision {
	return l.ambiguous
}
