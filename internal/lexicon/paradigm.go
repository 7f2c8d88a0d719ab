package lexicon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Form is one inflected ending with its alternative spellings.
// The first alternative is canonical.
type Form []string

// UnmarshalJSON accepts {"i": "e"}, {"i": ["e", "é"]} and {"i": null}.
func (f *Form) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '"' {
		var single string
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*f = Form{single}
		return nil
	}
	var entry struct {
		I json.RawMessage `json:"i"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		return err
	}
	raw := bytes.TrimSpace(entry.I)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*f = nil
		return nil
	}
	if raw[0] == '[' {
		var alts []string
		if err := json.Unmarshal(raw, &alts); err != nil {
			return err
		}
		*f = alts
		return nil
	}
	var single string
	if err := json.Unmarshal(raw, &single); err != nil {
		return err
	}
	*f = Form{single}
	return nil
}

// Canonical returns the first alternative.
func (f Form) Canonical() (string, bool) {
	if len(f) == 0 {
		return "", false
	}
	return f[0], true
}

// FormList is the ordered slot table of one tense. A table that is not a
// JSON array decodes as Malformed instead of failing the whole load.
type FormList struct {
	Forms     []Form
	Malformed bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *FormList) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || raw[0] != '[' {
		l.Forms = nil
		l.Malformed = true
		return nil
	}
	var forms []Form
	if err := json.Unmarshal(raw, &forms); err != nil {
		return err
	}
	l.Forms = forms
	l.Malformed = false
	return nil
}

// Paradigm is a conjugation template: mood -> tense -> slot table.
type Paradigm struct {
	Key    string
	Prefix string
	Root   string
	Split  bool
	Moods  map[string]map[string]FormList
}

// NewParadigm builds a paradigm and splits its key on ':'.
func NewParadigm(key string, moods map[string]map[string]FormList) Paradigm {
	p := Paradigm{Key: key, Moods: moods}
	if prefix, root, ok := strings.Cut(key, ":"); ok {
		p.Prefix = prefix
		p.Root = root
		p.Split = true
	}
	return p
}

// Infinitive returns prefix+root for split keys.
func (p Paradigm) Infinitive() (string, bool) {
	if !p.Split {
		return "", false
	}
	return p.Prefix + p.Root, true
}

// Table returns the slot table for mood and tense.
func (p Paradigm) Table(mood, tense string) (FormList, bool) {
	tenses, ok := p.Moods[mood]
	if !ok {
		return FormList{}, false
	}
	list, ok := tenses[tense]
	return list, ok
}

// decodeParadigms decodes the paradigm document keeping key order.
func decodeParadigms(data []byte) ([]Paradigm, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("paradigm data must be an object")
	}
	var paradigms []Paradigm
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var moods map[string]map[string]FormList
		if err := dec.Decode(&moods); err != nil {
			return nil, fmt.Errorf("paradigm %q: %w", key, err)
		}
		paradigms = append(paradigms, NewParadigm(key, moods))
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return paradigms, nil
}
