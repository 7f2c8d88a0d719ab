package model

import (
	"encoding/json"
	"fmt"
)

// Earned identifies an earned milestone.
type Earned struct {
	Category  string
	Threshold int
}

// Unlocked is a reward asset unlocked by a milestone, in unlock order.
type Unlocked struct {
	Asset       string
	Description string
}

// Progress is the persisted snapshot of achievement state.
type Progress struct {
	Earned   []Earned       `json:"earned"`
	Counters map[string]int `json:"counters"`
	Unlocked []Unlocked     `json:"unlocked_rewards"`
}

// EmptyProgress returns fresh progress with no counters.
func EmptyProgress() Progress {
	return Progress{
		Earned:   []Earned{},
		Counters: map[string]int{},
		Unlocked: []Unlocked{},
	}
}

// Clone returns a deep copy of p.
func (p Progress) Clone() Progress {
	out := Progress{
		Earned:   append([]Earned{}, p.Earned...),
		Counters: make(map[string]int, len(p.Counters)),
		Unlocked: append([]Unlocked{}, p.Unlocked...),
	}
	for k, v := range p.Counters {
		out.Counters[k] = v
	}
	return out
}

// MarshalJSON encodes an earned milestone as [category, threshold].
func (e Earned) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.Category, e.Threshold})
}

// UnmarshalJSON decodes [category, threshold].
func (e *Earned) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("earned entry must have 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &e.Category); err != nil {
		return fmt.Errorf("earned category: %w", err)
	}
	if err := json.Unmarshal(raw[1], &e.Threshold); err != nil {
		return fmt.Errorf("earned threshold: %w", err)
	}
	return nil
}

// MarshalJSON encodes an unlocked reward as [asset, description].
func (u Unlocked) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{u.Asset, u.Description})
}

// UnmarshalJSON decodes [asset, description].
func (u *Unlocked) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("unlocked entry must have 2 elements, got %d", len(raw))
	}
	u.Asset = raw[0]
	u.Description = raw[1]
	return nil
}

// MarshalJSON encodes progress with lists present even when empty.
func (p Progress) MarshalJSON() ([]byte, error) {
	type plain Progress
	out := plain(p.Clone())
	return json.Marshal(out)
}

// UnmarshalJSON decodes progress, accepting the legacy "unlocked_images" key.
func (p *Progress) UnmarshalJSON(data []byte) error {
	var raw struct {
		Earned         []Earned       `json:"earned"`
		Counters       map[string]int `json:"counters"`
		Unlocked       []Unlocked     `json:"unlocked_rewards"`
		UnlockedImages []Unlocked     `json:"unlocked_images"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	unlocked := raw.Unlocked
	if len(unlocked) == 0 {
		unlocked = raw.UnlockedImages
	}
	*p = Progress{Earned: raw.Earned, Counters: raw.Counters, Unlocked: unlocked}.Clone()
	return nil
}

// Validate checks the structural invariants of persisted progress.
func (p Progress) Validate() error {
	seenEarned := make(map[Earned]struct{}, len(p.Earned))
	for _, e := range p.Earned {
		if e.Category == "" {
			return fmt.Errorf("earned entry has empty category")
		}
		if e.Threshold <= 0 {
			return fmt.Errorf("earned %s has non-positive threshold %d", e.Category, e.Threshold)
		}
		if _, ok := seenEarned[e]; ok {
			return fmt.Errorf("earned %s/%d is duplicated", e.Category, e.Threshold)
		}
		seenEarned[e] = struct{}{}
	}
	for key, v := range p.Counters {
		if v < 0 {
			return fmt.Errorf("counter %s is negative", key)
		}
	}
	seenAssets := make(map[string]struct{}, len(p.Unlocked))
	for _, u := range p.Unlocked {
		if u.Asset == "" {
			return fmt.Errorf("unlocked reward has empty asset")
		}
		if _, ok := seenAssets[u.Asset]; ok {
			return fmt.Errorf("asset %s unlocked twice", u.Asset)
		}
		seenAssets[u.Asset] = struct{}{}
	}
	return nil
}
