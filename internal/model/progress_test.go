package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestProgressJSONRoundTrip(t *testing.T) {
	p := Progress{
		Earned: []Earned{
			{Category: "streak", Threshold: 2},
			{Category: "tense_indicative_present", Threshold: 1},
		},
		Counters: map[string]int{"streak": 3, "total": 12},
		Unlocked: []Unlocked{
			{Asset: "b.gif", Description: "2 Correct in a Row"},
			{Asset: "a.gif", Description: "1 Indicatif - Présent Verb"},
		},
	}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `["streak",2]`) || !strings.Contains(string(data), `["b.gif","2 Correct in a Row"]`) {
		t.Fatalf("expected pair arrays, got %s", data)
	}

	var got Progress
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Earned) != len(p.Earned) {
		t.Fatalf("expected %d earned, got %+v", len(p.Earned), got.Earned)
	}
	for i := range p.Earned {
		if got.Earned[i] != p.Earned[i] {
			t.Fatalf("earned[%d]: expected %+v, got %+v", i, p.Earned[i], got.Earned[i])
		}
	}
	if len(got.Counters) != len(p.Counters) {
		t.Fatalf("expected counters %+v, got %+v", p.Counters, got.Counters)
	}
	for k, v := range p.Counters {
		if got.Counters[k] != v {
			t.Fatalf("counter %s: expected %d, got %d", k, v, got.Counters[k])
		}
	}
	if len(got.Unlocked) != len(p.Unlocked) {
		t.Fatalf("expected %d unlocked, got %+v", len(p.Unlocked), got.Unlocked)
	}
	for i := range p.Unlocked {
		if got.Unlocked[i] != p.Unlocked[i] {
			t.Fatalf("unlocked[%d]: expected %+v, got %+v", i, p.Unlocked[i], got.Unlocked[i])
		}
	}
}

func TestProgressLegacyUnlockedImages(t *testing.T) {
	legacy := `{
		"earned": [["total", 5]],
		"counters": {"total": 7, "streak": 0},
		"unlocked_images": [["monet-01.gif", "5 Total Correct"]]
	}`
	var p Progress
	if err := json.Unmarshal([]byte(legacy), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(p.Unlocked) != 1 || p.Unlocked[0].Asset != "monet-01.gif" || p.Unlocked[0].Description != "5 Total Correct" {
		t.Fatalf("expected legacy rewards, got %+v", p.Unlocked)
	}
	if len(p.Earned) != 1 || p.Earned[0] != (Earned{Category: "total", Threshold: 5}) {
		t.Fatalf("unexpected earned: %+v", p.Earned)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestProgressRejectsMalformedPairs(t *testing.T) {
	cases := []string{
		`{"earned": [["total"]]}`,
		`{"earned": [[1, 2]]}`,
		`{"earned": [["total", "five"]]}`,
		`{"unlocked_rewards": [["a.gif"]]}`,
		`{"unlocked_rewards": [[1, 2]]}`,
	}
	for _, doc := range cases {
		var p Progress
		if err := json.Unmarshal([]byte(doc), &p); err == nil {
			t.Fatalf("expected error for %s", doc)
		}
	}
}

func TestProgressEmptyListsEncode(t *testing.T) {
	for name, p := range map[string]Progress{
		"empty":   EmptyProgress(),
		"zero":    {},
		"decoded": mustDecode(t, `{"counters": {}}`),
	} {
		data, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("%s: marshal: %v", name, err)
		}
		s := string(data)
		if strings.Contains(s, "null") {
			t.Fatalf("%s: expected no null lists, got %s", name, s)
		}
		if !strings.Contains(s, `"earned":[]`) || !strings.Contains(s, `"unlocked_rewards":[]`) || !strings.Contains(s, `"counters":{}`) {
			t.Fatalf("%s: unexpected encoding %s", name, s)
		}
	}
}

func TestProgressValidate(t *testing.T) {
	valid := Progress{
		Earned:   []Earned{{Category: "total", Threshold: 5}},
		Counters: map[string]int{"total": 5},
		Unlocked: []Unlocked{{Asset: "a.gif", Description: "5 Total Correct"}},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]Progress{
		"duplicate earned": {
			Earned: []Earned{{Category: "total", Threshold: 5}, {Category: "total", Threshold: 5}},
		},
		"duplicate asset": {
			Unlocked: []Unlocked{{Asset: "a.gif", Description: "x"}, {Asset: "a.gif", Description: "y"}},
		},
		"negative counter": {
			Counters: map[string]int{"streak": -1},
		},
		"zero threshold": {
			Earned: []Earned{{Category: "total", Threshold: 0}},
		},
		"empty asset": {
			Unlocked: []Unlocked{{Asset: "", Description: "x"}},
		},
	}
	for name, p := range cases {
		if err := p.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestProgressCloneIsDeep(t *testing.T) {
	p := Progress{
		Earned:   []Earned{{Category: "total", Threshold: 5}},
		Counters: map[string]int{"total": 5},
	}
	c := p.Clone()
	c.Counters["total"] = 99
	c.Earned[0].Threshold = 10
	if p.Counters["total"] != 5 || p.Earned[0].Threshold != 5 {
		t.Fatalf("clone shares state with original: %+v", p)
	}
}

func mustDecode(t *testing.T, doc string) Progress {
	t.Helper()
	var p Progress
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return p
}
