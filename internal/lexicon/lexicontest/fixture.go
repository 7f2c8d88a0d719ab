// Package lexicontest provides a small lexicon fixture for tests.
package lexicontest

import (
	"testing"
	"testing/fstest"

	"github.com/verte-zerg/coucou/internal/lexicon"
)

const verbsJSON = `{
	"avoir": {"t": ":avoir"},
	"être": {"t": ":être"},
	"aller": {"t": ":aller", "aux": "être"},
	"aimer": {"t": "aim:er"},
	"laver": {"t": "aim:er"},
	"venir": {"t": "v:enir", "aux": "être"}
}`

const paradigmsJSON = `{
	"aim:er": {
		"indicative": {
			"present": [{"i": "e"}, {"i": "es"}, {"i": "e"}, {"i": "ons"}, {"i": "ez"}, {"i": "ent"}],
			"imperfect": [{"i": "ais"}, {"i": "ais"}, {"i": "ait"}, {"i": "ions"}, {"i": "iez"}, {"i": "aient"}],
			"future": [{"i": "erai"}, {"i": "eras"}, {"i": "era"}, {"i": "erons"}, {"i": "erez"}, {"i": "eront"}],
			"simple-past": [{"i": "ai"}, {"i": "as"}, {"i": "a"}, {"i": "âmes"}, {"i": "âtes"}, {"i": "èrent"}]
		},
		"conditional": {
			"present": [{"i": "erais"}, {"i": "erais"}, {"i": "erait"}, {"i": "erions"}, {"i": "eriez"}, {"i": "eraient"}]
		},
		"subjunctive": {
			"present": [{"i": "e"}, {"i": "es"}, {"i": "e"}, {"i": "ions"}, {"i": "iez"}, {"i": "ent"}],
			"imperfect": [{"i": "asse"}, {"i": "asses"}, {"i": "ât"}, {"i": "assions"}, {"i": "assiez"}, {"i": "assent"}]
		},
		"imperative": {
			"imperative-present": [{"i": "e"}, {"i": "ons"}, {"i": "ez"}]
		},
		"participle": {
			"past-participle": [{"i": "é"}, {"i": "és"}, {"i": "ée"}, {"i": "ées"}]
		}
	},
	"parl:er": {
		"indicative": {
			"present": [{"i": "e"}, {"i": "es"}, {"i": "e"}, {"i": "ons"}, {"i": "ez"}, {"i": "ent"}],
			"imperfect": [{"i": "ais"}, {"i": "ais"}, {"i": "ait"}, {"i": "ions"}, {"i": "iez"}, {"i": "aient"}],
			"future": [{"i": "erai"}, {"i": "eras"}, {"i": "era"}, {"i": "erons"}, {"i": "erez"}, {"i": "eront"}],
			"simple-past": [{"i": "ai"}, {"i": "as"}, {"i": "a"}, {"i": "âmes"}, {"i": "âtes"}, {"i": "èrent"}]
		},
		"conditional": {
			"present": [{"i": "erais"}, {"i": "erais"}, {"i": "erait"}, {"i": "erions"}, {"i": "eriez"}, {"i": "eraient"}]
		},
		"subjunctive": {
			"present": [{"i": "e"}, {"i": "es"}, {"i": "e"}, {"i": "ions"}, {"i": "iez"}, {"i": "ent"}],
			"imperfect": [{"i": "asse"}, {"i": "asses"}, {"i": "ât"}, {"i": "assions"}, {"i": "assiez"}, {"i": "assent"}]
		},
		"imperative": {
			"imperative-present": [{"i": "e"}, {"i": "ons"}, {"i": "ez"}]
		},
		"participle": {
			"past-participle": [{"i": "é"}, {"i": "és"}, {"i": "ée"}, {"i": "ées"}]
		}
	},
	"pa:yer": {
		"indicative": {
			"present": [{"i": ["ie", "ye"]}, {"i": ["ies", "yes"]}, {"i": ["ie", "ye"]}, {"i": "yons"}, {"i": "yez"}, {"i": ["ient", "yent"]}]
		},
		"participle": {
			"past-participle": [{"i": "yé"}, {"i": "yés"}, {"i": "yée"}, {"i": "yées"}]
		}
	},
	":avoir": {
		"indicative": {
			"present": [{"i": "ai"}, {"i": "as"}, {"i": "a"}, {"i": "avons"}, {"i": "avez"}, {"i": "ont"}],
			"imperfect": [{"i": "avais"}, {"i": "avais"}, {"i": "avait"}, {"i": "avions"}, {"i": "aviez"}, {"i": "avaient"}],
			"future": [{"i": "aurai"}, {"i": "auras"}, {"i": "aura"}, {"i": "aurons"}, {"i": "aurez"}, {"i": "auront"}],
			"simple-past": [{"i": "eus"}, {"i": "eus"}, {"i": "eut"}, {"i": "eûmes"}, {"i": "eûtes"}, {"i": "eurent"}]
		},
		"conditional": {
			"present": [{"i": "aurais"}, {"i": "aurais"}, {"i": "aurait"}, {"i": "aurions"}, {"i": "auriez"}, {"i": "auraient"}]
		},
		"subjunctive": {
			"present": [{"i": "aie"}, {"i": "aies"}, {"i": "ait"}, {"i": "ayons"}, {"i": "ayez"}, {"i": "aient"}],
			"imperfect": [{"i": "eusse"}, {"i": "eusses"}, {"i": "eût"}, {"i": "eussions"}, {"i": "eussiez"}, {"i": "eussent"}]
		},
		"imperative": {
			"imperative-present": [{"i": "aie"}, {"i": "ayons"}, {"i": "ayez"}]
		},
		"participle": {
			"past-participle": [{"i": "eu"}, {"i": "eus"}, {"i": "eue"}, {"i": "eues"}]
		}
	},
	":être": {
		"indicative": {
			"present": [{"i": "suis"}, {"i": "es"}, {"i": "est"}, {"i": "sommes"}, {"i": "êtes"}, {"i": "sont"}],
			"imperfect": [{"i": "étais"}, {"i": "étais"}, {"i": "était"}, {"i": "étions"}, {"i": "étiez"}, {"i": "étaient"}],
			"future": [{"i": "serai"}, {"i": "seras"}, {"i": "sera"}, {"i": "serons"}, {"i": "serez"}, {"i": "seront"}],
			"simple-past": [{"i": "fus"}, {"i": "fus"}, {"i": "fut"}, {"i": "fûmes"}, {"i": "fûtes"}, {"i": "furent"}]
		},
		"conditional": {
			"present": [{"i": "serais"}, {"i": "serais"}, {"i": "serait"}, {"i": "serions"}, {"i": "seriez"}, {"i": "seraient"}]
		},
		"subjunctive": {
			"present": [{"i": "sois"}, {"i": "sois"}, {"i": "soit"}, {"i": "soyons"}, {"i": "soyez"}, {"i": "soient"}],
			"imperfect": [{"i": "fusse"}, {"i": "fusses"}, {"i": "fût"}, {"i": "fussions"}, {"i": "fussiez"}, {"i": "fussent"}]
		},
		"imperative": {
			"imperative-present": [{"i": "sois"}, {"i": "soyons"}, {"i": "soyez"}]
		},
		"participle": {
			"past-participle": [{"i": "été"}, {"i": "été"}, {"i": "été"}, {"i": "été"}]
		}
	},
	":aller": {
		"indicative": {
			"present": [{"i": "vais"}, {"i": "vas"}, {"i": "va"}, {"i": "allons"}, {"i": "allez"}, {"i": "vont"}],
			"imperfect": [{"i": "allais"}, {"i": "allais"}, {"i": "allait"}, {"i": "allions"}, {"i": "alliez"}, {"i": "allaient"}],
			"future": [{"i": "irai"}, {"i": "iras"}, {"i": "ira"}, {"i": "irons"}, {"i": "irez"}, {"i": "iront"}]
		},
		"participle": {
			"past-participle": [{"i": "allé"}, {"i": "allés"}, {"i": "allée"}, {"i": "allées"}]
		}
	}
}`

const topVerbsJSON = `{
	"top_verbs": ["être", "avoir", "aller", "parler", "inconnu"],
	"dr_mrs_vandertramp": ["aller", "venir"]
}`

const nonReflexiveJSON = `["avoir", "être", "aller"]`

// FS returns the fixture feeds under their default names.
func FS() fstest.MapFS {
	return fstest.MapFS{
		lexicon.VerbsFile:        {Data: []byte(verbsJSON)},
		lexicon.ParadigmsFile:    {Data: []byte(paradigmsJSON)},
		lexicon.TopVerbsFile:     {Data: []byte(topVerbsJSON)},
		lexicon.NonReflexiveFile: {Data: []byte(nonReflexiveJSON)},
	}
}

// Load loads the fixture lexicon or fails the test.
func Load(t testing.TB) *lexicon.Lexicon {
	t.Helper()
	lex, err := lexicon.Load(FS(), lexicon.DefaultFiles())
	if err != nil {
		t.Fatalf("load fixture lexicon: %v", err)
	}
	return lex
}
