package model

// Moods.
const (
	MoodIndicative  = "indicative"
	MoodConditional = "conditional"
	MoodSubjunctive = "subjunctive"
	MoodImperative  = "imperative"
)

// Auxiliary verbs.
const (
	AuxAvoir = "avoir"
	AuxEtre  = "être"
)

// MoodTenses lists the tenses of a mood in drill order.
type MoodTenses struct {
	Mood   string
	Tenses []string
}

// MoodTense is a single (mood, tense) pair.
type MoodTense struct {
	Mood  string
	Tense string
}

// Taxonomy is the fixed mood/tense enumeration.
var Taxonomy = []MoodTenses{
	{Mood: MoodIndicative, Tenses: []string{"present", "imperfect", "future", "simple-past", "past-perfect", "pluperfect", "future-perfect"}},
	{Mood: MoodConditional, Tenses: []string{"present", "past"}},
	{Mood: MoodSubjunctive, Tenses: []string{"present", "imperfect", "past", "pluperfect"}},
	{Mood: MoodImperative, Tenses: []string{"imperative-present"}},
}

// compoundTenses maps mood -> compound tense -> tense of the auxiliary.
var compoundTenses = map[string]map[string]string{
	MoodIndicative: {
		"past-perfect":   "present",
		"pluperfect":     "imperfect",
		"future-perfect": "future",
	},
	MoodConditional: {
		"past": "present",
	},
	MoodSubjunctive: {
		"past":       "present",
		"pluperfect": "imperfect",
	},
}

// Subjects are the nine surface pronouns in canonical order.
var Subjects = []string{"je", "tu", "il", "elle", "on", "nous", "vous", "ils", "elles"}

// ImperativeSubjects is the subject domain of the imperative mood.
var ImperativeSubjects = []string{"tu", "nous", "vous"}

var reflexivePronouns = map[string]string{
	"je": "me", "tu": "te", "il": "se", "elle": "se", "on": "se",
	"nous": "nous", "vous": "vous", "ils": "se", "elles": "se",
}

var moodLabels = map[string]string{
	MoodIndicative:  "indicatif",
	MoodConditional: "conditionnel",
	MoodSubjunctive: "subjonctif",
	MoodImperative:  "impératif",
}

var tenseLabels = map[string]string{
	"present":            "présent",
	"imperfect":          "imparfait",
	"future":             "futur",
	"simple-past":        "passé simple",
	"past-perfect":       "passé composé",
	"pluperfect":         "plus-que-parfait",
	"future-perfect":     "futur antérieur",
	"past":               "passé",
	"imperative-present": "présent",
}

// MoodTensePairs flattens the taxonomy into the uniform sampling domain.
func MoodTensePairs() []MoodTense {
	var pairs []MoodTense
	for _, mt := range Taxonomy {
		for _, tense := range mt.Tenses {
			pairs = append(pairs, MoodTense{Mood: mt.Mood, Tense: tense})
		}
	}
	return pairs
}

// AuxiliaryTense returns the tense of the auxiliary for a compound tense.
// ok is false when the tense is simple.
func AuxiliaryTense(mood, tense string) (string, bool) {
	auxTense, ok := compoundTenses[mood][tense]
	return auxTense, ok
}

// IsCompound reports whether tense is a compound tense of mood.
func IsCompound(mood, tense string) bool {
	_, ok := AuxiliaryTense(mood, tense)
	return ok
}

// IsValidMoodTense reports whether the pair belongs to the taxonomy.
func IsValidMoodTense(mood, tense string) bool {
	for _, mt := range Taxonomy {
		if mt.Mood != mood {
			continue
		}
		for _, t := range mt.Tenses {
			if t == tense {
				return true
			}
		}
	}
	return false
}

// SubjectsFor returns the subject domain for a mood.
func SubjectsFor(mood string) []string {
	if mood == MoodImperative {
		return ImperativeSubjects
	}
	return Subjects
}

// ReflexivePronoun returns the reflexive pronoun matching subject.
func ReflexivePronoun(subject string) (string, bool) {
	p, ok := reflexivePronouns[subject]
	return p, ok
}

// MoodLabel returns the French label of a mood, or the mood itself.
func MoodLabel(mood string) string {
	if label, ok := moodLabels[mood]; ok {
		return label
	}
	return mood
}

// TenseLabel returns the French label of a tense, or the tense itself.
func TenseLabel(tense string) string {
	if label, ok := tenseLabels[tense]; ok {
		return label
	}
	return tense
}

// TenseCategoryKey is the achievement category key of a (mood, tense) pair.
func TenseCategoryKey(mood, tense string) string {
	return "tense_" + mood + "_" + tense
}
