package domain

// PartOfSpeech represents the grammatical category of a word.
type PartOfSpeech string

const (
	PartOfSpeechNoun        PartOfSpeech = "noun"
	PartOfSpeechVerb        PartOfSpeech = "verb"
	PartOfSpeechAdjective   PartOfSpeech = "adjective"
	PartOfSpeechArticle     PartOfSpeech = "article"
	PartOfSpeechPronoun     PartOfSpeech = "pronoun"
	PartOfSpeechAdverb      PartOfSpeech = "adverb"
	PartOfSpeechPreposition PartOfSpeech = "preposition"
	PartOfSpeechConjunction PartOfSpeech = "conjunction"

	// PartOfSpeechNumeral is reserved for future use; templates naming it
	// are rejected during resolution.
	PartOfSpeechNumeral PartOfSpeech = "numeral"
)

// PartsOfSpeech lists the active parts of speech in canonical order.
var PartsOfSpeech = []PartOfSpeech{
	PartOfSpeechNoun,
	PartOfSpeechVerb,
	PartOfSpeechAdjective,
	PartOfSpeechArticle,
	PartOfSpeechPronoun,
	PartOfSpeechAdverb,
	PartOfSpeechPreposition,
	PartOfSpeechConjunction,
}

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechArticle,
		PartOfSpeechPronoun, PartOfSpeechAdverb, PartOfSpeechPreposition, PartOfSpeechConjunction:
		return true
	}
	return false
}

// IsInflectable reports whether words of this part of speech decline or conjugate.
func (p PartOfSpeech) IsInflectable() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective,
		PartOfSpeechArticle, PartOfSpeechPronoun:
		return true
	}
	return false
}

// IsInvariable reports whether words of this part of speech have a single
// fixed surface form.
func (p PartOfSpeech) IsInvariable() bool {
	switch p {
	case PartOfSpeechAdverb, PartOfSpeechPreposition, PartOfSpeechConjunction:
		return true
	}
	return false
}

// FeatureCategory identifies one axis of grammatical variation.
type FeatureCategory string

const (
	CategoryCase   FeatureCategory = "case"
	CategoryGender FeatureCategory = "gender"
	CategoryNumber FeatureCategory = "number"
	CategoryTense  FeatureCategory = "tense"
	CategoryVoice  FeatureCategory = "voice"
	CategoryMood   FeatureCategory = "mood"
	CategoryPerson FeatureCategory = "person"
	CategoryType   FeatureCategory = "type"
)

// FeatureCategories lists all categories in canonical order. Code that
// iterates a FeatureSet must walk this slice, not the map, so that
// random draws happen in a stable order.
var FeatureCategories = []FeatureCategory{
	CategoryCase,
	CategoryGender,
	CategoryNumber,
	CategoryTense,
	CategoryVoice,
	CategoryMood,
	CategoryPerson,
	CategoryType,
}

func (c FeatureCategory) String() string { return string(c) }

func (c FeatureCategory) IsValid() bool {
	switch c {
	case CategoryCase, CategoryGender, CategoryNumber, CategoryTense,
		CategoryVoice, CategoryMood, CategoryPerson, CategoryType:
		return true
	}
	return false
}

// SupportsWildcard reports whether templates may request a random value
// for this category.
func (c FeatureCategory) SupportsWildcard() bool {
	switch c {
	case CategoryGender, CategoryNumber, CategoryPerson:
		return true
	}
	return false
}

// Case represents grammatical case.
type Case string

const (
	CaseNominative Case = "nominative"
	CaseGenitive   Case = "genitive"
	CaseAccusative Case = "accusative"
	CaseVocative   Case = "vocative"
)

func (c Case) String() string { return string(c) }

// Gender represents grammatical gender.
type Gender string

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderNeuter    Gender = "neuter"
)

func (g Gender) String() string { return string(g) }

// Number represents grammatical number.
type Number string

const (
	NumberSingular Number = "singular"
	NumberPlural   Number = "plural"
)

func (n Number) String() string { return string(n) }

// Tense represents verb tense.
type Tense string

const (
	TensePresent Tense = "present"
	TensePast    Tense = "past"
	TenseFuture  Tense = "future"
)

func (t Tense) String() string { return string(t) }

// Voice represents verb voice.
type Voice string

const (
	VoiceActive  Voice = "active"
	VoicePassive Voice = "passive"
)

func (v Voice) String() string { return string(v) }

// Mood represents verb mood. Mood appears as a level in verb inflection
// tables but is never a template-selectable category; generation always
// reads the indicative.
type Mood string

const (
	MoodIndicative Mood = "indicative"
	MoodImperative Mood = "imperative"
)

func (m Mood) String() string { return string(m) }

// Person represents grammatical person.
type Person string

const (
	PersonFirst  Person = "first"
	PersonSecond Person = "second"
	PersonThird  Person = "third"
)

func (p Person) String() string { return string(p) }

// PronounType classifies pronouns.
type PronounType string

const (
	PronounPersonalStrong PronounType = "personal_strong"
	PronounPersonalWeak   PronounType = "personal_weak"
	PronounDemonstrative  PronounType = "demonstrative"
	PronounInterrogative  PronounType = "interrogative"
	PronounPossessive     PronounType = "possessive"
	PronounRelative       PronounType = "relative"
	PronounIndefinite     PronounType = "indefinite"
)

func (t PronounType) String() string { return string(t) }

// categoryValues maps each category to its enumerated values in canonical
// order. Bit i of a category's mask corresponds to index i here; this
// assignment is fixed and shared across the whole system.
var categoryValues = map[FeatureCategory][]string{
	CategoryCase:   {string(CaseNominative), string(CaseGenitive), string(CaseAccusative), string(CaseVocative)},
	CategoryGender: {string(GenderMasculine), string(GenderFeminine), string(GenderNeuter)},
	CategoryNumber: {string(NumberSingular), string(NumberPlural)},
	CategoryTense:  {string(TensePresent), string(TensePast), string(TenseFuture)},
	CategoryVoice:  {string(VoiceActive), string(VoicePassive)},
	CategoryMood:   {string(MoodIndicative), string(MoodImperative)},
	CategoryPerson: {string(PersonFirst), string(PersonSecond), string(PersonThird)},
	CategoryType: {
		string(PronounPersonalStrong), string(PronounPersonalWeak),
		string(PronounDemonstrative), string(PronounInterrogative),
		string(PronounPossessive), string(PronounRelative), string(PronounIndefinite),
	},
}

// CategoryValues returns the enumerated values of a category in canonical
// order. The returned slice must not be modified.
func CategoryValues(c FeatureCategory) []string {
	return categoryValues[c]
}

// IsCategoryValue reports whether value is one of the enumerated values
// of the given category.
func IsCategoryValue(c FeatureCategory, value string) bool {
	for _, v := range categoryValues[c] {
		if v == value {
			return true
		}
	}
	return false
}
