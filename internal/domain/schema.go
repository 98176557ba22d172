package domain

// FeatureSchema declares which feature categories a part of speech
// requires and which it optionally accepts, in declared order.
type FeatureSchema struct {
	Required []FeatureCategory
	Optional []FeatureCategory
}

// schemas is the fixed per-part-of-speech feature schema. Invariable
// parts of speech accept no features at all.
var schemas = map[PartOfSpeech]FeatureSchema{
	PartOfSpeechNoun:      {Required: []FeatureCategory{CategoryCase, CategoryGender, CategoryNumber}},
	PartOfSpeechAdjective: {Required: []FeatureCategory{CategoryCase, CategoryGender, CategoryNumber}},
	PartOfSpeechArticle:   {Required: []FeatureCategory{CategoryCase, CategoryGender, CategoryNumber}},
	PartOfSpeechVerb:      {Required: []FeatureCategory{CategoryTense, CategoryVoice, CategoryPerson, CategoryNumber}},
	PartOfSpeechPronoun: {
		Required: []FeatureCategory{CategoryType},
		Optional: []FeatureCategory{CategoryCase, CategoryPerson, CategoryNumber, CategoryGender},
	},
	PartOfSpeechAdverb:      {},
	PartOfSpeechPreposition: {},
	PartOfSpeechConjunction: {},
}

// SchemaFor returns the feature schema of a part of speech.
func SchemaFor(pos PartOfSpeech) FeatureSchema {
	return schemas[pos]
}

// Categories returns the schema's categories, required first, in
// declared order.
func (s FeatureSchema) Categories() []FeatureCategory {
	out := make([]FeatureCategory, 0, len(s.Required)+len(s.Optional))
	out = append(out, s.Required...)
	return append(out, s.Optional...)
}

// Accepts reports whether the schema lists the category as required or
// optional.
func (s FeatureSchema) Accepts(c FeatureCategory) bool {
	for _, r := range s.Required {
		if r == c {
			return true
		}
	}
	for _, o := range s.Optional {
		if o == c {
			return true
		}
	}
	return false
}

// MissingRequired returns the required categories absent from fs, in
// declared order.
func (s FeatureSchema) MissingRequired(fs FeatureSet) []FeatureCategory {
	var missing []FeatureCategory
	for _, r := range s.Required {
		if v, ok := fs[r]; !ok || v.IsZero() {
			missing = append(missing, r)
		}
	}
	return missing
}
