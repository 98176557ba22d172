package domain

// Mask is a per-category bitmask over enumerated feature values. Bit i
// corresponds to CategoryValues(category)[i].
type Mask uint16

// BitOf returns the mask bit for a value within its category. The second
// return is false when the value is not enumerated for the category.
func BitOf(c FeatureCategory, value string) (Mask, bool) {
	for i, v := range categoryValues[c] {
		if v == value {
			return 1 << i, true
		}
	}
	return 0, false
}

// Has reports whether the bit for value is set.
func (m Mask) Has(c FeatureCategory, value string) bool {
	bit, ok := BitOf(c, value)
	return ok && m&bit != 0
}

// FeatureMasks records, per feature category, which enumerated values a
// word's inflection table supports. It is a cache derived purely from the
// word's forms; recomputation must reproduce it bit for bit.
type FeatureMasks struct {
	Case   Mask
	Gender Mask
	Number Mask
	Tense  Mask
	Voice  Mask
	Mood   Mask
	Person Mask
}

// Get returns the mask for a category. Unknown categories (including
// "type", which is a word attribute rather than a forms level) return 0.
func (fm FeatureMasks) Get(c FeatureCategory) Mask {
	switch c {
	case CategoryCase:
		return fm.Case
	case CategoryGender:
		return fm.Gender
	case CategoryNumber:
		return fm.Number
	case CategoryTense:
		return fm.Tense
	case CategoryVoice:
		return fm.Voice
	case CategoryMood:
		return fm.Mood
	case CategoryPerson:
		return fm.Person
	}
	return 0
}

func (fm *FeatureMasks) set(c FeatureCategory, bit Mask) {
	switch c {
	case CategoryCase:
		fm.Case |= bit
	case CategoryGender:
		fm.Gender |= bit
	case CategoryNumber:
		fm.Number |= bit
	case CategoryTense:
		fm.Tense |= bit
	case CategoryVoice:
		fm.Voice |= bit
	case CategoryMood:
		fm.Mood |= bit
	case CategoryPerson:
		fm.Person |= bit
	}
}

// Supports reports whether the word's forms cover the given value of the
// given category.
func (fm FeatureMasks) Supports(c FeatureCategory, value string) bool {
	return fm.Get(c).Has(c, value)
}

// formPaths declares, per part of speech, the feature category found at
// each nesting depth of the forms structure. One generic traversal
// consumes these descriptors instead of a bespoke walk per part of speech.
var formPaths = map[PartOfSpeech][]FeatureCategory{
	PartOfSpeechNoun:      {CategoryGender, CategoryNumber, CategoryCase},
	PartOfSpeechAdjective: {CategoryGender, CategoryNumber, CategoryCase},
	PartOfSpeechArticle:   {CategoryGender, CategoryNumber, CategoryCase},
	PartOfSpeechPronoun:   {CategoryGender, CategoryNumber, CategoryCase},
	PartOfSpeechVerb:      {CategoryTense, CategoryVoice, CategoryMood, CategoryNumber, CategoryPerson},
}

// FormPath returns the per-part-of-speech traversal path, or nil for
// invariable parts of speech.
func FormPath(pos PartOfSpeech) []FeatureCategory {
	return formPaths[pos]
}

// ComputeMasks derives FeatureMasks from a word's forms by walking every
// branch and accumulating the keys observed at each category's nesting
// depth. Keys that are not enumerated values of the expected category
// contribute no bits. The result is independent of traversal order.
func ComputeMasks(pos PartOfSpeech, forms *FormNode) FeatureMasks {
	var fm FeatureMasks
	path := formPaths[pos]
	if path == nil || forms == nil {
		return fm
	}
	collectMasks(forms, path, 0, &fm)
	return fm
}

func collectMasks(node *FormNode, path []FeatureCategory, depth int, fm *FeatureMasks) {
	if node == nil || node.IsLeaf() || depth >= len(path) {
		return
	}
	cat := path[depth]
	for key, child := range node.Children {
		if child.IsEmpty() {
			continue
		}
		if bit, ok := BitOf(cat, key); ok {
			fm.set(cat, bit)
		}
		collectMasks(child, path, depth+1, fm)
	}
}
