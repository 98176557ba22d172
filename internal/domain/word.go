package domain

import (
	"github.com/google/uuid"
)

// Word is one lexicon entry: a lemma with its full inflection table,
// translations, and the derived feature masks. Pronoun-only attributes
// (type, inherent person) live on the word itself because they are
// properties of the lemma, not levels of the forms structure.
type Word struct {
	ID           uuid.UUID
	POS          PartOfSpeech
	Lemma        string
	Translations []string
	Forms        *FormNode
	Masks        FeatureMasks

	PronounType   *PronounType
	PronounPerson *Person
}

// RecomputeMasks refreshes the cached masks from the forms. The store
// must call this whenever a word's forms are edited.
func (w *Word) RecomputeMasks() {
	w.Masks = ComputeMasks(w.POS, w.Forms)
}

// FormsAt returns the surface forms matching a concrete feature
// assignment by walking the part-of-speech path descriptor. The mood
// level defaults to indicative unless the assignment names one. A level
// whose category is absent from the assignment is crossed only when the
// node has a single child (the form is unambiguous); otherwise lookup
// fails. Invariable words return their single leaf regardless of
// features. Returns nil when the requested branch does not exist.
func (w *Word) FormsAt(features map[FeatureCategory]string) []string {
	if w.Forms == nil {
		return nil
	}
	if w.POS.IsInvariable() {
		return w.Forms.Surface
	}

	node := w.Forms
	for _, cat := range formPaths[w.POS] {
		key, ok := features[cat]
		if !ok && cat == CategoryMood {
			key, ok = string(MoodIndicative), true
		}
		if ok {
			node = node.At(key)
		} else if len(node.Children) == 1 {
			for _, only := range node.Children {
				node = only
			}
		} else {
			return nil
		}
		if node == nil {
			return nil
		}
	}
	if !node.IsLeaf() {
		return nil
	}
	return node.Surface
}
