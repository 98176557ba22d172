package domain

import "testing"

func TestPartOfSpeech_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pos  PartOfSpeech
		want bool
	}{
		{PartOfSpeechNoun, true},
		{PartOfSpeechVerb, true},
		{PartOfSpeechAdjective, true},
		{PartOfSpeechArticle, true},
		{PartOfSpeechPronoun, true},
		{PartOfSpeechAdverb, true},
		{PartOfSpeechPreposition, true},
		{PartOfSpeechConjunction, true},
		{PartOfSpeechNumeral, false},
		{PartOfSpeech("INVALID"), false},
		{PartOfSpeech(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.pos), func(t *testing.T) {
			t.Parallel()
			if got := tt.pos.IsValid(); got != tt.want {
				t.Errorf("PartOfSpeech(%q).IsValid() = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestPartOfSpeech_Inflectability(t *testing.T) {
	t.Parallel()

	for _, pos := range PartsOfSpeech {
		if pos.IsInflectable() == pos.IsInvariable() {
			t.Errorf("%s: IsInflectable and IsInvariable must disagree", pos)
		}
	}
	if !PartOfSpeechNoun.IsInflectable() {
		t.Error("noun must be inflectable")
	}
	if !PartOfSpeechPreposition.IsInvariable() {
		t.Error("preposition must be invariable")
	}
}

func TestFeatureCategory_SupportsWildcard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cat  FeatureCategory
		want bool
	}{
		{CategoryGender, true},
		{CategoryNumber, true},
		{CategoryPerson, true},
		{CategoryCase, false},
		{CategoryTense, false},
		{CategoryVoice, false},
		{CategoryMood, false},
		{CategoryType, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.cat), func(t *testing.T) {
			t.Parallel()
			if got := tt.cat.SupportsWildcard(); got != tt.want {
				t.Errorf("%s.SupportsWildcard() = %v, want %v", tt.cat, got, tt.want)
			}
		})
	}
}

func TestCategoryValues_Order(t *testing.T) {
	t.Parallel()

	// Bit positions depend on this order; it must never change silently.
	caseVals := CategoryValues(CategoryCase)
	want := []string{"nominative", "genitive", "accusative", "vocative"}
	if len(caseVals) != len(want) {
		t.Fatalf("case values: got %d, want %d", len(caseVals), len(want))
	}
	for i, v := range want {
		if caseVals[i] != v {
			t.Errorf("case value[%d]: got %q, want %q", i, caseVals[i], v)
		}
	}

	if got := CategoryValues(CategoryNumber); len(got) != 2 || got[0] != "singular" || got[1] != "plural" {
		t.Errorf("number values: got %v", got)
	}
}

func TestIsCategoryValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cat   FeatureCategory
		value string
		want  bool
	}{
		{CategoryCase, "nominative", true},
		{CategoryCase, "masculine", false},
		{CategoryGender, "neuter", true},
		{CategoryTense, "past", true},
		{CategoryTense, "aorist", false},
		{CategoryType, "personal_strong", true},
		{CategoryType, "definite", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			if got := IsCategoryValue(tt.cat, tt.value); got != tt.want {
				t.Errorf("IsCategoryValue(%s, %q) = %v, want %v", tt.cat, tt.value, got, tt.want)
			}
		})
	}
}
