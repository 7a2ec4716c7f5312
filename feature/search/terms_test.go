package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"Simple", "Lightning Bolt", []string{"lightning", "bolt"}},
		{"Punctuation", "Circle of Protection: Red", []string{"circle", "of", "protection", "red"}},
		{"DropsShort", "Ajani, Mentor of Heroes", []string{"ajani", "mentor", "of", "heroes"}},
		{"Apostrophe", "Gaea's Cradle", []string{"gaea", "cradle"}},
		{"SingleChars", "X Y Zz", []string{"zz"}},
		{"Empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrefixes(t *testing.T) {
	t.Run("ShortName", func(t *testing.T) {
		got := Prefixes("Bolt")
		assert.Equal(t, []string{"b", "bo", "bol", "bolt"}, got)
	})

	t.Run("CappedAtThirty", func(t *testing.T) {
		long := strings.Repeat("a", 45)
		got := Prefixes(long)
		assert.Len(t, got, 30)
		assert.Equal(t, strings.Repeat("a", 30), got[29])
	})

	t.Run("LowercasesInput", func(t *testing.T) {
		got := Prefixes("BoLT")
		assert.Equal(t, "bolt", got[3])
	})
}

func TestNGrams(t *testing.T) {
	t.Run("StandardWindow", func(t *testing.T) {
		got := NGrams("bolt")
		assert.Equal(t, []string{"bol", "olt"}, got)
	})

	t.Run("ExactCount", func(t *testing.T) {
		// A name of length n yields n-2 grams.
		got := NGrams("lightning")
		assert.Len(t, got, len("lightning")-2)
		assert.Equal(t, "lig", got[0])
		assert.Equal(t, "ing", got[len(got)-1])
	})

	t.Run("ShortNameIsSingleGram", func(t *testing.T) {
		assert.Equal(t, []string{"ox"}, NGrams("Ox"))
		assert.Equal(t, []string{"x"}, NGrams("X"))
	})
}

func TestMetaphone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Bolt", "Bolt", "BLT"},
		{"Lightning", "Lightning", "LJTMJ"},
		{"CaseInvariant", "BOLT", "BLT"},
		{"VowelsOnly", "Aeiou", ""},
		{"NearSilent", "why", ""},
		{"RepeatCollapse", "Assassin", "SM"},
		{"DoubleLetters", "bubble", "BL"},
		{"XExpands", "Xerox", "KSRKS"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Metaphone(tt.in))
		})
	}
}

func TestMetaphoneCaseInvariance(t *testing.T) {
	names := []string{"Lightning Bolt", "Jace, the Mind Sculptor", "Snapcaster Mage"}
	for _, name := range names {
		assert.Equal(t, Metaphone(strings.ToLower(name)), Metaphone(strings.ToUpper(name)), name)
	}
}

func TestRarityWeight(t *testing.T) {
	assert.Equal(t, 10.0, RarityWeight("mythic"))
	assert.Equal(t, 8.0, RarityWeight("rare"))
	assert.Equal(t, 5.0, RarityWeight("uncommon"))
	assert.Equal(t, 3.0, RarityWeight("common"))
	assert.Equal(t, 1.0, RarityWeight("special"))
	assert.Equal(t, 1.0, RarityWeight(""))
}
