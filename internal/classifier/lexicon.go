package classifier

import (
	"fmt"
	"os"
	"unicode"

	"insight-srv/pkg/util"

	"gopkg.in/yaml.v3"
)

// EmojiRanges covers emoticons, symbols and pictographs, transport and map symbols, and regional indicator flags.
var EmojiRanges = &unicode.RangeTable{
	R32: []unicode.Range32{
		{Lo: 0x1F1E0, Hi: 0x1F1FF, Stride: 1},
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1},
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1},
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1},
	},
}

// DefaultLexicon returns the built-in term lists.
func DefaultLexicon() Lexicon {
	return NewLexicon(Lexicon{
		SpamKeywords: []string{
			"subscribe", "follow me", "check out my channel", "click here",
			"free money", "earn money", "work from home", "make money online",
			"winner", "congratulations", "you won", "claim now",
		},
		PositiveWords: []string{
			"good", "great", "awesome", "amazing", "love",
			"excellent", "fantastic", "wonderful", "best", "perfect",
		},
		NegativeWords: []string{
			"bad", "terrible", "awful", "hate", "worst",
			"horrible", "disgusting", "stupid", "boring", "trash",
		},
		EmotionalWords: []string{
			"love", "hate", "amazing", "terrible", "excited", "angry", "happy", "sad",
		},
	})
}

// NewLexicon returns a normalized copy of l: terms are lowercased and trimmed,
// and blanks and duplicates are dropped.
func NewLexicon(l Lexicon) Lexicon {
	return Lexicon{
		SpamKeywords:   util.NormalizeTerms(l.SpamKeywords),
		PositiveWords:  util.NormalizeTerms(l.PositiveWords),
		NegativeWords:  util.NormalizeTerms(l.NegativeWords),
		EmotionalWords: util.NormalizeTerms(l.EmotionalWords),
	}
}

// LoadLexicon reads a YAML lexicon from path. Lists missing from the file keep their default terms.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("%w: %w", ErrLexiconRead, err)
	}
	return ParseLexicon(data)
}

// LexiconFromPath loads path, or returns the built-in lexicon when path is empty.
func LexiconFromPath(path string) (Lexicon, error) {
	if path == "" {
		return DefaultLexicon(), nil
	}
	return LoadLexicon(path)
}

// ParseLexicon decodes a YAML lexicon. See LoadLexicon.
func ParseLexicon(data []byte) (Lexicon, error) {
	var l Lexicon
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Lexicon{}, fmt.Errorf("%w: %w", ErrLexiconParse, err)
	}

	def := DefaultLexicon()
	if l.SpamKeywords == nil {
		l.SpamKeywords = def.SpamKeywords
	}
	if l.PositiveWords == nil {
		l.PositiveWords = def.PositiveWords
	}
	if l.NegativeWords == nil {
		l.NegativeWords = def.NegativeWords
	}
	if l.EmotionalWords == nil {
		l.EmotionalWords = def.EmotionalWords
	}
	return NewLexicon(l), nil
}
