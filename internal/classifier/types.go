package classifier

import "insight-srv/internal/model"

// Classification - Result of labelling one piece of text
type Classification struct {
	IsSpam       bool
	Sentiment    model.Sentiment
	EmotionScore float64
}

// BatchOutput - Per-text results plus bucket counts
type BatchOutput struct {
	Results  []Classification
	Total    int
	Positive int
	Negative int
	Neutral  int
	Spam     int
}

// Lexicon - Term lists driving the heuristics.
// Build one with DefaultLexicon, LoadLexicon or NewLexicon; the lists are normalized and
// copied so a Lexicon can be shared safely.
type Lexicon struct {
	SpamKeywords   []string `yaml:"spam_keywords"`
	PositiveWords  []string `yaml:"positive_words"`
	NegativeWords  []string `yaml:"negative_words"`
	EmotionalWords []string `yaml:"emotional_words"`
}

// Config - Spam thresholds
type Config struct {
	// MaxEmoji is the largest emoji count that is still not spam.
	MaxEmoji int
	// CapsRatio is the share of characters above which uppercase text is spam.
	CapsRatio float64
}

// DefaultConfig returns the thresholds used in production.
func DefaultConfig() Config {
	return Config{
		MaxEmoji:  5,
		CapsRatio: 0.5,
	}
}
