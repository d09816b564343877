package usecase

import (
	"strings"
	"testing"

	"insight-srv/internal/classifier"
	"insight-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUC() classifier.UseCase {
	return New(classifier.DefaultLexicon(), classifier.DefaultConfig())
}

func TestClassifySpam(t *testing.T) {
	uc := newUC()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"keyword and emoji", "SUBSCRIBE NOW!!! 🎉🎉🎉🎉🎉🎉", true},
		{"genuine comment", "I really enjoyed this explanation, thanks!", false},
		{"keyword only", "please subscribe to my channel", true},
		{"keyword case insensitive", "Click Here for prizes", true},
		{"six emoji", "nice 😀😀😀😀😀😀", true},
		{"five emoji", "nice 😀😀😀😀😀", false},
		{"shouting", "THIS IS THE BEST VIDEO EVER", true},
		{"half caps is not spam", "ABcd", false},
		{"empty", "", false},
		{"non letters only", "1234 !!!", false},
		{"punctuation dilutes caps", "WOW!!!!!!", false},
		{"emoji dilute caps", "NO WAY 😀😀😀😀", false},
		{"caps over whole text", "WOW!!", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, uc.ClassifySpam(tt.text))
		})
	}
}

func TestClassifySentiment(t *testing.T) {
	uc := newUC()

	tests := []struct {
		name string
		text string
		want model.Sentiment
	}{
		{"no keywords", "the video was fine", model.SentimentNeutral},
		{"positive", "Great video, I love it", model.SentimentPositive},
		{"negative", "boring and awful", model.SentimentNegative},
		{"tie", "good but bad", model.SentimentNeutral},
		{"substring match", "goodness me", model.SentimentPositive},
		{"term counted once", "bad bad bad but great and awesome", model.SentimentPositive},
		{"empty", "", model.SentimentNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, uc.ClassifySentiment(tt.text))
		})
	}
}

func TestEmotionScore(t *testing.T) {
	uc := newUC()

	assert.Equal(t, 0.0, uc.EmotionScore(""))
	assert.Equal(t, 0.0, uc.EmotionScore("   "))
	assert.Equal(t, 0.0, uc.EmotionScore("a calm and measured review"))
	// one emotional term in 20 words: 1/20*10 = 0.5
	text := "happy " + strings.Repeat("word ", 19)
	assert.InDelta(t, 0.5, uc.EmotionScore(text), 1e-9)
	// capped at 1
	assert.Equal(t, 1.0, uc.EmotionScore("so happy and excited"))
}

func TestClassifyIsIdempotent(t *testing.T) {
	uc := newUC()
	text := "Amazing!!! subscribe 🎉"
	assert.Equal(t, uc.Classify(text), uc.Classify(text))
}

func TestSpamAndSentimentAreIndependent(t *testing.T) {
	got := newUC().Classify("Congratulations, this is the best channel")
	assert.True(t, got.IsSpam)
	assert.Equal(t, model.SentimentPositive, got.Sentiment)
}

func TestClassifyBatch(t *testing.T) {
	out := newUC().ClassifyBatch([]string{"great", "terrible", "ok", "click here"})

	require.Len(t, out.Results, 4)
	assert.Equal(t, 4, out.Total)
	assert.Equal(t, 1, out.Positive)
	assert.Equal(t, 1, out.Negative)
	assert.Equal(t, 2, out.Neutral)
	assert.Equal(t, 1, out.Spam)
	assert.Equal(t, out.Total, out.Positive+out.Negative+out.Neutral)
}

func TestClassifyCommentsReturnsCopies(t *testing.T) {
	in := []model.Comment{{ID: "1", Text: "I love this"}, {ID: "2", Text: "worst ever"}}
	out := newUC().ClassifyComments(in)

	require.Len(t, out, 2)
	assert.Equal(t, model.SentimentPositive, out[0].Sentiment)
	assert.Equal(t, model.SentimentNegative, out[1].Sentiment)
	assert.Empty(t, in[0].Sentiment)
}

func TestCustomLexiconAndThresholds(t *testing.T) {
	uc := New(classifier.Lexicon{PositiveWords: []string{"Rad"}}, classifier.Config{MaxEmoji: 1, CapsRatio: 0.9})

	assert.Equal(t, model.SentimentPositive, uc.ClassifySentiment("totally RAD"))
	assert.True(t, uc.ClassifySpam("😀😀"))
	assert.False(t, uc.ClassifySpam("LOUD but fine"))
}
