package usecase

import (
	"math"
	"strings"
	"unicode"

	"insight-srv/internal/classifier"
	"insight-srv/internal/model"
)

func (uc *implUseCase) ClassifySpam(text string) bool {
	lower := strings.ToLower(text)
	if countPresent(lower, uc.lex.SpamKeywords) > 0 {
		return true
	}

	var emoji, upper, total int
	for _, r := range text {
		total++
		if unicode.Is(classifier.EmojiRanges, r) {
			emoji++
		}
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if emoji > uc.cfg.MaxEmoji {
		return true
	}
	return float64(upper) > float64(total)*uc.cfg.CapsRatio
}

func (uc *implUseCase) ClassifySentiment(text string) model.Sentiment {
	lower := strings.ToLower(text)
	pos := countPresent(lower, uc.lex.PositiveWords)
	neg := countPresent(lower, uc.lex.NegativeWords)

	switch {
	case pos > neg:
		return model.SentimentPositive
	case neg > pos:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

func (uc *implUseCase) EmotionScore(text string) float64 {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	hits := countPresent(strings.ToLower(text), uc.lex.EmotionalWords)
	return math.Min(float64(hits)/float64(words)*10, 1)
}

func (uc *implUseCase) Classify(text string) classifier.Classification {
	return classifier.Classification{
		IsSpam:       uc.ClassifySpam(text),
		Sentiment:    uc.ClassifySentiment(text),
		EmotionScore: uc.EmotionScore(text),
	}
}

func (uc *implUseCase) ClassifyBatch(texts []string) classifier.BatchOutput {
	out := classifier.BatchOutput{
		Results: make([]classifier.Classification, len(texts)),
		Total:   len(texts),
	}
	for i, t := range texts {
		c := uc.Classify(t)
		out.Results[i] = c
		switch c.Sentiment {
		case model.SentimentPositive:
			out.Positive++
		case model.SentimentNegative:
			out.Negative++
		default:
			out.Neutral++
		}
		if c.IsSpam {
			out.Spam++
		}
	}
	return out
}

func (uc *implUseCase) ClassifyComments(comments []model.Comment) []model.Comment {
	out := make([]model.Comment, len(comments))
	for i, c := range comments {
		res := uc.Classify(c.Text)
		c.IsSpam = res.IsSpam
		c.Sentiment = res.Sentiment
		c.EmotionScore = res.EmotionScore
		out[i] = c
	}
	return out
}

// countPresent counts the terms that occur in lower. Each term counts once.
func countPresent(lower string, terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(lower, t) {
			n++
		}
	}
	return n
}
