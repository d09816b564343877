package classifier

import "insight-srv/internal/model"

// UseCase labels comment text. Every method is a pure function of the text and
// the injected lexicon and never fails.
//
//go:generate mockery --name UseCase
type UseCase interface {
	ClassifySpam(text string) bool
	ClassifySentiment(text string) model.Sentiment
	EmotionScore(text string) float64
	Classify(text string) Classification
	ClassifyBatch(texts []string) BatchOutput
	// ClassifyComments returns classified copies; the input slice is left untouched.
	ClassifyComments(comments []model.Comment) []model.Comment
}
