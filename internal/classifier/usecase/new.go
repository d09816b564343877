package usecase

import "insight-srv/internal/classifier"

// implUseCase - Implementation of classifier.UseCase
type implUseCase struct {
	lex classifier.Lexicon
	cfg classifier.Config
}

// New - Factory function. The lexicon is normalized and copied.
func New(lex classifier.Lexicon, cfg classifier.Config) classifier.UseCase {
	return &implUseCase{
		lex: classifier.NewLexicon(lex),
		cfg: cfg,
	}
}
