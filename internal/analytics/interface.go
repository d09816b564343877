package analytics

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// AnalyzeVideo fetches one video with its comments, classifies the comments and
	// computes engagement metrics and insights.
	AnalyzeVideo(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
}

// Publisher announces analysis outcomes.
//
//go:generate mockery --name Publisher
type Publisher interface {
	PublishCompleted(ctx context.Context, out AnalyzeOutput) error
	PublishFailed(ctx context.Context, requestID, videoURL string, cause error) error
}
