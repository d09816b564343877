package consumer

import (
	"context"
	"errors"
	"testing"

	"insight-srv/internal/analytics"
	"insight-srv/pkg/log"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	inputs []analytics.AnalyzeInput
	err    error
}

func (f *fakeUseCase) AnalyzeVideo(ctx context.Context, in analytics.AnalyzeInput) (analytics.AnalyzeOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return analytics.AnalyzeOutput{}, f.err
	}
	return analytics.AnalyzeOutput{ID: in.RequestID}, nil
}

type failedEvent struct {
	requestID string
	url       string
	cause     error
}

type fakePublisher struct {
	failed []failedEvent
	err    error
}

func (p *fakePublisher) PublishCompleted(context.Context, analytics.AnalyzeOutput) error {
	return nil
}

func (p *fakePublisher) PublishFailed(_ context.Context, requestID, url string, cause error) error {
	p.failed = append(p.failed, failedEvent{requestID, url, cause})
	return p.err
}

// fakeGroup closes its error channel on Close, as sarama does.
type fakeGroup struct {
	closed bool
	errs   chan error
}

func newFakeGroup() *fakeGroup {
	return &fakeGroup{errs: make(chan error)}
}

func (g *fakeGroup) ConsumeWithContext(ctx context.Context, _ []string, _ sarama.ConsumerGroupHandler) error {
	<-ctx.Done()
	return nil
}

func (g *fakeGroup) Close() error {
	if !g.closed {
		close(g.errs)
	}
	g.closed = true
	return nil
}

func (g *fakeGroup) Errors() <-chan error {
	return g.errs
}

type fakeSession struct {
	sarama.ConsumerGroupSession
	marked []int64
}

func (s *fakeSession) Context() context.Context { return context.Background() }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	ch chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.ch }

func newConsumer(t *testing.T, uc analytics.UseCase, pub analytics.Publisher) *consumer {
	t.Helper()
	c, err := New(Config{
		Logger:    log.NewNop(),
		Group:     newFakeGroup(),
		Topic:     "insight.analysis.requested",
		UseCase:   uc,
		Publisher: pub,
	})
	require.NoError(t, err)
	return c.(*consumer)
}

func message(offset int64, value string) *sarama.ConsumerMessage {
	return &sarama.ConsumerMessage{Offset: offset, Value: []byte(value)}
}

func TestNewValidates(t *testing.T) {
	_, err := New(Config{Logger: log.NewNop(), UseCase: &fakeUseCase{}, Publisher: &fakePublisher{}, Topic: "t"})
	assert.ErrorIs(t, err, ErrConsumerGroupNotFound)

	_, err = New(Config{Logger: log.NewNop(), UseCase: &fakeUseCase{}, Group: newFakeGroup(), Topic: "t"})
	assert.Error(t, err)
}

func TestHandleAnalysisRequested(t *testing.T) {
	uc := &fakeUseCase{}
	c := newConsumer(t, uc, &fakePublisher{})

	err := c.handleAnalysisRequestedMessage(context.Background(),
		message(1, `{"request_id":"r1","video_url":"https://youtu.be/abc","max_comments":20}`))
	require.NoError(t, err)
	require.Len(t, uc.inputs, 1)
	assert.Equal(t, analytics.AnalyzeInput{RequestID: "r1", URL: "https://youtu.be/abc", MaxComments: 20}, uc.inputs[0])
}

func TestHandleAnalysisRequestedGeneratesID(t *testing.T) {
	uc := &fakeUseCase{}
	c := newConsumer(t, uc, &fakePublisher{})

	require.NoError(t, c.handleAnalysisRequestedMessage(context.Background(), message(1, `{"video_url":"https://youtu.be/abc"}`)))
	require.Len(t, uc.inputs, 1)
	assert.NotEmpty(t, uc.inputs[0].RequestID)
}

func TestHandleAnalysisRequestedSkipsInvalid(t *testing.T) {
	uc := &fakeUseCase{}
	c := newConsumer(t, uc, &fakePublisher{})

	assert.NoError(t, c.handleAnalysisRequestedMessage(context.Background(), message(1, `not json`)))
	assert.NoError(t, c.handleAnalysisRequestedMessage(context.Background(), message(2, `{"request_id":"r"}`)))
	assert.Empty(t, uc.inputs)
}

func TestHandleAnalysisRequestedPublishesFailure(t *testing.T) {
	cause := analytics.ErrInvalidURL
	pub := &fakePublisher{}
	c := newConsumer(t, &fakeUseCase{err: cause}, pub)

	require.NoError(t, c.handleAnalysisRequestedMessage(context.Background(), message(1, `{"request_id":"r1","video_url":"bad"}`)))
	require.Len(t, pub.failed, 1)
	assert.Equal(t, "r1", pub.failed[0].requestID)
	assert.Equal(t, "bad", pub.failed[0].url)
	assert.ErrorIs(t, pub.failed[0].cause, cause)
}

func TestHandleAnalysisRequestedFailureNotAnnounced(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	c := newConsumer(t, &fakeUseCase{err: analytics.ErrDataUnavailable}, pub)

	err := c.handleAnalysisRequestedMessage(context.Background(), message(1, `{"request_id":"r1","video_url":"https://youtu.be/abc"}`))
	assert.Error(t, err)
}

func TestConsumeClaimMarksHandledMessages(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	uc := &fakeUseCase{}
	c := newConsumer(t, uc, pub)
	h := &analysisRequestedHandler{consumer: c}

	ch := make(chan *sarama.ConsumerMessage, 2)
	ch <- message(1, `{"request_id":"r1","video_url":"https://youtu.be/abc"}`)
	ch <- message(2, `garbage`)
	close(ch)

	sess := &fakeSession{}
	require.NoError(t, h.ConsumeClaim(sess, &fakeClaim{ch: ch}))
	assert.Equal(t, []int64{1, 2}, sess.marked)
}

func TestConsumeAndClose(t *testing.T) {
	group := newFakeGroup()
	c, err := New(Config{
		Logger:    log.NewNop(),
		Group:     group,
		Topic:     "t",
		UseCase:   &fakeUseCase{},
		Publisher: &fakePublisher{},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, c.ConsumeAnalysisRequests(ctx))
	cancel()

	require.NoError(t, c.Close())
	assert.True(t, group.closed)
	_, ok := <-group.Errors()
	assert.False(t, ok)
}
