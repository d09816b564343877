package consumer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"insight-srv/internal/classifier"
	"insight-srv/pkg/log"
	"insight-srv/pkg/youtube"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGroup struct {
	errs     chan error
	consumed atomic.Int32
	closed   atomic.Bool
}

func newStubGroup() *stubGroup {
	return &stubGroup{errs: make(chan error)}
}

func (g *stubGroup) ConsumeWithContext(ctx context.Context, _ []string, _ sarama.ConsumerGroupHandler) error {
	g.consumed.Add(1)
	<-ctx.Done()
	return nil
}

func (g *stubGroup) Close() error {
	if g.closed.CompareAndSwap(false, true) {
		close(g.errs)
	}
	return nil
}

func (g *stubGroup) Errors() <-chan error { return g.errs }

type stubProducer struct{}

func (stubProducer) Publish([]byte, []byte) error              { return nil }
func (stubProducer) PublishEvent(string, []byte, []byte) error { return nil }
func (stubProducer) Close() error                              { return nil }
func (stubProducer) HealthCheck() error                        { return nil }

type stubYouTube struct{}

func (stubYouTube) GetVideo(context.Context, string, string) (youtube.Video, error) {
	return youtube.Video{}, youtube.ErrNotFound
}

func (stubYouTube) ListComments(context.Context, string, string, int) ([]youtube.Comment, error) {
	return nil, nil
}

func validConfig(group *stubGroup) Config {
	return Config{
		Logger:        log.NewNop(),
		RequestTopic:  "insight.analysis.requested",
		MaxComments:   50,
		Lexicon:       classifier.DefaultLexicon(),
		ConsumerGroup: group,
		KafkaProducer: stubProducer{},
		YouTubeClient: stubYouTube{},
	}
}

func TestNewValidates(t *testing.T) {
	tcs := map[string]func(*Config){
		"missing logger":   func(c *Config) { c.Logger = nil },
		"missing topic":    func(c *Config) { c.RequestTopic = "" },
		"missing group":    func(c *Config) { c.ConsumerGroup = nil },
		"missing producer": func(c *Config) { c.KafkaProducer = nil },
		"missing youtube":  func(c *Config) { c.YouTubeClient = nil },
	}

	for name, mutate := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig(newStubGroup())
			mutate(&cfg)
			_, err := New(cfg)
			assert.Error(t, err)
		})
	}
}

func TestRunConsumesUntilCancelled(t *testing.T) {
	group := newStubGroup()
	srv, err := New(validConfig(group))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool { return group.consumed.Load() > 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.True(t, group.closed.Load())
}
