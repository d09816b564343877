package producer

import (
	"time"

	"insight-srv/internal/analytics"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
)

// Producer publishes analysis events
type Producer interface {
	analytics.Publisher
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
	clock    func() time.Time
}

// New creates a new analytics producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
		clock:    time.Now,
	}
}
