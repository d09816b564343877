package producer

import (
	"insight-srv/internal/comparison"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
)

// Producer publishes comparison events
type Producer interface {
	comparison.Publisher
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new comparison producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
