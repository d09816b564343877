package consumer

import "errors"

var (
	ErrConsumerGroupNotFound = errors.New("consumer group not found")
)
