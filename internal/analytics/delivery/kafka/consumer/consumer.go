package consumer

import "context"

// ConsumeAnalysisRequests starts consuming analysis requests
func (c *consumer) ConsumeAnalysisRequests(ctx context.Context) error {
	handler := &analysisRequestedHandler{
		consumer: c,
	}

	// Rejoin after every rebalance until ctx is cancelled
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := c.group.ConsumeWithContext(ctx, []string{c.topic}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range c.group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.topic)
	return nil
}
