package kafka

// Event types written in the event-type header
const (
	EventTypeComparisonCompleted = "comparison.completed"
)
