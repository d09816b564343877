package kafka

// ============================================
// Kafka Topics (defaults, overridable in config)
// ============================================

const (
	// Consumer Topics
	TopicAnalysisRequested = "insight.analysis.requested"

	// Producer Topics
	TopicInsightEvents = "insight.events"
)

// ============================================
// Consumer Group IDs
// ============================================

const (
	ConsumerGroupAnalysis = "insight-consumer-analysis"
)

// ============================================
// Event Types (event-type header on the events topic)
// ============================================

const (
	EventTypeAnalysisCompleted = "analysis.completed"
	EventTypeAnalysisFailed    = "analysis.failed"
)
