package kafka

import "time"

// ComparisonCompletedMessage - Payload of comparison.completed
type ComparisonCompletedMessage struct {
	ComparisonID string    `json:"comparison_id"`
	Video1ID     string    `json:"video1_id"`
	Video2ID     string    `json:"video2_id"`
	Score1       float64   `json:"score1"`
	Score2       float64   `json:"score2"`
	Winner       string    `json:"winner"`
	Reason       string    `json:"reason"`
	ComparedAt   time.Time `json:"compared_at"`
}
