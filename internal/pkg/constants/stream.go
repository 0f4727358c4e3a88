package constants

// Live stream events
const (
	EventComparison = "comparison"
)
