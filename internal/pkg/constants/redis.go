package constants

// Redis key formats
const (
	KeyPreferences = "commute:prefs:%s" // Format: commute:prefs:{profile}
)
