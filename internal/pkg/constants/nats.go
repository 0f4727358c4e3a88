package constants

// NATS Subjects
const (
	// Commute comparison
	SubjectComparisonPublished = "commute.comparison.published"

	// Session
	SubjectPreferencesSaved = "commute.preferences.saved"
)
