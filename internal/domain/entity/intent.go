package entity

import "github.com/samber/lo"

type Intent string

const (
	IntentProfessorLecture   Intent = "professor_lecture"
	IntentMajorSupport       Intent = "Major_support"
	IntentScholarshipSupport Intent = "Scholarship_support"

	// FallbackIntent is what any unrecognised or unavailable classification resolves to.
	FallbackIntent = IntentProfessorLecture
)

// KnownIntents is the closed set, in the order the classification prompt lists them.
var KnownIntents = []Intent{
	IntentProfessorLecture,
	IntentMajorSupport,
	IntentScholarshipSupport,
}

// ParseIntent matches token exactly against KnownIntents. Casing is significant.
func ParseIntent(token string) (Intent, bool) {
	intent := Intent(token)
	if lo.Contains(KnownIntents, intent) {
		return intent, true
	}
	return "", false
}

// ResolveIntent applies the fallback policy to a classifier token.
func ResolveIntent(token string) Intent {
	if intent, ok := ParseIntent(token); ok {
		return intent
	}
	return FallbackIntent
}

func (i Intent) String() string { return string(i) }
