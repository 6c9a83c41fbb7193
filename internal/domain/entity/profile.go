package entity

import (
	"fmt"
	"sort"
)

// Profile is one deployment variant of the relay: its persona and sampling defaults.
type Profile struct {
	Name               string
	SystemPrompt       string
	DefaultModel       string
	DefaultTemperature float64
	MaxTokens          int  // 0 means the provider default
	Routed             bool // classify before dispatching
	ReportIntent       bool // include "intent" in responses
}

const (
	ProfileProfessor = "professor"
	ProfileProxy     = "proxy"
	ProfileGuide     = "guide"
)

var profiles = map[string]Profile{
	ProfileProfessor: {
		Name:               ProfileProfessor,
		SystemPrompt:       "You are a programming professor, Your name is Jaehoon, 25 years old",
		DefaultModel:       "gpt-4o-mini",
		DefaultTemperature: 1.0,
		Routed:             true,
		ReportIntent:       true,
	},
	ProfileProxy: {
		Name:               ProfileProxy,
		SystemPrompt:       "You are a programming professor. Your name is Jaehoon, 25 years old.",
		DefaultModel:       "gpt-4o-mini",
		DefaultTemperature: 0.7,
		Routed:             true,
		ReportIntent:       true,
	},
	ProfileGuide: {
		Name:               ProfileGuide,
		SystemPrompt:       "You are a friendly AR guide chatbot.",
		DefaultModel:       "gpt-4.1-mini",
		DefaultTemperature: 0.7,
		MaxTokens:          256,
	},
}

func LookupProfile(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q", name)
	}
	return p, nil
}

// Profiles returns the built-in profiles sorted by name.
func Profiles() []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
