package responder

import "fmt"

// Suggestions is the opening state of the chat widget.
type Suggestions struct {
	Greeting string   `json:"greeting"`
	Prompts  []string `json:"prompts"`
}

// DefaultSuggestions returns the greeting and prompt chips shown before the
// visitor types anything. Every prompt resolves to a keyword intent.
func DefaultSuggestions(p Profile) Suggestions {
	return Suggestions{
		Greeting: fmt.Sprintf(
			"Hi! I can answer questions about %s’s work at %s, %s background, ML interests, and C++/Windows + frontend experience. Try a suggested prompt below.",
			firstName(p.Name), p.Company, p.Education.School),
		Prompts: []string{
			fmt.Sprintf("Tell me about your %s role", p.Company),
			"What ML projects have you done?",
			"What’s your C++/Windows experience?",
			"Show recent projects",
		},
	}
}

func firstName(name string) string {
	for i, r := range name {
		if r == ' ' {
			return name[:i]
		}
	}
	return name
}
