package responder

import (
	"fmt"
	"strings"
)

// IntentID identifies a category of visitor question.
type IntentID string

// Intent identifiers, in table order. Empty and Fallback are terminal and
// never appear in the keyword table.
const (
	IntentGreeting   IntentID = "greeting"
	IntentNielsen    IntentID = "nielsen"
	IntentEducation  IntentID = "education"
	IntentCppWindows IntentID = "cpp_windows"
	IntentML         IntentID = "ml"
	IntentProjects   IntentID = "projects"
	IntentWriting    IntentID = "writing"
	IntentContact    IntentID = "contact"

	IntentEmpty    IntentID = "empty"
	IntentFallback IntentID = "fallback"
)

// Intent pairs trigger keywords with a reply rendered once from the profile.
type Intent struct {
	ID       IntentID
	Keywords []string
	Reply    string
}

// DefaultIntents builds the keyword table for p. Order matters: among equal
// scores the earlier intent wins.
func DefaultIntents(p Profile) []Intent {
	return []Intent{
		{
			ID:       IntentGreeting,
			Keywords: []string{"hi", "hello", "hey", "yo", "sup"},
			Reply: fmt.Sprintf(
				"Hi! I’m %s. Ask about my work at %s, C++/Windows experience, ML interests, projects, or writing.",
				p.Name, p.Company),
		},
		{
			ID:       IntentNielsen,
			Keywords: []string{"nielsen", "sde", "job", "work", "role", "experience", "what do you do"},
			Reply: fmt.Sprintf(
				"%s at %s. I work on production software with a focus on shipping reliable features, performance-minded C++ work, and frontend pieces when needed.",
				p.Role, p.Company),
		},
		{
			ID:       IntentEducation,
			Keywords: []string{"bits", "pilani", "college", "university", "graduate", "graduation", "degree", "education"},
			Reply: fmt.Sprintf(
				"%s graduate (%s). Strong CS fundamentals and projects across ML and frontend engineering.",
				p.Education.School, p.Education.Graduation),
		},
		{
			ID:       IntentCppWindows,
			Keywords: []string{"c++", "cpp", "windows", "win32", "visual studio", "msvc", "debug", "profil", "native"},
			Reply:    "I use C++ for performance-critical components and tooling, and I’m comfortable with Windows development workflows (debugging, profiling, multithreading, and Win32-adjacent work).",
		},
		{
			ID:       IntentML,
			Keywords: []string{"ml", "machine learning", "model", "training", "pytorch", "sklearn", "xgboost", "data", "features"},
			Reply:    "I’m an ML engineering enthusiast: data prep → feature engineering → training/evaluation → iteration. I enjoy building reproducible pipelines and measuring improvements with the right metrics.",
		},
		{
			ID:       IntentProjects,
			Keywords: []string{"project", "projects", "portfolio", "work sample", "repo", "github"},
			Reply: fmt.Sprintf(
				"Projects: CO₂ prediction model (%s) and a React Kanban board (%s) with a live demo (%s). GitHub: %s",
				p.Links.Projects.CO2, p.Links.Projects.Kanban, p.Links.Projects.KanbanLive, p.Links.GitHub),
		},
		{
			ID:       IntentWriting,
			Keywords: []string{"blog", "blogs", "writing", "article", "articles", "post", "posts", "dev library", "devlibrary"},
			Reply: fmt.Sprintf(
				"Writing: Google Dev Library author page (%s). Recent posts: %s",
				p.Links.DevLibrary, strings.Join(p.Links.Blogs, " · ")),
		},
		{
			ID:       IntentContact,
			Keywords: []string{"contact", "email", "reach", "message", "connect", "linkedin"},
			Reply: fmt.Sprintf(
				"Best way is the Contact section on this site. You can also find me on GitHub (%s) and on my Google Dev Library author page (%s).",
				p.Links.GitHub, p.Links.DevLibrary),
		},
	}
}

// validateIntents rejects tables that would break scoring: missing IDs,
// terminal IDs, duplicates, empty keyword lists or keywords that normalization
// could never match.
func validateIntents(intents []Intent) error {
	if len(intents) == 0 {
		return fmt.Errorf("%w: table is empty", ErrInvalidIntent)
	}
	seen := make(map[IntentID]struct{}, len(intents))
	for _, in := range intents {
		switch in.ID {
		case "":
			return fmt.Errorf("%w: missing id", ErrInvalidIntent)
		case IntentEmpty, IntentFallback:
			return fmt.Errorf("%w: %q is reserved", ErrInvalidIntent, in.ID)
		}
		if _, dup := seen[in.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidIntent, in.ID)
		}
		seen[in.ID] = struct{}{}

		if len(in.Keywords) == 0 {
			return fmt.Errorf("%w: %q has no keywords", ErrInvalidIntent, in.ID)
		}
		for _, kw := range in.Keywords {
			if kw == "" || kw != strings.ToLower(kw) || kw != strings.TrimSpace(kw) {
				return fmt.Errorf("%w: %q keyword %q must be non-empty, trimmed and lower-case", ErrInvalidIntent, in.ID, kw)
			}
		}
	}
	return nil
}
