package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ProfileConfig represents the structure of the optional profile.yaml file.
// Fields left empty keep the built-in profile values.
type ProfileConfig struct {
	Name      string          `yaml:"name"`
	Role      string          `yaml:"role"`
	Company   string          `yaml:"company"`
	Education EducationConfig `yaml:"education"`
	Focus     []string        `yaml:"focus,omitempty"`
	Links     LinksConfig     `yaml:"links"`
}

// EducationConfig defines the education block of the profile.
type EducationConfig struct {
	School     string `yaml:"school"`
	Graduation string `yaml:"graduation"` // Free text, e.g. "May 2025"
}

// LinksConfig defines the public links referenced in replies.
type LinksConfig struct {
	DevLibrary string              `yaml:"dev_library"`
	Blogs      []string            `yaml:"blogs,omitempty"`
	GitHub     string              `yaml:"github"`
	Projects   ProjectsLinksConfig `yaml:"projects"`
}

// ProjectsLinksConfig defines the showcased project links.
type ProjectsLinksConfig struct {
	CO2        string `yaml:"co2"`
	Kanban     string `yaml:"kanban"`
	KanbanLive string `yaml:"kanban_live"`
}

// LoadProfileConfig loads the profile override file.
// Path is determined by PROFILE_FILE env var, defaulting to "profile.yaml".
// Returns nil without error if the file doesn't exist.
func LoadProfileConfig() (*ProfileConfig, error) {
	return loadProfileConfig(getEnv("PROFILE_FILE", "profile.yaml"))
}

func loadProfileConfig(path string) (*ProfileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Profile file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg ProfileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
