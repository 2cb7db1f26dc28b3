package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.IsDev() {
		t.Error("production config reports IsDev")
	}
	if cfg.ServerAddr != ":3000" {
		t.Errorf("ServerAddr = %q, want :3000", cfg.ServerAddr)
	}
	if cfg.RateLimitMax != 12 {
		t.Errorf("RateLimitMax = %d, want 12", cfg.RateLimitMax)
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Errorf("RateLimitWindow = %v, want 1m", cfg.RateLimitWindow)
	}
	if cfg.MaxBodyBytes != 20000 {
		t.Errorf("MaxBodyBytes = %d, want 20000", cfg.MaxBodyBytes)
	}
	if cfg.CORSEnabled() {
		t.Error("production config enables CORS by default")
	}
	if !cfg.MetricsEnabled {
		t.Error("MetricsEnabled should default to true")
	}
}

func TestLoadDev_Defaults(t *testing.T) {
	cfg := LoadDev()

	if !cfg.IsDev() {
		t.Error("development config does not report IsDev")
	}
	if cfg.ServerAddr != ":8787" {
		t.Errorf("ServerAddr = %q, want :8787", cfg.ServerAddr)
	}
	if cfg.RateLimitMax != 30 {
		t.Errorf("RateLimitMax = %d, want 30", cfg.RateLimitMax)
	}
	if got := cfg.AllowedOrigins(); !reflect.DeepEqual(got, []string{"*"}) {
		t.Errorf("AllowedOrigins() = %v, want [*]", got)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9999")
	t.Setenv("RATE_LIMIT_MAX", "3")
	t.Setenv("RATE_LIMIT_WINDOW", "10s")
	t.Setenv("MAX_BODY_BYTES", "512")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")

	cfg := LoadDev()

	if cfg.ServerAddr != ":9999" {
		t.Errorf("ServerAddr = %q, want :9999", cfg.ServerAddr)
	}
	if cfg.RateLimitMax != 3 {
		t.Errorf("RateLimitMax = %d, want 3", cfg.RateLimitMax)
	}
	if cfg.RateLimitWindow != 10*time.Second {
		t.Errorf("RateLimitWindow = %v, want 10s", cfg.RateLimitWindow)
	}
	if cfg.MaxBodyBytes != 512 {
		t.Errorf("MaxBodyBytes = %d, want 512", cfg.MaxBodyBytes)
	}
	if cfg.MetricsEnabled {
		t.Error("MetricsEnabled should be false")
	}
	want := []string{"https://a.example", "https://b.example"}
	if got := cfg.AllowedOrigins(); !reflect.DeepEqual(got, want) {
		t.Errorf("AllowedOrigins() = %v, want %v", got, want)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "RATE_LIMIT_MAX", value: "lots"},
		{key: "RATE_LIMIT_MAX", value: "-1"},
		{key: "RATE_LIMIT_WINDOW", value: "sixty"},
		{key: "RATE_LIMIT_WINDOW", value: "-5s"},
		{key: "METRICS_ENABLED", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg := Load()
			if cfg.RateLimitMax != ProductionRateLimitMax {
				t.Errorf("RateLimitMax = %d", cfg.RateLimitMax)
			}
			if cfg.RateLimitWindow != time.Minute {
				t.Errorf("RateLimitWindow = %v", cfg.RateLimitWindow)
			}
			if !cfg.MetricsEnabled {
				t.Error("MetricsEnabled changed")
			}
		})
	}
}

func TestLoadProfileConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		t.Setenv("PROFILE_FILE", filepath.Join(dir, "absent.yaml"))
		cfg, err := LoadProfileConfig()
		if err != nil || cfg != nil {
			t.Errorf("LoadProfileConfig() = %v, %v; want nil, nil", cfg, err)
		}
	})

	t.Run("partial override", func(t *testing.T) {
		path := filepath.Join(dir, "profile.yaml")
		content := `name: Ada Lovelace
company: Analytical Engines
education:
  school: University of London
links:
  blogs:
    - https://example.com/notes
  projects:
    kanban_live: https://example.com/board
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("PROFILE_FILE", path)

		cfg, err := LoadProfileConfig()
		if err != nil {
			t.Fatalf("LoadProfileConfig() error = %v", err)
		}
		if cfg.Name != "Ada Lovelace" || cfg.Company != "Analytical Engines" {
			t.Errorf("identity = %q/%q", cfg.Name, cfg.Company)
		}
		if cfg.Education.School != "University of London" || cfg.Education.Graduation != "" {
			t.Errorf("education = %+v", cfg.Education)
		}
		if len(cfg.Links.Blogs) != 1 || cfg.Links.Projects.KanbanLive != "https://example.com/board" {
			t.Errorf("links = %+v", cfg.Links)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		if err := os.WriteFile(path, []byte("name: [unterminated"), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("PROFILE_FILE", path)
		if _, err := LoadProfileConfig(); err == nil {
			t.Error("expected parse error")
		}
	})
}
