package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iksnae/ticket-desk/testutil"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	path := filepath.Join(testutil.CreateTempDir(t), "none.yaml")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.APIURL != "" || cfg.TopK != 0 {
		t.Errorf("missing file should yield zero config, got %+v", cfg)
	}
}

func TestLoadConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(testutil.CreateTempDir(t), "config.yaml")
	want := &Config{APIURL: "http://tickets.example.com:8003", TopK: 3, SimilarityThreshold: 0.5}

	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if *got != *want {
		t.Errorf("config = %+v, want %+v", got, want)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(testutil.CreateTempDir(t), "config.yaml")
	if err := os.WriteFile(path, []byte("api_url: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() should fail on malformed YAML")
	}
}

func TestResolveAPIURL(t *testing.T) {
	tests := []struct {
		name string
		flag string
		env  string
		cfg  *Config
		want string
	}{
		{
			name: "flag wins over everything",
			flag: "http://flag:1/",
			env:  "http://env:2",
			cfg:  &Config{APIURL: "http://file:3"},
			want: "http://flag:1",
		},
		{
			name: "env wins over config file",
			env:  "http://env:2/",
			cfg:  &Config{APIURL: "http://file:3"},
			want: "http://env:2",
		},
		{
			name: "config file wins over default",
			cfg:  &Config{APIURL: "http://file:3/"},
			want: "http://file:3",
		},
		{
			name: "default",
			cfg:  &Config{},
			want: DefaultAPIURL,
		},
		{
			name: "nil config",
			want: DefaultAPIURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAPIURL, tt.env)
			if got := ResolveAPIURL(tt.flag, tt.cfg); got != tt.want {
				t.Errorf("ResolveAPIURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_SearchTuning(t *testing.T) {
	cfg := &Config{}
	topK, threshold := cfg.SearchTuning()
	if topK != DefaultTopK || threshold != DefaultSimilarityThreshold {
		t.Errorf("zero config tuning = (%d, %v), want defaults", topK, threshold)
	}

	cfg = &Config{TopK: 10, SimilarityThreshold: 0.9}
	topK, threshold = cfg.SearchTuning()
	if topK != 10 || threshold != 0.9 {
		t.Errorf("tuning = (%d, %v), want (10, 0.9)", topK, threshold)
	}
}
