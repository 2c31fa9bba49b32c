package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	c := DefaultConfig()
	c.HashlistFile = "hashes.txt"
	c.WordlistFile = "words.txt"
	return c
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing hashlist", func(c *Config) { c.HashlistFile = "" }},
		{"missing wordlist", func(c *Config) { c.WordlistFile = "" }},
		{"empty type filter", func(c *Config) { c.TypeFilter = "" }},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }},
		{"negative skip", func(c *Config) { c.Skip = -1 }},
		{"negative length", func(c *Config) { c.Limit = -5 }},
		{"negative keyspace", func(c *Config) { c.Keyspace = -1 }},
		{"negative timeout", func(c *Config) { c.TimeoutSeconds = -1 }},
		{"zero status interval", func(c *Config) { c.StatusIntervalSeconds = 0 }},
		{"zero grace", func(c *Config) { c.GraceSeconds = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("Validate() accepted an invalid config")
			}
		})
	}
}

func TestDurations(t *testing.T) {
	c := DefaultConfig()
	if got := c.StatusInterval(); got != 5*time.Second {
		t.Errorf("StatusInterval() = %s, want 5s", got)
	}
	if got := c.GracePeriod(); got != 5*time.Second {
		t.Errorf("GracePeriod() = %s, want 5s", got)
	}
	if got := c.Timeout(); got != 0 {
		t.Errorf("Timeout() = %s, want 0", got)
	}
}
