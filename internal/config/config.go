package config

import (
	"fmt"
	"time"
)

// Config holds all the options for one mdxwrap invocation. Fields are
// populated by Viper from flags, environment and an optional config file.
type Config struct {
	WorkerPath   string // explicit worker executable path; empty means search
	HashlistFile string // target list to attack
	WordlistFile string // candidate list

	TypeFilter string // hash-type filter handed to the worker
	Iterations int    // iteration count for iterated algorithms

	Skip     int64 // candidates to skip at the start of the wordlist
	Limit    int64 // candidates to process from the skip offset; 0 = all
	Keyspace int64 // caller-supplied total keyspace; 0 = count the wordlist

	TimeoutSeconds        int // stop the run after this many seconds; 0 = never
	StatusIntervalSeconds int // STATUS emission cadence
	GraceSeconds          int // wait between terminate and kill

	Passthrough []string // unrecognized flags forwarded verbatim to the worker

	Verbosity string
	NoColor   bool
	Silent    bool
}

// DefaultConfig returns a Config populated with default values. Viper
// sets these as defaults and overrides them with flags and environment.
func DefaultConfig() *Config {
	return &Config{
		TypeFilter:            "ALL,!user,salt",
		Iterations:            10,
		StatusIntervalSeconds: 5,
		GraceSeconds:          5,
		Verbosity:             "info",
	}
}

// Validate checks a populated Config before a crack run starts.
func (c *Config) Validate() error {
	if c.HashlistFile == "" {
		return fmt.Errorf("attacked hashlist is required")
	}
	if c.WordlistFile == "" {
		return fmt.Errorf("wordlist is required")
	}
	if c.TypeFilter == "" {
		return fmt.Errorf("hash type filter cannot be empty")
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive")
	}
	if c.Skip < 0 {
		return fmt.Errorf("skip cannot be negative")
	}
	if c.Limit < 0 {
		return fmt.Errorf("length cannot be negative")
	}
	if c.Keyspace < 0 {
		return fmt.Errorf("keyspace cannot be negative")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	if c.StatusIntervalSeconds <= 0 {
		return fmt.Errorf("status interval must be positive")
	}
	if c.GraceSeconds <= 0 {
		return fmt.Errorf("grace period must be positive")
	}
	return nil
}

// StatusInterval returns the STATUS cadence as a duration.
func (c *Config) StatusInterval() time.Duration {
	return time.Duration(c.StatusIntervalSeconds) * time.Second
}

// GracePeriod returns the terminate-to-kill wait as a duration.
func (c *Config) GracePeriod() time.Duration {
	return time.Duration(c.GraceSeconds) * time.Second
}

// Timeout returns the run timeout as a duration; zero means none.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
