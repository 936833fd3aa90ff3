package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
)

// Options are the player-facing game options
type Options struct {
	// ConfirmActions ask "Really use <name>?" before matching abilities
	ConfirmActions []*regexp.Regexp
	// LetterRules steer new abilities onto preferred hotkeys
	LetterRules []player.LetterRule
	Sprint      bool
}

type letterRule struct {
	Pattern string `yaml:"pattern"`
	Letters string `yaml:"letters"`
}

type optionsFile struct {
	ConfirmAction      []string     `yaml:"confirm_action"`
	AutoAbilityLetters []letterRule `yaml:"auto_ability_letters"`
	Sprint             bool         `yaml:"sprint"`
}

// LoadOptions reads the options file at path. A missing file gives the
// defaults: no confirmations, first free hotkey, normal game.
func LoadOptions(path string) (*Options, error) {
	opts := &Options{}
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return opts, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading options %s: %w", path, err)
	}

	return ParseOptions(data)
}

// ParseOptions parses options YAML. Patterns match case-insensitively.
func ParseOptions(data []byte) (*Options, error) {
	var raw optionsFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing options: %w", err)
	}

	opts := &Options{Sprint: raw.Sprint}

	for _, pattern := range raw.ConfirmAction {
		re, err := compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("confirm_action: %w", err)
		}
		opts.ConfirmActions = append(opts.ConfirmActions, re)
	}

	for i, rule := range raw.AutoAbilityLetters {
		re, err := compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("auto_ability_letters[%d]: %w", i, err)
		}
		for _, r := range rule.Letters {
			if player.LetterToIndex(r) < 0 {
				return nil, fmt.Errorf("auto_ability_letters[%d]: %q is not a letter", i, r)
			}
		}
		opts.LetterRules = append(opts.LetterRules, player.LetterRule{Pattern: re, Letters: rule.Letters})
	}

	return opts, nil
}

func compile(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, errors.New("empty pattern")
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	return re, nil
}
