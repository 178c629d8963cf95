// Package controls decodes key names into game actions.
package controls

import (
	"fmt"
	"os"
	"strings"

	"github.com/they4kman/sweeper/game"
	"gopkg.in/yaml.v2"
)

// Controls binds a key name to each keyboard action
type Controls struct {
	Up            string `yaml:"up"`
	Down          string `yaml:"down"`
	Left          string `yaml:"left"`
	Right         string `yaml:"right"`
	Clear         string `yaml:"clear"`
	Flag          string `yaml:"flag"`
	QuestionMark  string `yaml:"question_mark"`
	ClearAdjacent string `yaml:"clear_adjacent"`
}

func Default() Controls {
	return Controls{
		Up:            "up",
		Down:          "down",
		Left:          "left",
		Right:         "right",
		Clear:         "space",
		Flag:          "c",
		QuestionMark:  "z",
		ClearAdjacent: "x",
	}
}

// Load reads controls from a YAML file. Keys missing from the file keep
// their default binding.
func Load(path string) (Controls, error) {
	controls := Default()

	in, err := os.ReadFile(path)
	if err != nil {
		return controls, fmt.Errorf("read controls: %w", err)
	}
	if err := yaml.Unmarshal(in, &controls); err != nil {
		return controls, fmt.Errorf("parse controls %s: %w", path, err)
	}
	if err := controls.Validate(); err != nil {
		return controls, fmt.Errorf("controls %s: %w", path, err)
	}
	return controls, nil
}

func (controls Controls) bindings() []binding {
	return []binding{
		{controls.Up, game.Move(game.Up)},
		{controls.Down, game.Move(game.Down)},
		{controls.Left, game.Move(game.Left)},
		{controls.Right, game.Move(game.Right)},
		{controls.Clear, game.Do(game.Clear)},
		{controls.Flag, game.Do(game.Flag)},
		{controls.QuestionMark, game.Do(game.QuestionMark)},
		{controls.ClearAdjacent, game.Do(game.ClearAdjacent)},
	}
}

type binding struct {
	key    string
	action game.Action
}

// Validate rejects unbound actions and keys bound to more than one action
func (controls Controls) Validate() error {
	bound := make(map[string]game.Action)
	for _, binding := range controls.bindings() {
		key := normalize(binding.key)
		if key == "" {
			return fmt.Errorf("no key bound to %v", binding.action)
		}
		if other, exists := bound[key]; exists {
			return fmt.Errorf("key %q bound to both %v and %v", key, other, binding.action)
		}
		bound[key] = binding.action
	}
	return nil
}

// Decode maps a key name to its action; unbound keys decode to None
func (controls Controls) Decode(key string) game.Action {
	key = normalize(key)
	for _, binding := range controls.bindings() {
		if key != "" && key == normalize(binding.key) {
			return binding.action
		}
	}
	return game.Do(game.None)
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
