// ABOUTME: Keybindings for list navigation, loaded from ~/.pi-vlist and .pi-vlist keybindings.json
// ABOUTME: Key names follow bubbletea's KeyMsg.String() spelling ("up", "pgdown", "ctrl+c")

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
)

// KeyAction represents an action that can be bound to keys.
type KeyAction string

const (
	ActionScrollUp   KeyAction = "scrollUp"
	ActionScrollDown KeyAction = "scrollDown"
	ActionPageUp     KeyAction = "pageUp"
	ActionPageDown   KeyAction = "pageDown"
	ActionHome       KeyAction = "home"
	ActionEnd        KeyAction = "end"
	ActionFilter     KeyAction = "filter"
	ActionCancel     KeyAction = "cancel"
	ActionHelp       KeyAction = "help"
	ActionQuit       KeyAction = "quit"
)

// Keybindings maps actions to the key names that trigger them.
type Keybindings struct {
	Bindings map[KeyAction][]string `json:"-"`
}

// RawKeybindings is for JSON marshaling.
type RawKeybindings map[string][]string

// NewKeybindings creates a new Keybindings with default bindings.
func NewKeybindings() *Keybindings {
	kb := &Keybindings{
		Bindings: make(map[KeyAction][]string),
	}
	kb.setDefaultBindings()
	return kb
}

// setDefaultBindings sets pager-style defaults.
func (kb *Keybindings) setDefaultBindings() {
	kb.Bindings[ActionScrollUp] = []string{"up", "k"}
	kb.Bindings[ActionScrollDown] = []string{"down", "j", "enter"}
	kb.Bindings[ActionPageUp] = []string{"pgup", "b"}
	kb.Bindings[ActionPageDown] = []string{"pgdown", " "}
	kb.Bindings[ActionHome] = []string{"home", "g"}
	kb.Bindings[ActionEnd] = []string{"end", "G"}
	kb.Bindings[ActionFilter] = []string{"/"}
	kb.Bindings[ActionCancel] = []string{"esc"}
	kb.Bindings[ActionHelp] = []string{"?"}
	kb.Bindings[ActionQuit] = []string{"q", "ctrl+c"}
}

// LoadKeybindings loads keybindings from a file over the defaults.
// Unknown action names are ignored.
func LoadKeybindings(path string) (*Keybindings, error) {
	kb := NewKeybindings()
	if err := kb.overlay(path); err != nil {
		return nil, err
	}
	return kb, nil
}

// LoadProjectKeybindings applies the global then the project keybindings
// file over the defaults. Missing files are skipped.
func LoadProjectKeybindings(projectRoot string) (*Keybindings, error) {
	kb := NewKeybindings()
	for _, path := range []string{GlobalKeybindingsFile(), ProjectKeybindingsFile(projectRoot)} {
		if err := kb.overlay(path); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}
	return kb, nil
}

func (kb *Keybindings) overlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw RawKeybindings
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for actionName, keys := range raw {
		action := KeyAction(actionName)
		if _, ok := kb.Bindings[action]; ok {
			kb.Bindings[action] = keys
		}
	}
	return nil
}

// GetBindings returns the bindings for an action.
func (kb *Keybindings) GetBindings(action KeyAction) []string {
	if kb == nil {
		return nil
	}
	return kb.Bindings[action]
}

// Lookup returns the action bound to a key name.
func (kb *Keybindings) Lookup(key string) (KeyAction, bool) {
	if kb == nil {
		return "", false
	}
	for action, keys := range kb.Bindings {
		if slices.Contains(keys, key) {
			return action, true
		}
	}
	return "", false
}

// ExportTemplate exports current keybindings as a JSON template.
func (kb *Keybindings) ExportTemplate() (string, error) {
	raw := make(RawKeybindings)
	for action, keys := range kb.Bindings {
		raw[string(action)] = keys
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
