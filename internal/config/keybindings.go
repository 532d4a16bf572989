// ABOUTME: Screen-level key bindings (quit, next, prev, help) as lists of binding names
// ABOUTME: Resolve parses names with key.ParseBinding; unset actions keep their defaults

package config

import (
	"fmt"
	"slices"

	"github.com/mauromedda/focusterm/pkg/tui/key"
)

// KeyAction is an action that can be bound to keys.
type KeyAction string

const (
	ActionQuit KeyAction = "quit"
	ActionNext KeyAction = "next"
	ActionPrev KeyAction = "prev"
	ActionHelp KeyAction = "help"
)

// Actions lists the bindable actions in display order.
var Actions = []KeyAction{ActionQuit, ActionNext, ActionPrev, ActionHelp}

// Keybindings maps actions to binding names such as "ctrl+c" or "shift+tab".
type Keybindings map[KeyAction][]string

// DefaultKeybindings returns the bindings used when nothing is configured.
func DefaultKeybindings() Keybindings {
	return Keybindings{
		ActionQuit: {"ctrl+c"},
		ActionNext: {"tab"},
		ActionPrev: {"shift+tab"},
		ActionHelp: {"ctrl+g"},
	}
}

// Get returns the binding names for action, falling back to the default.
func (kb Keybindings) Get(action KeyAction) []string {
	if names := kb[action]; len(names) > 0 {
		return names
	}
	return DefaultKeybindings()[action]
}

// Resolve parses every action's bindings into keys.
func (kb Keybindings) Resolve() (map[KeyAction][]key.Key, error) {
	for action := range kb {
		if !slices.Contains(Actions, action) {
			return nil, fmt.Errorf("keybindings: unknown action %q", action)
		}
	}

	out := make(map[KeyAction][]key.Key, len(Actions))
	for _, action := range Actions {
		names := kb.Get(action)
		keys := make([]key.Key, 0, len(names))
		for _, name := range names {
			k, err := key.ParseBinding(name)
			if err != nil {
				return nil, fmt.Errorf("keybindings: %s: %w", action, err)
			}
			keys = append(keys, k)
		}
		out[action] = keys
	}
	return out, nil
}

// Conflict is a key bound to more than one action.
type Conflict struct {
	Key     string
	Actions []KeyAction
}

// Conflicts reports keys that resolve to the same key event under
// different actions. Bindings that do not parse are ignored here; Resolve
// reports them.
func (kb Keybindings) Conflicts() []Conflict {
	byKey := make(map[string][]KeyAction)
	var order []key.Key
	for _, action := range Actions {
		for _, name := range kb.Get(action) {
			k, err := key.ParseBinding(name)
			if err != nil {
				continue
			}
			id := key.Encode(k)
			if len(byKey[id]) == 0 {
				order = append(order, k)
			}
			if !slices.Contains(byKey[id], action) {
				byKey[id] = append(byKey[id], action)
			}
		}
	}

	var out []Conflict
	for _, k := range order {
		if actions := byKey[key.Encode(k)]; len(actions) > 1 {
			out = append(out, Conflict{Key: k.String(), Actions: actions})
		}
	}
	return out
}
