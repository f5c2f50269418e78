package trigger

import (
	"fmt"
	"strings"
)

// DefaultShortcut runs the default command.
const DefaultShortcut = "Alt+Shift+I"

// Shortcut is a key chord. Code is a KeyboardEvent.code value, so the chord
// matches regardless of the layout-dependent character it produces.
type Shortcut struct {
	Alt   bool   `json:"alt"`
	Ctrl  bool   `json:"ctrl"`
	Shift bool   `json:"shift"`
	Meta  bool   `json:"meta"`
	Code  string `json:"code"`
}

// ParseShortcut parses chords like "Alt+Shift+I" or "Ctrl+F2". Modifier
// names are case-insensitive; exactly one non-modifier key is required.
func ParseShortcut(s string) (Shortcut, error) {
	var sc Shortcut
	parts := strings.Split(s, "+")
	for i, raw := range parts {
		p := strings.TrimSpace(raw)
		if p == "" {
			return Shortcut{}, fmt.Errorf("trigger: shortcut %q: empty part", s)
		}
		if i < len(parts)-1 {
			switch strings.ToLower(p) {
			case "alt", "option":
				sc.Alt = true
			case "ctrl", "control":
				sc.Ctrl = true
			case "shift":
				sc.Shift = true
			case "meta", "cmd", "command", "super":
				sc.Meta = true
			default:
				return Shortcut{}, fmt.Errorf("trigger: shortcut %q: unknown modifier %q", s, p)
			}
			continue
		}
		code, err := keyCode(p)
		if err != nil {
			return Shortcut{}, fmt.Errorf("trigger: shortcut %q: %w", s, err)
		}
		sc.Code = code
	}
	return sc, nil
}

func keyCode(k string) (string, error) {
	switch lower := strings.ToLower(k); {
	case lower == "alt" || lower == "ctrl" || lower == "shift" || lower == "meta":
		return "", fmt.Errorf("missing key")
	case len(k) == 1 && k >= "a" && k <= "z", len(k) == 1 && k >= "A" && k <= "Z":
		return "Key" + strings.ToUpper(k), nil
	case len(k) == 1 && k >= "0" && k <= "9":
		return "Digit" + k, nil
	case len(lower) >= 2 && lower[0] == 'f' && isDigits(lower[1:]):
		return "F" + lower[1:], nil
	}
	switch strings.ToLower(k) {
	case "space":
		return "Space", nil
	case "enter":
		return "Enter", nil
	case "escape", "esc":
		return "Escape", nil
	case "period", ".":
		return "Period", nil
	case "comma", ",":
		return "Comma", nil
	case "slash", "/":
		return "Slash", nil
	}
	return "", fmt.Errorf("unknown key %q", k)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// String renders the chord in canonical order.
func (s Shortcut) String() string {
	var parts []string
	if s.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if s.Alt {
		parts = append(parts, "Alt")
	}
	if s.Shift {
		parts = append(parts, "Shift")
	}
	if s.Meta {
		parts = append(parts, "Meta")
	}
	key := strings.TrimPrefix(strings.TrimPrefix(s.Code, "Key"), "Digit")
	return strings.Join(append(parts, key), "+")
}
