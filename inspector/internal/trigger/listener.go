package trigger

import (
	"encoding/json"
	"fmt"
)

// BindingName is the runtime binding page scripts call into.
const BindingName = "__design_inspector_command"

// Event kinds carried by a Message.
const (
	EventCommand = "command"
	EventFocus   = "focus"
	EventClosed  = "closed"
)

// Message is one binding payload. Command is set for EventCommand, ID for
// EventClosed.
type Message struct {
	Event   string `json:"event"`
	Command string `json:"command,omitempty"`
	ID      string `json:"id,omitempty"`
}

// DecodeMessage parses a binding payload.
func DecodeMessage(payload string) (Message, error) {
	var m Message
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return Message{}, fmt.Errorf("trigger: decode message: %w", err)
	}
	switch m.Event {
	case EventCommand:
		if m.Command == "" {
			return Message{}, fmt.Errorf("trigger: decode message: command event without name")
		}
	case EventFocus:
	case EventClosed:
		if m.ID == "" {
			return Message{}, fmt.Errorf("trigger: decode message: closed event without id")
		}
	default:
		return Message{}, fmt.Errorf("trigger: decode message: unknown event %q", m.Event)
	}
	return m, nil
}

const listenerTemplate = `(function () {
	if (window.__design_inspector_listener) return;
	window.__design_inspector_listener = true;
	const chords = %s;
	const send = (msg) => {
		const fn = window[%q];
		if (typeof fn === 'function') fn(JSON.stringify(msg));
	};
	window.addEventListener('keydown', (e) => {
		for (const c of chords) {
			if (e.code === c.code && e.altKey === c.alt && e.ctrlKey === c.ctrl &&
				e.shiftKey === c.shift && e.metaKey === c.meta) {
				e.preventDefault();
				send({ event: 'command', command: c.command });
				return;
			}
		}
	}, true);
	window.addEventListener('focus', () => send({ event: 'focus' }));
	document.addEventListener('visibilitychange', () => {
		if (document.visibilityState === 'visible') send({ event: 'focus' });
	});
})();`

type chord struct {
	Shortcut
	Command string `json:"command"`
}

// ListenerJS builds the page script reporting shortcut presses and focus.
// bindings maps command names to their chords.
func ListenerJS(bindings map[string]Shortcut) (string, error) {
	chords := make([]chord, 0, len(bindings))
	for name, sc := range bindings {
		chords = append(chords, chord{Shortcut: sc, Command: name})
	}
	data, err := json.Marshal(chords)
	if err != nil {
		return "", fmt.Errorf("trigger: listener: %w", err)
	}
	return fmt.Sprintf(listenerTemplate, data, BindingName), nil
}
