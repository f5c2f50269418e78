package trigger

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRegisterOnce(t *testing.T) {
	r := NewRegistry(nil, nil)
	h := func(context.Context, string) error { return nil }
	if err := r.Register(DefaultCommand, h); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(DefaultCommand, h); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("second register: got %v, want ErrAlreadyRegistered", err)
	}
	if !r.Has(DefaultCommand) || r.Has("other") {
		t.Errorf("Has: wrong result")
	}
	if got := r.Commands(); len(got) != 1 || got[0] != DefaultCommand {
		t.Errorf("commands: got %q", got)
	}
}

func TestFireActiveTab(t *testing.T) {
	var calls []string
	r := NewRegistry(ResolverFunc(func() (string, bool) { return "tab-1", true }), nil)
	r.Register(DefaultCommand, func(_ context.Context, tab string) error {
		calls = append(calls, tab)
		return nil
	})
	if err := r.Fire(context.Background(), DefaultCommand); err != nil {
		t.Fatalf("fire: %v", err)
	}
	if len(calls) != 1 || calls[0] != "tab-1" {
		t.Errorf("handler calls: got %q, want [tab-1]", calls)
	}
}

func TestFireNoActiveTab(t *testing.T) {
	called := false
	r := NewRegistry(ResolverFunc(func() (string, bool) { return "", false }), nil)
	r.Register(DefaultCommand, func(context.Context, string) error {
		called = true
		return nil
	})
	if err := r.Fire(context.Background(), DefaultCommand); err != nil {
		t.Errorf("fire without tab: got %v, want nil", err)
	}
	if called {
		t.Errorf("handler ran without an active tab")
	}

	// A nil resolver behaves the same.
	r = NewRegistry(nil, nil)
	r.Register(DefaultCommand, func(context.Context, string) error {
		called = true
		return nil
	})
	if err := r.Fire(context.Background(), DefaultCommand); err != nil || called {
		t.Errorf("nil resolver: err=%v called=%v", err, called)
	}
}

func TestFireUnknown(t *testing.T) {
	r := NewRegistry(nil, nil)
	if err := r.Fire(context.Background(), "nope"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("unknown: got %v, want ErrUnknownCommand", err)
	}
}

func TestFireHandlerError(t *testing.T) {
	boom := errors.New("boom")
	r := NewRegistry(ResolverFunc(func() (string, bool) { return "t", true }), nil)
	r.Register("x", func(context.Context, string) error { return boom })
	if err := r.Fire(context.Background(), "x"); !errors.Is(err, boom) {
		t.Errorf("handler error: got %v", err)
	}
}

func TestParseShortcut(t *testing.T) {
	tests := []struct {
		in   string
		want Shortcut
		str  string
	}{
		{"Alt+Shift+I", Shortcut{Alt: true, Shift: true, Code: "KeyI"}, "Alt+Shift+I"},
		{"shift+alt+i", Shortcut{Alt: true, Shift: true, Code: "KeyI"}, "Alt+Shift+I"},
		{"Ctrl+F2", Shortcut{Ctrl: true, Code: "F2"}, "Ctrl+F2"},
		{"Cmd+1", Shortcut{Meta: true, Code: "Digit1"}, "Meta+1"},
		{"Control + Space", Shortcut{Ctrl: true, Code: "Space"}, "Ctrl+Space"},
		{"K", Shortcut{Code: "KeyK"}, "K"},
	}
	for _, tt := range tests {
		got, err := ParseShortcut(tt.in)
		if err != nil {
			t.Errorf("ParseShortcut(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseShortcut(%q): got %+v, want %+v", tt.in, got, tt.want)
		}
		if s := got.String(); s != tt.str {
			t.Errorf("String(%q): got %q, want %q", tt.in, s, tt.str)
		}
	}
}

func TestParseShortcutErrors(t *testing.T) {
	for _, in := range []string{"", "Alt+Shift", "Hyper+I", "Alt++I", "Alt+Banana"} {
		if _, err := ParseShortcut(in); err == nil {
			t.Errorf("ParseShortcut(%q): expected error", in)
		}
	}
}

func TestDecodeMessage(t *testing.T) {
	m, err := DecodeMessage(`{"event":"command","command":"run-inspector"}`)
	if err != nil || m.Command != DefaultCommand {
		t.Errorf("command: got %+v, %v", m, err)
	}
	m, err = DecodeMessage(`{"event":"closed","id":"design-inspector-1"}`)
	if err != nil || m.ID != "design-inspector-1" {
		t.Errorf("closed: got %+v, %v", m, err)
	}
	if _, err := DecodeMessage(`{"event":"focus"}`); err != nil {
		t.Errorf("focus: %v", err)
	}
	for _, bad := range []string{`nope`, `{"event":"command"}`, `{"event":"closed"}`, `{"event":"other"}`} {
		if _, err := DecodeMessage(bad); err == nil {
			t.Errorf("DecodeMessage(%s): expected error", bad)
		}
	}
}

func TestListenerJS(t *testing.T) {
	sc, _ := ParseShortcut(DefaultShortcut)
	js, err := ListenerJS(map[string]Shortcut{DefaultCommand: sc})
	if err != nil {
		t.Fatalf("ListenerJS: %v", err)
	}
	for _, want := range []string{`"code":"KeyI"`, `"alt":true`, `"command":"run-inspector"`, `"` + BindingName + `"`, "__design_inspector_listener"} {
		if !strings.Contains(js, want) {
			t.Errorf("listener missing %s", want)
		}
	}
}
