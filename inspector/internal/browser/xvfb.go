package browser

import (
	"fmt"
	"os/exec"
	"time"
)

// screenSize is the Xvfb screen geometry; large enough for any configured
// viewport.
func (m *Manager) screenSize() string {
	w, h := 1920, 1080
	if m.cfg.ViewportWidth > w {
		w = m.cfg.ViewportWidth
	}
	if m.cfg.ViewportHeight > h {
		h = m.cfg.ViewportHeight
	}
	return fmt.Sprintf("%dx%dx24", w, h)
}

func (m *Manager) startXvfb() error {
	if m.xvfb != nil {
		return nil
	}

	display := m.cfg.XvfbDisplay
	cmd := exec.Command("Xvfb", display, "-screen", "0", m.screenSize(), "-ac")
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start xvfb: %w", err)
	}
	m.xvfb = cmd

	time.Sleep(500 * time.Millisecond)

	m.cfg.Logger.Info("browser: xvfb started", "display", display, "pid", cmd.Process.Pid)
	return nil
}

func (m *Manager) stopXvfb() {
	if m.xvfb == nil {
		return
	}
	if m.xvfb.Process != nil {
		m.xvfb.Process.Kill()
		m.xvfb.Wait()
	}
	m.cfg.Logger.Info("browser: xvfb stopped")
	m.xvfb = nil
}
