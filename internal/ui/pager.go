package ui

import (
	"bytes"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// viewSourceCmd shows the raw payload of the loaded page in the ov
// pager. The terminal is handed over to the pager and restored
// afterwards.
func (m *Model) viewSourceCmd() tea.Cmd {
	raw := m.state.Raw
	program := m.program
	title := fmt.Sprintf("%s source", m.current.String())

	return func() tea.Msg {
		if program == nil {
			return sourcePagerMsg{err: fmt.Errorf("program not set")}
		}

		if err := program.ReleaseTerminal(); err != nil {
			return sourcePagerMsg{err: err}
		}
		defer func() {
			// Give the pager a moment to fully exit before redrawing.
			time.Sleep(100 * time.Millisecond)
			_ = program.RestoreTerminal()
		}()

		root, err := oviewer.NewRoot(bytes.NewReader(raw))
		if err != nil {
			return sourcePagerMsg{err: err}
		}

		cfg := oviewer.NewConfig()
		cfg.IsWriteOnExit = false
		cfg.IsWriteOriginal = false
		root.SetConfig(cfg)
		root.Doc.Caption = title

		return sourcePagerMsg{err: root.Run()}
	}
}
