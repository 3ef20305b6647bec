package interactive

import tea "github.com/charmbracelet/bubbletea"

// rendered is a pre-rendered screen used as an overlay background
type rendered string

func (r rendered) Init() tea.Cmd                       { return nil }
func (r rendered) Update(tea.Msg) (tea.Model, tea.Cmd) { return r, nil }
func (r rendered) View() string                        { return string(r) }
