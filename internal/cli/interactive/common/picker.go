package common

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxPickerRows = 8

// PickerItem is one choice offered by a Picker
type PickerItem struct {
	Value string
	Label string
}

// FilterValue returns a value for filtering - implements list.Item
func (i PickerItem) FilterValue() string {
	return i.Label
}

// PickerResult reports what a key press did to the picker
type PickerResult int

const (
	PickerPending PickerResult = iota
	PickerChosen
	PickerDismissed
)

// pickerDelegate handles rendering of picker items in the list
type pickerDelegate struct {
	current string
}

func (d pickerDelegate) Height() int                             { return 1 }
func (d pickerDelegate) Spacing() int                            { return 0 }
func (d pickerDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d pickerDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(PickerItem)
	if !ok {
		return
	}

	label := item.Label
	if d.current != "" && item.Value == d.current {
		label += " ✓"
	}

	if index == m.Index() {
		fmt.Fprint(w, HighlightStyle().Render("> "+label))
	} else {
		fmt.Fprint(w, defaultStyle.Render("  "+label))
	}
}

// Picker is a small bordered list used for dropdowns and menus. It satisfies
// tea.Model so it can be drawn as an overlay foreground.
type Picker struct {
	list  list.Model
	title string
}

// NewPicker creates a picker with the cursor on current, if present
func NewPicker(title string, items []PickerItem, current string) Picker {
	listItems := make([]list.Item, 0, len(items))
	cursor := 0
	width := lipgloss.Width(title)
	for i, item := range items {
		listItems = append(listItems, item)
		if item.Value == current {
			cursor = i
		}
		// cursor, label and check mark
		if w := lipgloss.Width(item.Label) + 4; w > width {
			width = w
		}
	}

	rows := len(items)
	if rows > maxPickerRows {
		rows = maxPickerRows
	}
	if rows == 0 {
		rows = 1
	}

	l := list.New(listItems, pickerDelegate{current: current}, width, rows)
	l.SetShowTitle(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(len(items) > maxPickerRows)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	// grow until one page holds every visible row
	for height := rows; l.Paginator.PerPage < rows && height < rows+maxPickerRows; height++ {
		l.SetHeight(height + 1)
	}
	l.Select(cursor)

	return Picker{
		list:  l,
		title: title,
	}
}

// Selected returns the value under the cursor
func (p Picker) Selected() (string, bool) {
	if item, ok := p.list.SelectedItem().(PickerItem); ok {
		return item.Value, true
	}
	return "", false
}

// HandleKey applies a key press. Enter chooses the highlighted item, Esc
// dismisses the picker, everything else moves the cursor.
func (p Picker) HandleKey(msg tea.KeyMsg) (Picker, PickerResult, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if _, ok := p.Selected(); ok {
			return p, PickerChosen, nil
		}
		return p, PickerPending, nil
	case "esc":
		return p, PickerDismissed, nil
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, PickerPending, cmd
}

// Init implements tea.Model
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Only cursor movement is applied here; choosing
// and dismissing go through HandleKey.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		updated, _, cmd := p.HandleKey(keyMsg)
		return updated, cmd
	}
	return p, nil
}

// View renders the picker inside a popup frame
func (p Picker) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(p.title),
		trimBlankLines(p.list.View()),
	)
	return PopupStyle().Render(body)
}

// trimBlankLines drops the padding rows the list adds below its items
func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 1 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
