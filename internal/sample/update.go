package sample

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/broadlist/internal/errmsg"
	"github.com/llehouerou/broadlist/internal/keymap"
	"github.com/llehouerou/broadlist/internal/ui"
	"github.com/llehouerou/broadlist/internal/ui/action"
	"github.com/llehouerou/broadlist/internal/ui/confirm"
	"github.com/llehouerou/broadlist/internal/ui/textinput"
	"github.com/llehouerou/broadlist/recycler"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.resize()
		return m, m.flush(m.list.Update(msg))

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case action.Msg:
		return m, m.flush(m.handleAction(msg))

	case tea.KeyMsg:
		if m.prompt.Active() {
			return m, m.prompt.Update(msg)
		}
		if m.confirm.Active() {
			return m, m.confirm.Update(msg)
		}
		return m, m.flush(m.handleKey(msg))

	case tea.MouseMsg:
		if m.prompt.Active() || m.confirm.Active() {
			return m, nil
		}
		return m, m.flush(m.list.Update(msg))
	}

	if m.prompt.Active() {
		return m, m.prompt.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return tea.Quit
	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case keymap.ActionAddContact:
		return m.prompt.Start("New contact", "Item", tagContact, m.Width()-6)
	case keymap.ActionAddTitle:
		return m.prompt.Start("New title", "Title", tagTitle, m.Width()-6)
	case keymap.ActionSelect:
		m.list.ClickSelected(recycler.RowWidget)
	case keymap.ActionToggleCheck:
		m.list.ClickSelected(WidgetCheckbox)
	case keymap.ActionDelete:
		m.list.ClickSelected(WidgetDelete)
	case keymap.ActionInfo:
		m.list.ClickSelected(WidgetInfo)
	case keymap.ActionLongSelect:
		m.list.LongClickSelected(WidgetInfo)
	case keymap.ActionMoveItemUp:
		m.moveSelected(-1)
	case keymap.ActionMoveItemDown:
		m.moveSelected(1)
	case keymap.ActionFind:
		if m.adapter.IsEmpty() {
			return nil
		}
		return m.prompt.Start("Find", "", tagFind, m.Width()-6)
	case keymap.ActionClear:
		if !m.adapter.IsEmpty() {
			m.confirm.Ask("Clear the list?", tagClear)
		}
		return nil
	default:
		return m.list.Update(msg)
	}
	return m.list.Update(nil)
}

func (m *Model) moveSelected(delta int) {
	pos := m.list.Selected()
	if pos < 0 {
		return
	}
	m.adapter.Move(pos, pos+delta)
}

// findNext selects the best match for query after the selection, wrapping
// to the top.
func (m *Model) findNext(query string) {
	pos := find(m.adapter.Items(), query, m.list.Selected()+1)
	if pos < 0 {
		m.notify(fmt.Sprintf("No match for %q", query))
		return
	}
	m.list.Select(pos)
}

func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case textinput.Result:
		if a.Canceled {
			return nil
		}
		switch a.Tag {
		case tagFind:
			m.findNext(a.Text)
			return m.list.Update(nil)
		case tagContact:
			m.adapter.Add(NewContact(a.Text, m.now()))
		case tagTitle:
			m.adapter.Add(NewTitle(a.Text))
		}
		m.list.Select(m.adapter.ItemCount() - 1)
		return m.list.Update(nil)

	case confirm.Result:
		if a.Confirmed && a.Tag == tagClear {
			m.adapter.Clear()
			m.notify("List cleared")
		}
		return m.list.Update(nil)

	case recycler.Failed:
		m.err = a.Err
		m.logger.Error("list stopped", "error", errmsg.Format(errmsg.OpRender, a.Err))
		return tea.Quit

	case recycler.SelectionChanged:
		m.logger.Debug("selection changed", "index", a.Index)
	}
	return nil
}

// resize gives the list what is left after the header and help lines.
func (m *Model) resize() {
	_, h := m.Inner(ui.HeaderHeight + m.helpHeight())
	m.list.SetSize(m.Width(), h)
	m.help.Width = m.Width()
}
