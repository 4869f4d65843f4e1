package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) headerView() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.theme.Title.Render("tally"),
		"  ",
		m.theme.Clock.Render(m.sess.Clock()),
	)
}

func (m *Model) timersView() string {
	var s strings.Builder

	row := func(label, value string, active bool) {
		style := m.theme.Counter
		if active {
			style = m.theme.Timer
		}

		s.WriteString(m.theme.Label.Render(label))
		s.WriteString(style.Render(value))
		s.WriteString("\n")
	}

	row("Current", m.sess.CurrentTime(), !m.sess.OnBreak())
	row("Last", m.sess.LastTime(), false)

	brk := m.sess.BreakTime()

	switch {
	case m.sess.Sleeping():
		brk += " [sleeping]"
	case m.sess.OnBreak():
		brk += " [on break]"
	}

	s.WriteString(m.theme.Label.Render("Break"))

	if m.sess.OnBreak() {
		s.WriteString(m.theme.Break.Render(brk))
	} else {
		s.WriteString(m.theme.Counter.Render(brk))
	}

	return s.String()
}

func (m *Model) tasksView() string {
	var s strings.Builder

	tasks := m.sess.Tasks()

	if len(tasks) == 0 && !m.sess.Adding() {
		s.WriteString(m.theme.Counter.Render("No tasks. Press n to add one."))
	}

	for i, task := range tasks {
		if i == m.cursor && !m.sess.Adding() {
			s.WriteString(m.theme.Selected.Render("> " + task))
		} else {
			s.WriteString(m.theme.Task.Render(task))
		}

		s.WriteString("\n")
	}

	if m.sess.Adding() {
		s.WriteString(m.theme.Draft.Render(m.input.View()))
	}

	return strings.TrimRight(s.String(), "\n")
}

func (m *Model) countersView() string {
	return m.theme.Counter.Render(fmt.Sprintf(
		"completed %d · removed %d",
		m.sess.Completed(),
		m.sess.Removed(),
	))
}

func (m *Model) helpView() string {
	switch {
	case m.sess.Adding():
		return m.help.ShortHelpView([]key.Binding{
			m.keys.confirm,
			m.keys.cancel,
		})
	case m.sess.ConfirmingReset():
		return m.help.ShortHelpView([]key.Binding{
			m.keys.reset,
			m.keys.resetTime,
			m.keys.cancel,
		})
	case m.sess.OnBreak():
		return m.help.ShortHelpView([]key.Binding{
			m.keys.toggleBrk,
			m.keys.sleep,
			m.keys.newTask,
			m.keys.save,
			m.keys.quit,
		})
	}

	return m.help.ShortHelpView([]key.Binding{
		m.keys.newTask,
		m.keys.up,
		m.keys.down,
		m.keys.complete,
		m.keys.remove,
		m.keys.toggleBrk,
		m.keys.reset,
		m.keys.save,
		m.keys.load,
		m.keys.quit,
	})
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.headerView(),
		m.timersView(),
		m.tasksView(),
		m.countersView(),
	}

	if m.sess.ConfirmingReset() {
		sections = append(sections, m.theme.Warning.Render(
			"Press r again to reset everything, R to reset only the timers",
		))
	}

	if m.status != "" {
		style := m.theme.Status
		if m.statusErr {
			style = m.theme.StatusErr
		}

		sections = append(sections, style.Render(m.status))
	}

	sections = append(sections, m.helpView())

	return m.theme.Base.Render(strings.Join(sections, "\n\n"))
}
