package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a minimal bubbletea model for a yes/no prompt.
type confirmModel struct {
	question string
	answer   bool
	decided  bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y", "enter":
		m.answer = true
		m.decided = true
		return m, tea.Quit
	case "n", "N", "q", "esc", "ctrl+c":
		m.answer = false
		m.decided = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.decided {
		return ""
	}
	return fmt.Sprintf("%s %s ", m.question, StyleDim.Render("[Y/n]"))
}

// confirm asks the user a yes/no question and returns their answer.
// Enter defaults to yes.
func confirm(question string) (bool, error) {
	p := tea.NewProgram(confirmModel{question: question})
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(confirmModel)
	if !ok {
		return false, nil
	}
	return m.answer, nil
}
