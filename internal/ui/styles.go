package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Padding(0, 1)

	borderedButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("33")).
				Padding(0, 1)
	plainButtonStyle   = lipgloss.NewStyle().Padding(0, 1)
	focusedButtonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)

	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Strikethrough(true)
	pendingStyle   = lipgloss.NewStyle()
	checkDoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	checkTodoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	deleteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("33")).
			Padding(0, 1)
	correctStyle = optionStyle.Background(lipgloss.Color("34"))
	wrongStyle   = optionStyle.Background(lipgloss.Color("160"))
	nextStyle    = optionStyle.Background(lipgloss.Color("208"))
	retryStyle   = optionStyle.Background(lipgloss.Color("0"))

	backgroundStyle = lipgloss.NewStyle().Background(lipgloss.Color("#FF9999"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
