package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/application"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/scoring"
)

var boardFile string

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive TUI priority board",
	Long: `Open an interactive board showing the ranked task list.

Keys:
  up/down  navigate
  s        cycle through scoring strategies
  r        reload the task file
  q        quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("TASK_ANALYZER_SKIP_BOARD_RUN") == "true" {
			return nil
		}
		p := tea.NewProgram(initialBoardModel(boardFile))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("board run failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(boardCmd)
	boardCmd.Flags().StringVarP(&boardFile, "file", "f", "", "Task file (JSON or YAML)")
	_ = boardCmd.MarkFlagRequired("file")
}

var boardBaseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

type boardModel struct {
	table       table.Model
	file        string
	svc         *application.AnalysisService
	strategyIdx int
	analysis    *scoring.Analysis
	err         error
}

func initialBoardModel(file string) boardModel {
	m := boardModel{
		file: file,
		svc:  application.NewAnalysisService(),
	}
	m.reload()
	return m
}

func (m *boardModel) strategy() scoring.Strategy {
	return scoring.AllStrategies()[m.strategyIdx]
}

func (m *boardModel) reload() {
	drafts, err := LoadDrafts(m.file)
	if err != nil {
		m.err = err
		return
	}

	analysis, err := m.svc.Analyze(context.Background(), application.AnalyzeRequest{
		Tasks:    drafts,
		Strategy: m.strategy().String(),
	})
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.analysis = analysis

	columns := []table.Column{
		{Title: "Rank", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 6},
		{Title: "Task", Width: 40},
		{Title: "Due", Width: 10},
		{Title: "ID", Width: 16},
	}

	rows := []table.Row{}
	for i, t := range analysis.Tasks {
		due := "-"
		if !t.DueDate.IsZero() {
			due = t.DueDate.String()
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", t.PriorityScore),
			string(t.PriorityLevel),
			t.Title,
			due,
			t.ID,
		})
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229"))
	tbl.SetStyles(s)

	m.table = tbl
}

func (m boardModel) Init() tea.Cmd { return nil }

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			m.strategyIdx = (m.strategyIdx + 1) % len(scoring.AllStrategies())
			m.reload()
			return m, nil
		case "r":
			m.reload()
			return m, nil
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m boardModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error loading board: %v\nPress q to quit.", m.err)
	}

	header := titleStyle.Render(fmt.Sprintf("Priority Board (%s)", m.strategy()))

	summary := ""
	if m.analysis != nil {
		summary = fmt.Sprintf("%d tasks: %d high, %d medium, %d low",
			m.analysis.TotalCount,
			m.analysis.Distribution.High,
			m.analysis.Distribution.Medium,
			m.analysis.Distribution.Low)
	}

	cycleView := ""
	if m.analysis != nil && len(m.analysis.CircularDependencies) > 0 {
		cycleView = warnStyle.Render(fmt.Sprintf("\n%d circular dependency chain(s) detected", len(m.analysis.CircularDependencies)))
	}

	return boardBaseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			summary,
			"",
			m.table.View(),
			cycleView,
			"\n[q] Quit  [s] Strategy  [r] Reload  [Up/Down] Navigate",
		),
	) + "\n"
}
