package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/application"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/scoring"
)

// Styles
var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	PaddingLeft(1).
	PaddingRight(1)

var levelHigh = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
var levelMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
var levelLow = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

func levelStyle(level scoring.PriorityLevel) lipgloss.Style {
	switch level {
	case scoring.PriorityHigh:
		return levelHigh
	case scoring.PriorityMedium:
		return levelMedium
	default:
		return levelLow
	}
}

func renderAnalysis(a *scoring.Analysis, verbose bool) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Task Analysis (%s)", a.Strategy)))
	b.WriteString("\n\n")

	for i, t := range a.Tasks {
		level := levelStyle(t.PriorityLevel).Render(string(t.PriorityLevel))
		fmt.Fprintf(&b, "%2d. [%6.2f] %-6s %s (%s)\n", i+1, t.PriorityScore, level, t.Title, t.ID)
		if verbose {
			fmt.Fprintf(&b, "      %s\n", dimStyle.Render(breakdownLine(t.Breakdown)))
		}
		for _, w := range t.Warnings {
			fmt.Fprintf(&b, "      %s\n", warnStyle.Render("warning: "+w))
		}
	}

	fmt.Fprintf(&b, "\n%d tasks: %d high, %d medium, %d low\n",
		a.TotalCount, a.Distribution.High, a.Distribution.Medium, a.Distribution.Low)

	if len(a.CircularDependencies) > 0 {
		b.WriteString(warnStyle.Render("\nCircular dependencies:\n"))
		for _, cycle := range a.CircularDependencies {
			fmt.Fprintf(&b, "  %s\n", strings.Join(cycle, " -> "))
		}
	}

	return b.String()
}

func breakdownLine(br scoring.Breakdown) string {
	return fmt.Sprintf("urgency %.0f, importance %.0f, effort %.0f, dependency %.0f",
		br.Urgency.Score, br.Importance.Score, br.Effort.Score, br.Dependency.Score)
}

func renderSuggestions(result *application.SuggestionResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Top %d of %d tasks (%s)", len(result.Suggestions), result.TotalTasksAnalyzed, result.Strategy)))
	b.WriteString("\n\n")

	for _, s := range result.Suggestions {
		level := levelStyle(s.Task.PriorityLevel).Render(string(s.Task.PriorityLevel))
		fmt.Fprintf(&b, "%d. [%6.2f] %-6s %s (%s)\n", s.Rank, s.Task.PriorityScore, level, s.Task.Title, s.Task.ID)
		fmt.Fprintf(&b, "   %s\n", s.RecommendationReason)
		fmt.Fprintf(&b, "   %s\n", dimStyle.Render(s.ActionableInsight))
	}

	return b.String()
}

func renderValidation(result *application.ValidationResult) string {
	var b strings.Builder

	for _, r := range result.Results {
		switch {
		case !r.IsValid:
			fmt.Fprintf(&b, "task %d: %s\n", r.Index, levelHigh.Render("invalid: "+r.Error))
		case len(r.Warnings) > 0:
			fmt.Fprintf(&b, "task %d (%s): %s\n", r.Index, r.Task.ID, warnStyle.Render(strings.Join(r.Warnings, "; ")))
		default:
			fmt.Fprintf(&b, "task %d (%s): %s\n", r.Index, r.Task.ID, levelLow.Render("ok"))
		}
	}

	if result.AllValid {
		fmt.Fprintf(&b, "\n%d tasks valid, %d with warnings\n", result.TotalTasks, result.TasksWithWarnings)
	} else {
		fmt.Fprintf(&b, "\nvalidation failed\n")
	}

	return b.String()
}
