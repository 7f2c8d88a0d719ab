package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"

	"github.com/verte-zerg/coucou/internal/achievement"
)

var (
	achHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244")).Padding(0, 1)
	achCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// renderAchievements prints one row per category with its counter, the
// earned milestone count and the next threshold to reach.
func renderAchievements(tracker *achievement.Tracker) string {
	categories := tracker.Categories()
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		earned := lo.CountBy(c.Milestones, func(m achievement.Milestone) bool {
			return tracker.IsEarned(c.Key, m.Threshold)
		})
		next := "done"
		if m, ok := lo.Find(c.Milestones, func(m achievement.Milestone) bool {
			return !tracker.IsEarned(c.Key, m.Threshold)
		}); ok {
			next = m.Description
		}
		rows = append(rows, []string{
			c.Name,
			strconv.Itoa(tracker.Counter(c.Key)),
			fmt.Sprintf("%d/%d", earned, len(c.Milestones)),
			next,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Category", "Count", "Earned", "Next").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return achHeaderStyle
			}
			return achCellStyle
		})

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n")
	fmt.Fprintf(&b, "Milestones %d/%d · Rewards %d/%d",
		tracker.EarnedCount(), tracker.TotalMilestones(),
		len(tracker.Unlocked()), tracker.TotalRewards())
	if tracker.AllCompleted() {
		b.WriteString("\nAll achievements completed!")
	}
	return b.String()
}
