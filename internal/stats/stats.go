// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/verte-zerg/coucou/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Accuracy returns correct / (correct + incorrect), or 0 without answers.
func Accuracy(correct, incorrect int) float64 {
	den := correct + incorrect
	if den <= 0 {
		return 0
	}
	return float64(correct) / float64(den)
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Downsample averages values into at most width buckets.
func Downsample(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		return append([]float64(nil), values...)
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		start := i * len(values) / width
		end := (i + 1) * len(values) / width
		if end <= start {
			end = start + 1
		}
		var sum float64
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := lo.Min(values)
	maxVal := lo.Max(values)
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints a summary of drill sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	correct := lo.SumBy(sessions, func(s model.SessionAggregate) int { return s.Correct })
	incorrect := lo.SumBy(sessions, func(s model.SessionAggregate) int { return s.Incorrect })
	best := lo.MaxBy(sessions, func(a, b model.SessionAggregate) bool {
		return Accuracy(a.Correct, a.Incorrect) > Accuracy(b.Correct, b.Incorrect)
	})
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d", len(sessions)),
		fmt.Sprintf("Answers: %d (%d correct, %d incorrect)", correct+incorrect, correct, incorrect),
		fmt.Sprintf("Accuracy: %.2f%%", Accuracy(correct, incorrect)*100),
		fmt.Sprintf("Best session: %.2f%% on %s", Accuracy(best.Correct, best.Incorrect)*100, best.EndedAt.Local().Format("2006-01-02")),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderAccuracyCurve prints a sparkline of per-session accuracy smoothed
// over window and fitted to width columns.
func RenderAccuracyCurve(w io.Writer, sessions []model.SessionAggregate, window, width int) error {
	if len(sessions) == 0 {
		return nil
	}
	accs := lo.Map(sessions, func(s model.SessionAggregate, _ int) float64 {
		return Accuracy(s.Correct, s.Incorrect) * 100
	})
	accs = MovingAverage(accs, window)
	const label = "Accuracy "
	plotWidth := width - displayWidth(label) - 2
	if plotWidth < 1 {
		plotWidth = 1
	}
	if _, err := fmt.Fprintln(w, "Learning Curve"); err != nil {
		return err
	}
	line := Sparkline(Downsample(accs, plotWidth))
	if _, err := fmt.Fprintf(w, "%s[%s]\n", label, line); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "min %.1f%%  max %.1f%%  last %.1f%%\n\n", lo.Min(accs), lo.Max(accs), accs[len(accs)-1]); err != nil {
		return err
	}
	return nil
}

// RenderTenseTable prints per-tense aggregates, lowest accuracy first.
func RenderTenseTable(w io.Writer, title string, aggs []model.TenseAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No tense stats found.")
		return err
	}
	rows := sortTenses(aggs)
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	headers := []string{"Mood", "Tense", "Accuracy", "Correct", "Incorrect"}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			model.MoodLabel(r.Mood),
			model.TenseLabel(r.Tense),
			fmt.Sprintf("%.2f%%", Accuracy(r.Correct, r.Incorrect)*100),
			fmt.Sprintf("%d", r.Correct),
			fmt.Sprintf("%d", r.Incorrect),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderVerbTable prints the verbs with the most incorrect answers.
func RenderVerbTable(w io.Writer, aggs []model.VerbAggregate) error {
	if len(aggs) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Most Missed Verbs"); err != nil {
		return err
	}
	headers := []string{"Verb", "Incorrect", "Accuracy"}
	tableRows := lo.Map(aggs, func(a model.VerbAggregate, _ int) []string {
		return []string{
			a.Verb,
			fmt.Sprintf("%d", a.Incorrect),
			fmt.Sprintf("%.2f%%", Accuracy(a.Correct, a.Incorrect)*100),
		}
	})
	for _, line := range formatTable(headers, tableRows, map[int]bool{1: true, 2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

func sortTenses(aggs []model.TenseAggregate) []model.TenseAggregate {
	order := make(map[model.MoodTense]int)
	for i, p := range model.MoodTensePairs() {
		order[p] = i
	}
	rows := append([]model.TenseAggregate(nil), aggs...)
	sort.SliceStable(rows, func(i, j int) bool {
		ai := Accuracy(rows[i].Correct, rows[i].Incorrect)
		aj := Accuracy(rows[j].Correct, rows[j].Incorrect)
		if ai == aj {
			return order[model.MoodTense{Mood: rows[i].Mood, Tense: rows[i].Tense}] <
				order[model.MoodTense{Mood: rows[j].Mood, Tense: rows[j].Tense}]
		}
		return ai < aj
	})
	return rows
}
