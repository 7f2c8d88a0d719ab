package stats

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/verte-zerg/coucou/internal/model"
	"github.com/verte-zerg/coucou/internal/store"
)

const (
	missedVerbsTop  = 10
	weakMinAnswers  = 3
	defaultWeakTop  = 3
	defaultCurveWin = 5
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Sessions         []model.SessionAggregate
	WindowSessionIDs []string
	TenseAggsAll     []model.TenseAggregate
	TenseAggsWindow  []model.TenseAggregate
	MissedVerbs      []model.VerbAggregate
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	sessions, err := st.ListSessions(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(sessions) > cfg.Last {
		sessions = sessions[len(sessions)-cfg.Last:]
	}
	if len(sessions) == 0 {
		return Report{}, nil
	}

	allIDs := sessionIDs(sessions)
	windowIDs := lastSessionIDs(sessions, curveWindow(cfg))
	tenseAggsAll, err := st.TenseAggregates(ctx, allIDs)
	if err != nil {
		return Report{}, err
	}
	tenseAggsWindow, err := st.TenseAggregates(ctx, windowIDs)
	if err != nil {
		return Report{}, err
	}
	verbAggs, err := st.VerbAggregates(ctx, allIDs)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Sessions:         sessions,
		WindowSessionIDs: windowIDs,
		TenseAggsAll:     tenseAggsAll,
		TenseAggsWindow:  tenseAggsWindow,
		MissedVerbs:      TopMissedVerbs(verbAggs, missedVerbsTop),
	}, nil
}

// Render writes the full text report sized to width columns.
func Render(w io.Writer, report Report, cfg model.StatsConfig, width int) error {
	if err := RenderSummary(w, report.Sessions); err != nil {
		return err
	}
	if len(report.Sessions) == 0 {
		return nil
	}
	if err := RenderAccuracyCurve(w, report.Sessions, curveWindow(cfg), width); err != nil {
		return err
	}
	if err := RenderTenseTable(w, "Per-Tense (All Sessions)", report.TenseAggsAll); err != nil {
		return err
	}
	if err := RenderVerbTable(w, report.MissedVerbs); err != nil {
		return err
	}
	weakTop := cfg.WeakTop
	if weakTop <= 0 {
		weakTop = defaultWeakTop
	}
	weak := WeakestTenses(report.TenseAggsWindow, weakTop, weakMinAnswers)
	if len(weak) == 0 {
		return nil
	}
	labels := lo.Map(weak, func(p model.MoodTense, _ int) string {
		return model.MoodLabel(p.Mood) + " - " + model.TenseLabel(p.Tense)
	})
	_, err := fmt.Fprintf(w, "Focus next (last %d sessions): %s\n", len(report.WindowSessionIDs), strings.Join(labels, ", "))
	return err
}

func curveWindow(cfg model.StatsConfig) int {
	if cfg.CurveWindow > 0 {
		return cfg.CurveWindow
	}
	return defaultCurveWin
}

func sessionIDs(sessions []model.SessionAggregate) []string {
	return lo.Map(sessions, func(s model.SessionAggregate, _ int) string { return s.SessionID })
}

func lastSessionIDs(sessions []model.SessionAggregate, window int) []string {
	if window <= 0 || len(sessions) <= window {
		return sessionIDs(sessions)
	}
	return sessionIDs(sessions[len(sessions)-window:])
}
