// Package tui provides the Bubble Tea conjugation drill.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/coucou/internal/achievement"
	"github.com/verte-zerg/coucou/internal/generator"
	"github.com/verte-zerg/coucou/internal/lexicon"
	"github.com/verte-zerg/coucou/internal/model"
)

// Accents maps alt+key to the accented letter it inserts.
var Accents = []struct {
	Key    string
	Letter string
}{
	{"1", "é"}, {"2", "è"}, {"3", "ê"}, {"4", "ë"},
	{"5", "à"}, {"6", "ç"}, {"7", "ô"}, {"8", "ù"},
	{"9", "î"}, {"0", "ï"}, {"-", "â"}, {"=", "û"},
}

// AnswerLog records submitted answers.
type AnswerLog interface {
	InsertAnswer(ctx context.Context, a model.Answer) (int64, error)
}

// Pools holds the verb lists the drill can switch between.
type Pools struct {
	All []string
	Top []string
}

func (p Pools) verbs(pool lexicon.Pool) []string {
	if pool == lexicon.PoolTop {
		return p.Top
	}
	return p.All
}

// Model implements the Bubble Tea drill UI.
type Model struct {
	gen       *generator.Generator
	tracker   *achievement.Tracker
	answers   AnswerLog
	log       logrus.FieldLogger
	pools     Pools
	pool      lexicon.Pool
	sessionID string
	now       func() time.Time

	width  int
	height int

	input     textinput.Model
	question  model.Question
	submitted bool
	correct   bool
	given     string
	rewards   []model.Reward
	errMsg    string

	score  int
	streak int

	showGallery bool
	gallery     table.Model
}

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	rewardStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	bannerStyle    = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	galleryTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C0C0C0")).Bold(true)
)

// NewModel constructs a drill model and draws the first question. answers
// may be nil when the answer log is not kept.
func NewModel(pool lexicon.Pool, pools Pools, gen *generator.Generator, tracker *achievement.Tracker, answers AnswerLog, log logrus.FieldLogger) *Model {
	m := &Model{
		gen:       gen,
		tracker:   tracker,
		answers:   answers,
		log:       log,
		pools:     pools,
		pool:      pool,
		sessionID: uuid.NewString(),
		now:       time.Now,
		input:     newAnswerInput(),
		gallery:   newGalleryTable(),
	}
	m.nextQuestion()
	return m
}

func newAnswerInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "réponse"
	input.CharLimit = 64
	input.Cursor.SetMode(cursor.CursorBlink)
	input.Focus()
	return input
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.gallery.SetWidth(msg.Width)
		m.gallery.SetHeight(maxInt(3, msg.Height-6))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+g":
		m.toggleGallery()
		return m, nil
	case "esc":
		if m.showGallery {
			m.toggleGallery()
			return m, nil
		}
		return m, tea.Quit
	}
	if m.showGallery {
		var cmd tea.Cmd
		m.gallery, cmd = m.gallery.Update(msg)
		return m, cmd
	}
	switch key {
	case "ctrl+t":
		m.togglePool()
		return m, nil
	case "enter":
		if m.submitted || m.errMsg != "" {
			m.nextQuestion()
			return m, nil
		}
		m.submit()
		return m, nil
	}
	if strings.HasPrefix(key, "alt+") {
		if letter, ok := accentFor(strings.TrimPrefix(key, "alt+")); ok {
			m.insertAccent(letter)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func accentFor(key string) (string, bool) {
	for _, a := range Accents {
		if a.Key == key {
			return a.Letter, true
		}
	}
	return "", false
}

func (m *Model) insertAccent(letter string) {
	if m.submitted {
		return
	}
	runes := []rune(m.input.Value())
	pos := m.input.Position()
	if pos > len(runes) {
		pos = len(runes)
	}
	value := string(runes[:pos]) + letter + string(runes[pos:])
	m.input.SetValue(value)
	m.input.SetCursor(pos + 1)
}

func (m *Model) togglePool() {
	if m.pool == lexicon.PoolTop {
		m.pool = lexicon.PoolAll
	} else {
		m.pool = lexicon.PoolTop
	}
	m.log.WithField("pool", m.pool).Debug("verb pool switched")
	m.nextQuestion()
}

func (m *Model) toggleGallery() {
	m.showGallery = !m.showGallery
	if m.showGallery {
		m.gallery.SetRows(galleryRows(m.tracker.Unlocked()))
		m.gallery.GotoTop()
		m.gallery.Focus()
		return
	}
	m.gallery.Blur()
}

func (m *Model) nextQuestion() {
	m.submitted = false
	m.correct = false
	m.given = ""
	m.rewards = nil
	m.errMsg = ""
	m.input.Reset()
	m.input.Focus()

	q, err := m.gen.Generate(m.pools.verbs(m.pool))
	if err != nil {
		m.log.WithError(err).WithField("pool", m.pool).Error("failed to generate question")
		m.errMsg = fmt.Sprintf("Could not generate a question: %v", err)
		m.question = model.Question{}
		return
	}
	m.question = q
}

func (m *Model) submit() {
	given := strings.TrimSpace(m.input.Value())
	if given == "" {
		return
	}
	m.submitted = true
	m.given = given
	m.correct = generator.CheckAnswer(given, m.question.Answer)
	m.input.Blur()
	if m.correct {
		m.score++
	}

	ctx := context.Background()
	res, err := m.tracker.Submit(ctx, m.question, m.correct)
	if err != nil {
		m.log.WithError(err).Warn("failed to persist progress")
	}
	m.streak = res.Streak
	m.rewards = res.Rewards
	for _, r := range res.Rewards {
		m.log.WithFields(logrus.Fields{"asset": r.Asset, "category": r.Category}).Info("reward unlocked")
	}
	m.recordAnswer(ctx, given)
}

func (m *Model) recordAnswer(ctx context.Context, given string) {
	if m.answers == nil {
		return
	}
	q := m.question
	_, err := m.answers.InsertAnswer(ctx, model.Answer{
		SessionID:  m.sessionID,
		AnsweredAt: m.now(),
		Verb:       q.Verb,
		Mood:       q.Mood,
		Tense:      q.Tense,
		Subject:    q.Subject,
		Reflexive:  q.Reflexive,
		Expected:   q.Answer,
		Given:      given,
		Correct:    m.correct,
	})
	if err != nil {
		m.log.WithError(err).Warn("failed to record answer")
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	if m.showGallery {
		content = m.renderGallery()
	} else {
		content = m.renderDrill()
	}
	if m.width == 0 || m.height == 0 {
		return content + "\n" + m.renderFooter()
	}
	footer := m.renderFooter()
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	return maxInt(1, int(float64(m.width)*0.70))
}

func (m *Model) renderDrill() string {
	width := m.contentWidth()
	var sections []string
	if m.tracker.AllCompleted() {
		sections = append(sections, bannerStyle.Render("All achievements completed!"), "")
	}
	if m.errMsg != "" {
		sections = append(sections, incorrectStyle.Render(m.errMsg), "", footerStyle.Render("enter: retry · ctrl+t: switch pool"))
		return strings.Join(sections, "\n")
	}
	sections = append(sections,
		wrapStyledRunes(buildPromptRunes(generator.Prompt(m.question)), width),
		"",
		m.input.View(),
		footerStyle.Render(accentHint()),
		"",
	)
	if m.submitted {
		sections = append(sections, m.renderFeedback(width)...)
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderFeedback(width int) []string {
	if m.correct {
		lines := []string{correctStyle.Render("✓ Correct!")}
		for _, r := range m.rewards {
			lines = append(lines, rewardStyle.Render(fmt.Sprintf("New achievement! %s (%s) · unlocked %s", r.Description, r.Category, r.Asset)))
		}
		return append(lines, "", footerStyle.Render("enter: next question"))
	}
	return []string{
		incorrectStyle.Render("✗ Incorrect. Correct answer: ") + promptStyle.Render(m.question.Answer),
		wrapStyledRunes(buildDiffRunes([]rune(m.question.Answer), []rune(m.given)), width),
		"",
		footerStyle.Render("enter: next question"),
	}
}

func accentHint() string {
	parts := make([]string, 0, len(Accents))
	for _, a := range Accents {
		parts = append(parts, a.Key+" "+a.Letter)
	}
	return "alt+ " + strings.Join(parts, "  ")
}

func (m *Model) renderGallery() string {
	unlocked := len(m.tracker.Unlocked())
	title := galleryTitleStyle.Render(fmt.Sprintf("Achievement Gallery (%d/%d)", unlocked, m.tracker.TotalRewards()))
	progress := footerStyle.Render(fmt.Sprintf("Achievements earned: %d/%d", m.tracker.EarnedCount(), m.tracker.TotalMilestones()))
	if unlocked == 0 {
		return strings.Join([]string{title, "", pendingStyle.Render("No rewards unlocked yet."), "", progress}, "\n")
	}
	return strings.Join([]string{title, "", m.gallery.View(), "", progress}, "\n")
}

func (m *Model) renderFooter() string {
	segments := []string{
		fmt.Sprintf("Score %d", m.score),
		fmt.Sprintf("Streak %d", m.streak),
		fmt.Sprintf("Gallery %d/%d", len(m.tracker.Unlocked()), m.tracker.TotalRewards()),
		fmt.Sprintf("Pool %s", m.pool),
	}
	return footerStyle.Render(strings.Join(segments, " · "))
}

func newGalleryTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Reward", Width: 28},
			{Title: "Milestone", Width: 36},
		}),
		table.WithHeight(10),
	)
	t.SetStyles(galleryTableStyles())
	return t
}

func galleryRows(unlocked []model.Unlocked) []table.Row {
	rows := make([]table.Row, 0, len(unlocked))
	for i, u := range unlocked {
		rows = append(rows, table.Row{fmt.Sprintf("%d", i+1), u.Asset, u.Description})
	}
	return rows
}

func galleryTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
