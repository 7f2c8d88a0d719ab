// Package main provides the CLI entrypoint for coucou.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/coucou/internal/achievement"
	"github.com/verte-zerg/coucou/internal/config"
	"github.com/verte-zerg/coucou/internal/conjugate"
	"github.com/verte-zerg/coucou/internal/generator"
	"github.com/verte-zerg/coucou/internal/lexicon"
	"github.com/verte-zerg/coucou/internal/logging"
	"github.com/verte-zerg/coucou/internal/model"
	"github.com/verte-zerg/coucou/internal/stats"
	"github.com/verte-zerg/coucou/internal/store"
	"github.com/verte-zerg/coucou/internal/tui"
	"github.com/verte-zerg/coucou/internal/wordlist"
)

const (
	defaultPool        = string(lexicon.PoolAll)
	defaultCurveWindow = 5
	defaultWeakTop     = 3
)

var (
	practicePool          string
	practiceReflexiveProb float64
	practiceMaxAttempts   int
	practiceRewardDir     string
	practiceRewardExts    []string
	practiceVerbs         string

	dataDir   string
	logLevel  string
	logFormat string
	logFile   string

	conjMood      string
	conjTense     string
	conjSubject   string
	conjReflexive bool

	verbsTop bool

	statsSince       string
	statsLast        int
	statsCurveWindow int
	statsWeakTop     int

	resetYes     bool
	resetAnswers bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "coucou",
		Short:         "French verb conjugation drill",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practicePool, "pool", defaultPool, "verb pool: all or top")
	rootCmd.Flags().Float64Var(&practiceReflexiveProb, "reflexive-prob", generator.DefaultReflexiveProb, "probability of a reflexive question (0-1)")
	rootCmd.Flags().IntVar(&practiceMaxAttempts, "max-attempts", generator.DefaultMaxAttempts, "draws before giving up on a question")
	rootCmd.Flags().StringVar(&practiceRewardDir, "reward-dir", config.DefaultRewardDir(), "directory of reward assets")
	rootCmd.Flags().StringSliceVar(&practiceRewardExts, "reward-exts", achievement.DefaultRewardExts, "reward asset extensions")
	rootCmd.Flags().StringVar(&practiceVerbs, "verbs", "", "file with one infinitive per line replacing the full pool")
	rootCmd.Flags().StringVar(&logFile, "log-file", config.DefaultLogPath(), "log file used while the drill runs")

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", config.DefaultDataDir(), "directory holding the verb data files")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logging.DefaultFormat, "log format (text or json)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newConjugateCmd())
	rootCmd.AddCommand(newVerbsCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newAchievementsCmd())
	rootCmd.AddCommand(newProgressCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "pool", &practicePool, fileCfg.Practice.Pool)
	applyFloatConfig(cmd, "reflexive-prob", &practiceReflexiveProb, fileCfg.Practice.ReflexiveProb)
	applyIntConfig(cmd, "max-attempts", &practiceMaxAttempts, fileCfg.Practice.MaxAttempts)
	applyStringConfig(cmd, "reward-dir", &practiceRewardDir, fileCfg.Practice.RewardDir)
	applyStringSliceConfig(cmd, "reward-exts", &practiceRewardExts, fileCfg.Practice.RewardExts)
	applyStringConfig(cmd, "verbs", &practiceVerbs, fileCfg.Practice.Verbs)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)

	cfg := model.Config{
		Pool:          practicePool,
		ReflexiveProb: practiceReflexiveProb,
		MaxAttempts:   practiceMaxAttempts,
		DataDir:       dataDir,
		RewardDir:     practiceRewardDir,
		RewardExts:    practiceRewardExts,
		VerbsFile:     practiceVerbs,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	pool, err := lexicon.ParsePool(cfg.Pool)
	if err != nil {
		return err
	}

	out, err := logging.OpenFile(logFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()
	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	lex, err := loadLexicon(cfg.DataDir, logger)
	if err != nil {
		return err
	}
	pools := tui.Pools{All: lex.AllVerbs(), Top: lex.TopVerbs()}
	if cfg.VerbsFile != "" {
		pools.All, err = loadCustomVerbs(cfg.VerbsFile, lex, logger)
		if err != nil {
			return err
		}
	}

	st, err := openStore(logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	tracker, err := newTracker(context.Background(), st, cfg, logger)
	if err != nil {
		return err
	}

	engine := conjugate.New(lex)
	gen := generator.New(engine, lex,
		generator.WithReflexiveProb(cfg.ReflexiveProb),
		generator.WithMaxAttempts(cfg.MaxAttempts),
		generator.WithSkipHook(func(q model.Question, err error) {
			logger.WithFields(logrus.Fields{
				"verb":  q.Verb,
				"mood":  q.Mood,
				"tense": q.Tense,
			}).WithError(err).Debug("question skipped")
		}),
	)

	drill := tui.NewModel(pool, pools, gen, tracker, st, logger)
	program := tea.NewProgram(drill, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newConjugateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conjugate VERB",
		Short: "Print a conjugated form or table",
		Args:  cobra.ExactArgs(1),
		RunE:  runConjugateCmd,
	}
	cmd.Flags().StringVar(&conjMood, "mood", model.MoodIndicative, "mood (indicative, conditional, subjunctive, imperative)")
	cmd.Flags().StringVar(&conjTense, "tense", "present", "tense, e.g. present or past-perfect")
	cmd.Flags().StringVar(&conjSubject, "subject", "", "subject pronoun; all subjects when empty")
	cmd.Flags().BoolVar(&conjReflexive, "reflexive", false, "reflexive use")
	return cmd
}

func runConjugateCmd(cmd *cobra.Command, args []string) error {
	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	if !model.IsValidMoodTense(conjMood, conjTense) {
		return fmt.Errorf("unknown mood/tense %s/%s", conjMood, conjTense)
	}
	lex, err := loadLexicon(dataDir, logger)
	if err != nil {
		return err
	}
	verb := wordlist.Normalize(args[0])
	if !lex.IsKnown(verb) {
		return fmt.Errorf("unknown verb %q", verb)
	}
	subjects := model.SubjectsFor(conjMood)
	if conjSubject != "" {
		subjects = []string{conjSubject}
	}
	engine := conjugate.New(lex)
	w := cmd.OutOrStdout()
	for _, subject := range subjects {
		form, err := engine.Conjugate(verb, conjMood, conjTense, subject, conjReflexive)
		if err != nil {
			return fmt.Errorf("failed to conjugate %s: %w", verb, err)
		}
		line := form
		if len(subjects) > 1 {
			line = fmt.Sprintf("%-6s %s", subject, form)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newVerbsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verbs",
		Short: "List known verbs",
		Args:  cobra.NoArgs,
		RunE:  runVerbsCmd,
	}
	cmd.Flags().BoolVar(&verbsTop, "top", false, "list only the common verbs")
	return cmd
}

func runVerbsCmd(cmd *cobra.Command, _ []string) error {
	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	lex, err := loadLexicon(dataDir, logger)
	if err != nil {
		return err
	}
	pool := lexicon.PoolAll
	if verbsTop {
		pool = lexicon.PoolTop
	}
	for _, verb := range lex.Verbs(pool) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), verb); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show practice stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().IntVar(&statsWeakTop, "weak-top", defaultWeakTop, "number of weak tenses to suggest")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	cfg := model.StatsConfig{
		Since:       sinceTime,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
		WeakTop:     statsWeakTop,
	}

	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	st, err := openStore(logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	report, err := stats.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	w := cmd.OutOrStdout()
	if err := stats.Render(w, report, cfg, stats.TerminalWidth(w)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show achievement progress",
		Args:  cobra.NoArgs,
		RunE:  runAchievementsCmd,
	}
	cmd.Flags().StringVar(&practiceRewardDir, "reward-dir", config.DefaultRewardDir(), "directory of reward assets")
	cmd.Flags().StringSliceVar(&practiceRewardExts, "reward-exts", achievement.DefaultRewardExts, "reward asset extensions")
	return cmd
}

func runAchievementsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "reward-dir", &practiceRewardDir, fileCfg.Practice.RewardDir)
	applyStringSliceConfig(cmd, "reward-exts", &practiceRewardExts, fileCfg.Practice.RewardExts)
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	st, err := openStore(logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	cfg := model.Config{RewardDir: practiceRewardDir, RewardExts: practiceRewardExts}
	tracker, err := newTracker(context.Background(), st, cfg, logger)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), renderAchievements(tracker)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Export, import or reset achievement progress",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "export FILE",
		Short: "Write progress as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runProgressExportCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "import FILE",
		Short: "Replace progress with a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  runProgressImportCmd,
	})
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete achievement progress",
		Args:  cobra.NoArgs,
		RunE:  runProgressResetCmd,
	}
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm the reset")
	resetCmd.Flags().BoolVar(&resetAnswers, "answers", false, "also delete the answer history")
	cmd.AddCommand(resetCmd)
	return cmd
}

func runProgressExportCmd(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(ctx context.Context, st *store.Store, logger *logrus.Logger) error {
		res := st.LoadProgress(ctx)
		if res.Status == store.LoadReset {
			logger.WithError(res.Err).Warn("stored progress unreadable; exporting defaults")
		}
		data, err := json.MarshalIndent(res.Progress, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode progress: %w", err)
		}
		if err := writeFileAtomic(args[0], append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write %s: %w", args[0], err)
		}
		logErrf("Wrote %s\n", args[0])
		return nil
	})
}

func runProgressImportCmd(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	var p model.Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to decode %s: %w", args[0], err)
	}
	if p.Counters == nil {
		p.Counters = map[string]int{}
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid progress in %s: %w", args[0], err)
	}
	return withStore(cmd, func(ctx context.Context, st *store.Store, _ *logrus.Logger) error {
		if err := st.SaveProgress(ctx, p); err != nil {
			return fmt.Errorf("failed to save progress: %w", err)
		}
		logErrf("Imported %d earned achievements and %d rewards\n", len(p.Earned), len(p.Unlocked))
		return nil
	})
}

func runProgressResetCmd(cmd *cobra.Command, _ []string) error {
	if !resetYes {
		return fmt.Errorf("refusing to reset progress without --yes")
	}
	return withStore(cmd, func(ctx context.Context, st *store.Store, _ *logrus.Logger) error {
		if err := st.ResetProgress(ctx); err != nil {
			return fmt.Errorf("failed to reset progress: %w", err)
		}
		if resetAnswers {
			if err := st.ClearAnswers(ctx); err != nil {
				return fmt.Errorf("failed to clear answers: %w", err)
			}
		}
		logErrln("Progress reset")
		return nil
	})
}

func withStore(cmd *cobra.Command, fn func(ctx context.Context, st *store.Store, logger *logrus.Logger) error) error {
	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	st, err := openStore(logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	return fn(context.Background(), st, logger)
}

func loadFileConfig(cmd *cobra.Command) (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "data-dir", &dataDir, fileCfg.Practice.DataDir)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-format", &logFormat, fileCfg.Log.Format)
	return fileCfg, nil
}

func newLogger(out io.Writer) (*logrus.Logger, error) {
	logger, err := logging.New(logLevel, logFormat, out)
	if err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	return logger, nil
}

func loadLexicon(dir string, logger logrus.FieldLogger) (*lexicon.Lexicon, error) {
	lex, err := lexicon.Load(os.DirFS(dir), lexicon.DefaultFiles())
	if err != nil {
		return nil, dataLoadError(dir, err)
	}
	for _, c := range lex.Ambiguous() {
		logger.WithFields(logrus.Fields{
			"verb":    c.Infinitive,
			"kept":    c.Kept,
			"ignored": c.Ignored,
		}).Warn("ambiguous paradigm keys")
	}
	for _, verb := range lex.DroppedTop() {
		logger.WithField("verb", verb).Debug("common verb not in lexicon")
	}
	logger.WithFields(logrus.Fields{
		"verbs": len(lex.AllVerbs()),
		"top":   len(lex.TopVerbs()),
	}).Debug("lexicon loaded")
	return lex, nil
}

func loadCustomVerbs(path string, lex *lexicon.Lexicon, logger logrus.FieldLogger) ([]string, error) {
	words, err := wordlist.LoadWords(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load verb list %s: %w", path, err)
	}
	kept, dropped := wordlist.Split(words, lex.IsKnown)
	for _, verb := range dropped {
		logger.WithField("verb", verb).Warn("unknown verb in verb list")
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("verb list %s has no known verbs", path)
	}
	return kept, nil
}

func openStore(logger logrus.FieldLogger) (*store.Store, error) {
	storePath := config.DefaultDBPath()
	st, moved, err := store.OpenOrReset(storePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if moved != "" {
		logger.WithField("moved_to", moved).Warn("unreadable database replaced")
	}
	return st, nil
}

func newTracker(ctx context.Context, st *store.Store, cfg model.Config, logger logrus.FieldLogger) (*achievement.Tracker, error) {
	assets, err := achievement.LoadAssets(cfg.RewardDir, cfg.RewardExts)
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		logger.WithField("dir", cfg.RewardDir).Info("no reward assets found")
	}
	res := st.LoadProgress(ctx)
	if res.Status == store.LoadReset {
		logger.WithError(res.Err).Warn("stored progress unreadable; starting fresh")
	}
	tracker, err := achievement.NewTracker(achievement.DefaultCategories(), assets, res.Progress,
		achievement.WithSaver(st),
		achievement.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to restore achievements: %w", err)
	}
	return tracker, nil
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "progress-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyStringSliceConfig(cmd *cobra.Command, name string, target, value *[]string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = append([]string(nil), (*value)...)
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# coucou configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# pool = %q              # Verb pool: "all" or "top"
# reflexive-prob = %.2f    # Probability of a reflexive question (0-1)
# max-attempts = %d        # Draws before giving up on a question
# data-dir = %q
# reward-dir = %q
# reward-exts = [".gif", ".png", ".jpg"]
# verbs = ""               # File with one infinitive per line

[log]
# level = %q             # debug, info, warn, error
# format = %q            # text or json
# file = %q
`,
		defaultPool,
		generator.DefaultReflexiveProb,
		generator.DefaultMaxAttempts,
		config.DefaultDataDir(),
		config.DefaultRewardDir(),
		logging.DefaultLevel,
		logging.DefaultFormat,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.ReflexiveProb < 0 || cfg.ReflexiveProb > 1 {
		return fmt.Errorf("--reflexive-prob must be between 0 and 1")
	}
	if cfg.MaxAttempts <= 0 {
		return fmt.Errorf("--max-attempts must be > 0")
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("--data-dir must not be empty")
	}
	return nil
}

func dataLoadError(dir string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load verb data: %v", err),
		fmt.Sprintf("expected data files in: %s", dir),
		fmt.Sprintf("required: %s, %s, %s, %s",
			lexicon.VerbsFile, lexicon.ParadigmsFile, lexicon.TopVerbsFile, lexicon.NonReflexiveFile),
		"Set another location with --data-dir or data-dir in: coucou config",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
