// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Pool          string
	ReflexiveProb float64
	MaxAttempts   int
	DataDir       string
	RewardDir     string
	RewardExts    []string
	VerbsFile     string
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Since       *time.Time
	Last        int
	CurveWindow int
	WeakTop     int
}

// Question is one drill prompt together with its canonical answer.
type Question struct {
	Verb      string
	Mood      string
	Tense     string
	Subject   string
	Reflexive bool
	Answer    string
}

// Reward is a reward asset unlocked by a milestone.
type Reward struct {
	Asset       string
	Description string
	Category    string
}

// SubmissionResult is returned to the shell after an answer is checked.
type SubmissionResult struct {
	Correct      bool
	Streak       int
	TotalCorrect int
	Rewards      []Reward
}

// Answer is one submitted answer as recorded in the answer log.
type Answer struct {
	SessionID  string
	AnsweredAt time.Time
	Verb       string
	Mood       string
	Tense      string
	Subject    string
	Reflexive  bool
	Expected   string
	Given      string
	Correct    bool
}

// TenseAggregate aggregates answers for one (mood, tense) pair.
type TenseAggregate struct {
	Mood      string
	Tense     string
	Correct   int
	Incorrect int
}

// VerbAggregate aggregates answers for one verb.
type VerbAggregate struct {
	Verb      string
	Correct   int
	Incorrect int
}

// SessionAggregate summarizes a drill session for reporting.
type SessionAggregate struct {
	SessionID string
	StartedAt time.Time
	EndedAt   time.Time
	Correct   int
	Incorrect int
}
