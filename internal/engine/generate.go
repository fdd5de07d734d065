package engine

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/levelgen/internal/grid"
	"github.com/vancomm/levelgen/internal/rule"
)

var Log = logrus.New()

const DefaultTrials = 1000

// Chooser picks an integer uniformly from [0, n). A *rand.Rand from
// math/rand/v2 satisfies it.
type Chooser interface {
	IntN(n int) int
}

func choose[T any](c Chooser, items []T) T {
	return items[c.IntN(len(items))]
}

// Stage is one rule set with every rule expanded into its four rotations.
type Stage struct {
	Name  string
	Rules []rule.Rule
}

func NewStage(name string, rules []rule.Rule) Stage {
	stage := Stage{
		Name:  name,
		Rules: make([]rule.Rule, 0, 4*len(rules)),
	}
	for _, r := range rules {
		rots := r.Rotations()
		stage.Rules = append(stage.Rules, rots[:]...)
	}
	return stage
}

type StageStats struct {
	Name    string
	Trials  int
	Applied int
	Skipped int // trials where the chosen rule had no legal offset
}

type Generator struct {
	Trials int
	Rand   Chooser
}

func New(trials int, rnd Chooser) *Generator {
	if trials <= 0 {
		trials = DefaultTrials
	}
	return &Generator{Trials: trials, Rand: rnd}
}

// Step runs a single trial: pick a rule, pick one of its legal offsets and
// apply it. It reports whether level changed.
func (gen *Generator) Step(level grid.Grid, stage Stage) bool {
	if len(stage.Rules) == 0 {
		return false
	}
	r := choose(gen.Rand, stage.Rules)
	shifts := ValidShifts(level, r)
	if len(shifts) == 0 {
		return false
	}
	offset := choose(gen.Rand, shifts)
	Log.WithFields(logrus.Fields{
		"stage":  stage.Name,
		"offset": offset,
	}).Debug("applying rule")
	Apply(level, r, offset)
	return true
}

// RunStage spends the whole trial budget on one stage. It never stops early,
// even when no rule can be applied anymore.
func (gen *Generator) RunStage(level grid.Grid, stage Stage) StageStats {
	stats := StageStats{Name: stage.Name, Trials: gen.Trials}
	if len(stage.Rules) == 0 {
		Log.WithField("stage", stage.Name).Warn("stage has no rules")
	}
	for range gen.Trials {
		if gen.Step(level, stage) {
			stats.Applied++
		} else {
			stats.Skipped++
		}
	}
	Log.WithFields(logrus.Fields{
		"stage":   stats.Name,
		"applied": stats.Applied,
		"skipped": stats.Skipped,
	}).Debug("stage done")
	return stats
}

/*
Run evolves level in place through stages, strictly in the given order.

A broken invariant while rewriting is returned as an [AssertionError];
level is left in whatever state the failing rewrite produced.
*/
func (gen *Generator) Run(level grid.Grid, stages ...Stage) (stats []StageStats, err error) {
	defer func() {
		if r := recover(); r != nil {
			var ae AssertionError
			if e, ok := r.(error); ok && errors.As(e, &ae) {
				stats, err = nil, ae
				return
			}
			panic(r)
		}
	}()

	if len(level) == 0 {
		return nil, grid.ErrEmptyGrid
	}
	for _, stage := range stages {
		stats = append(stats, gen.RunStage(level, stage))
	}
	return stats, nil
}
