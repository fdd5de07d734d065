package main

import (
	"log/slog"
	"os"

	"github.com/integrii/flaggy"
	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/levelgen/internal/config"
	"github.com/vancomm/levelgen/internal/engine"
	"github.com/vancomm/levelgen/internal/preview"
	"github.com/vancomm/levelgen/internal/rule"
)

var defaultStages = []string{"rules.png", "cleanup.png", "reshape.png"}

type options struct {
	start   string
	stages  []string
	count   int
	out     string
	trials  int
	seed    string
	preview bool
}

func parseOptions() *options {
	o := &options{
		start: "start.png",
		count: 5,
		out:   "result%d.png",
	}
	flaggy.SetName("levelgen")
	flaggy.SetDescription("Grows levels by applying rewrite rules drawn as images")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.String(&o.start, "s", "start", "Image of the starting level")
	flaggy.StringSlice(&o.stages, "r", "stage", "Rule set image, applied in the order given (repeatable)")
	flaggy.Int(&o.count, "n", "count", "Number of levels to generate")
	flaggy.String(&o.out, "o", "out", "Output path pattern with a single %d for the level index")
	flaggy.Int(&o.trials, "t", "trials", "Trials per rule set (overrides LEVELGEN_TRIALS)")
	flaggy.String(&o.seed, "", "seed", "Random seed (overrides LEVELGEN_SEED)")
	flaggy.Bool(&o.preview, "p", "preview", "Print every generated level to the terminal")

	flaggy.Parse()

	if len(o.stages) == 0 {
		o.stages = defaultStages
	}
	if o.count < 0 {
		flaggy.ShowHelpAndExit("count must not be negative")
	}
	if !validOutPattern(o.out) {
		flaggy.ShowHelpAndExit("out must contain exactly one %d")
	}
	return o
}

func setupLogging() *slog.Logger {
	if config.Development() {
		for _, l := range []*logrus.Logger{rule.Log, engine.Log} {
			l.SetLevel(logrus.DebugLevel)
			l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
		}
		return slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}

func main() {
	o := parseOptions()
	logger := setupLogging()

	genConfig, err := config.NewGeneration()
	if err != nil {
		logger.Error("failed to read generation config", slog.Any("error", err))
		os.Exit(1)
	}
	if o.trials > 0 {
		genConfig.Trials = o.trials
	}
	if o.seed != "" {
		seed, err := config.ParseSeed(o.seed)
		if err != nil {
			flaggy.ShowHelpAndExit(err.Error())
		}
		genConfig.Seed, genConfig.Seeded = seed, true
	}

	rnd := createRand()
	if genConfig.Seeded {
		rnd = seededRand(genConfig.Seed)
	}

	app := &application{
		logger: logger,
		gen:    engine.New(genConfig.Trials, rnd),
		start:  o.start,
		stages: o.stages,
		count:  o.count,
		out:    o.out,
		stdout: os.Stdout,
	}
	if o.preview {
		app.renderer = preview.New(true)
	}

	logger.Info("generating levels",
		slog.String("start", o.start),
		slog.Any("stages", o.stages),
		slog.Int("count", o.count),
		slog.Int("trials", genConfig.Trials),
		slog.Bool("seeded", genConfig.Seeded),
	)

	if err := app.run(); err != nil {
		logger.Error("generation aborted", slog.Any("error", err))
		os.Exit(1)
	}
}
