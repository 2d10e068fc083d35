package puzzle

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// PartResult is the outcome of one part.
type PartResult struct {
	Part    int
	Answer  any
	Elapsed time.Duration
}

// Result holds both parts of a day.
type Result struct {
	Day   int
	Title string
	Parts [2]PartResult
}

// Option configures a Runner.
type Option func(*Options)

// Options holds Runner settings.
type Options struct {
	// Logger receives one entry per solved part. Defaults to a logger
	// writing nowhere.
	Logger *logrus.Logger
	// Inputs is where dayNN.txt files are read from. Defaults to os.DirFS("inputs").
	Inputs fs.FS
	// Registry supplies solutions. Defaults to Default.
	Registry *Registry
	// Now is the clock used for timing. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns the Runner defaults.
func DefaultOptions() Options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return Options{
		Logger:   discard,
		Inputs:   os.DirFS("inputs"),
		Registry: Default,
		Now:      time.Now,
	}
}

// WithLogger sets the logger.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithInputDir reads inputs from dir on disk.
func WithInputDir(dir string) Option {
	return func(o *Options) { o.Inputs = os.DirFS(dir) }
}

// WithFS reads inputs from fsys.
func WithFS(fsys fs.FS) Option {
	return func(o *Options) { o.Inputs = fsys }
}

// WithRegistry looks solutions up in r instead of Default.
func WithRegistry(r *Registry) Option {
	return func(o *Options) { o.Registry = r }
}

// WithClock replaces time.Now for elapsed-time measurement.
func WithClock(now func() time.Time) Option {
	return func(o *Options) { o.Now = now }
}

// Runner executes registered solutions.
type Runner struct {
	opts Options
}

// NewRunner builds a Runner from DefaultOptions and opts.
func NewRunner(opts ...Option) *Runner {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Runner{opts: o}
}

// InputName is the file name holding the input for day.
func InputName(day int) string {
	return fmt.Sprintf("day%02d.txt", day)
}

// Run reads the input for day and solves both parts.
func (r *Runner) Run(day int) (Result, error) {
	sol, err := r.opts.Registry.Lookup(day)
	if err != nil {
		return Result{}, err
	}
	raw, err := fs.ReadFile(r.opts.Inputs, InputName(day))
	if err != nil {
		return Result{}, fmt.Errorf("%w: day %d: %w", ErrNoInput, day, err)
	}

	return r.solve(sol, string(raw))
}

// Solve runs both parts of day on text.
func (r *Runner) Solve(day int, text string) (Result, error) {
	sol, err := r.opts.Registry.Lookup(day)
	if err != nil {
		return Result{}, err
	}

	return r.solve(sol, text)
}

func (r *Runner) solve(sol Solution, text string) (Result, error) {
	res := Result{Day: sol.Day, Title: sol.Title}
	for i, part := range [2]PartFunc{sol.Part1, sol.Part2} {
		log := r.opts.Logger.WithFields(logrus.Fields{
			"day":  sol.Day,
			"part": i + 1,
		})
		start := r.opts.Now()
		answer, err := part(text)
		elapsed := r.opts.Now().Sub(start)
		if err != nil {
			log.WithError(err).Error("part failed")
			return res, fmt.Errorf("day %d part %d: %w", sol.Day, i+1, err)
		}
		log.WithFields(logrus.Fields{
			"answer":  answer,
			"elapsed": elapsed,
		}).Info("solved")
		res.Parts[i] = PartResult{Part: i + 1, Answer: answer, Elapsed: elapsed}
	}

	return res, nil
}
