package evaluate

import (
	"errors"

	"github.com/katalvlaran/geodecraft/search"
)

// Default horizons and batch size of the two scoring modes.
const (
	QualityHorizon = 24
	ProductHorizon = 32
	DefaultTopN    = 3
)

// Sentinel errors.
var (
	// ErrNilBlueprint indicates a nil entry in the blueprint batch.
	ErrNilBlueprint = errors.New("evaluate: blueprint is nil")

	// ErrBadTopN indicates TopN < 1.
	ErrBadTopN = errors.New("evaluate: top_n must be at least 1")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("evaluate: workers must be non-negative")

	// ErrBadHorizon indicates a horizon outside [0, search.MaxHorizon].
	ErrBadHorizon = errors.New("evaluate: horizon out of range")

	// ErrOverflow indicates that the aggregate score does not fit in an int.
	ErrOverflow = errors.New("evaluate: score overflows int")

	// ErrUnknownMode indicates a Mode other than ModeQualitySum or ModeTopProduct.
	ErrUnknownMode = errors.New("evaluate: unknown mode")
)

// Mode selects how per-blueprint optima are combined.
type Mode string

const (
	// ModeQualitySum sums id·geodes over every blueprint.
	ModeQualitySum Mode = "quality_sum"

	// ModeTopProduct multiplies the geodes of the first TopN blueprints.
	ModeTopProduct Mode = "top_product"
)

// Horizon returns the default horizon of m, or 0 for an unknown mode.
func (m Mode) Horizon() int {
	switch m {
	case ModeQualitySum:
		return QualityHorizon
	case ModeTopProduct:
		return ProductHorizon
	default:
		return 0
	}
}

// Options configures an evaluation run.
type Options struct {
	Horizon  int                  // minutes per search
	TopN     int                  // batch prefix scored by ModeTopProduct
	Workers  int                  // pool size; 0 selects runtime.GOMAXPROCS(0)
	Search   []search.Option      // forwarded to every search
	OnScored func(id, geodes int) // called from workers; must be concurrency-safe
}

// Option represents a functional option for an evaluation run.
type Option func(*Options)

// DefaultOptions returns the defaults of mode m: its horizon, TopN = 3,
// automatic worker count and the default (exact) search.
func DefaultOptions(m Mode) Options {
	return Options{
		Horizon: m.Horizon(),
		TopN:    DefaultTopN,
	}
}

// WithHorizon overrides the mode's default horizon.
func WithHorizon(minutes int) Option {
	return func(o *Options) { o.Horizon = minutes }
}

// WithTopN sets how many leading blueprints ModeTopProduct scores.
func WithTopN(n int) Option {
	return func(o *Options) { o.TopN = n }
}

// WithWorkers sets the pool size; 0 means one worker per available CPU.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSearchOptions appends search options applied to every blueprint.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}

// WithOnScored installs a progress hook. It runs on worker goroutines.
func WithOnScored(fn func(id, geodes int)) Option {
	return func(o *Options) { o.OnScored = fn }
}

// Entry is the optimum of one blueprint.
type Entry struct {
	ID     int `yaml:"id"`
	Geodes int `yaml:"geodes"`
}

// Report is the outcome of one run: the scored entries in input order and
// the aggregate score.
type Report struct {
	Mode    Mode    `yaml:"mode"`
	Horizon int     `yaml:"horizon"`
	Entries []Entry `yaml:"entries"`
	Score   int     `yaml:"score"`
}
