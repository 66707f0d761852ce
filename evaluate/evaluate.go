package evaluate

import (
	"math"
	"runtime"
	"sync"

	"github.com/katalvlaran/geodecraft/blueprint"
	"github.com/katalvlaran/geodecraft/search"
	"github.com/katalvlaran/geodecraft/state"
)

// QualitySum scores every blueprint over QualityHorizon minutes (unless
// WithHorizon overrides it) and returns Σ id·geodes. An empty batch scores 0.
func QualitySum(bps []*blueprint.Blueprint, opts ...Option) (int, error) {
	rep, err := run(ModeQualitySum, bps, apply(ModeQualitySum, opts))
	if err != nil {
		return 0, err
	}

	return rep.Score, nil
}

// TopProduct scores the first TopN blueprints (fewer if the batch is
// shorter) over ProductHorizon minutes and returns the product of their
// optima. An empty batch scores 1.
func TopProduct(bps []*blueprint.Blueprint, opts ...Option) (int, error) {
	rep, err := run(ModeTopProduct, bps, apply(ModeTopProduct, opts))
	if err != nil {
		return 0, err
	}

	return rep.Score, nil
}

// Run evaluates bps as described by cfg. Extra options are applied after
// the ones derived from cfg (typically WithOnScored).
func Run(bps []*blueprint.Blueprint, cfg Config, extra ...Option) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	sopts, err := cfg.Search.Options()
	if err != nil {
		return Report{}, err
	}

	horizon := cfg.Horizon
	if horizon == 0 {
		horizon = cfg.Mode.Horizon()
	}
	opts := append([]Option{
		WithHorizon(horizon),
		WithTopN(cfg.TopN),
		WithWorkers(cfg.Workers),
		WithSearchOptions(sopts...),
	}, extra...)

	return run(cfg.Mode, bps, apply(cfg.Mode, opts))
}

// Scores returns the optimum of every blueprint over minutes minutes, in
// input order. The result equals a sequential loop over search.BestGeodes
// regardless of the worker count.
func Scores(bps []*blueprint.Blueprint, minutes int, opts ...Option) ([]int, error) {
	o := apply(ModeQualitySum, opts)
	o.Horizon = minutes
	if err := validate(bps, o); err != nil {
		return nil, err
	}

	return score(bps, o)
}

// apply layers opts over the defaults of mode m. Nil options are skipped.
func apply(m Mode, opts []Option) Options {
	o := DefaultOptions(m)
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func validate(bps []*blueprint.Blueprint, o Options) error {
	if o.Workers < 0 {
		return ErrBadWorkers
	}
	if o.Horizon < 0 || o.Horizon > search.MaxHorizon {
		return ErrBadHorizon
	}
	for _, bp := range bps {
		if bp == nil {
			return ErrNilBlueprint
		}
	}

	return nil
}

// run scores the blueprints selected by mode and aggregates them.
func run(mode Mode, bps []*blueprint.Blueprint, o Options) (Report, error) {
	if err := validate(bps, o); err != nil {
		return Report{}, err
	}
	if o.TopN < 1 {
		return Report{}, ErrBadTopN
	}

	var combine func([]Entry) (int, error)
	switch mode {
	case ModeQualitySum:
		combine = qualitySum
	case ModeTopProduct:
		if len(bps) > o.TopN {
			bps = bps[:o.TopN]
		}
		combine = product
	default:
		return Report{}, ErrUnknownMode
	}

	geodes, err := score(bps, o)
	if err != nil {
		return Report{}, err
	}
	rep := Report{
		Mode:    mode,
		Horizon: o.Horizon,
		Entries: make([]Entry, len(bps)),
	}
	for i, bp := range bps {
		rep.Entries[i] = Entry{ID: bp.ID(), Geodes: geodes[i]}
	}
	if rep.Score, err = combine(rep.Entries); err != nil {
		return Report{}, err
	}

	return rep, nil
}

// score runs one search per blueprint on a fixed worker pool. Each worker
// writes only its own slots; the first error by index wins.
func score(bps []*blueprint.Blueprint, o Options) ([]int, error) {
	n := len(bps)
	out := make([]int, n)
	if n == 0 {
		return out, nil
	}

	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	idxCh := make(chan int, n)
	for i := 0; i < n; i++ {
		idxCh <- i
	}
	close(idxCh)

	errs := make([]error, n)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idxCh {
				out[i], errs[i] = search.BestGeodes(state.Initial(), bps[i], o.Horizon, o.Search...)
				if errs[i] == nil && o.OnScored != nil {
					o.OnScored(bps[i].ID(), out[i])
				}
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// qualitySum returns Σ id·geodes with overflow detection.
func qualitySum(entries []Entry) (int, error) {
	sum := 0
	for _, e := range entries {
		term, ok := mulChecked(e.ID, e.Geodes)
		if !ok || sum > math.MaxInt-term {
			return 0, ErrOverflow
		}
		sum += term
	}

	return sum, nil
}

// product returns Π geodes with overflow detection; 1 for no entries.
func product(entries []Entry) (int, error) {
	p := 1
	for _, e := range entries {
		var ok bool
		if p, ok = mulChecked(p, e.Geodes); !ok {
			return 0, ErrOverflow
		}
	}

	return p, nil
}

// mulChecked multiplies two non-negative ints, reporting overflow.
func mulChecked(a, b int) (int, bool) {
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}

	return a * b, true
}
