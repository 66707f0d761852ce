package evaluate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geodecraft/search"
)

// Config is a YAML run description:
//
//	mode: top_product   # or quality_sum
//	horizon: 32         # 0 or omitted: the mode's default
//	top_n: 3
//	workers: 0          # 0: one per CPU
//	search:
//	  terminal: first   # first | greedy
//	  pruning: supply   # supply | capacity | none
//	  bound: optimistic # optimistic | none
//	  idle_skip: true
type Config struct {
	Mode    Mode         `yaml:"mode"`
	Horizon int          `yaml:"horizon"`
	TopN    int          `yaml:"top_n"`
	Workers int          `yaml:"workers"`
	Search  SearchConfig `yaml:"search"`
}

// SearchConfig names the search policies by their String forms.
type SearchConfig struct {
	Terminal string `yaml:"terminal"`
	Pruning  string `yaml:"pruning"`
	Bound    string `yaml:"bound"`
	IdleSkip bool   `yaml:"idle_skip"`
}

// DefaultConfig is the configuration used for omitted fields: quality-sum
// mode at its default horizon with the exact search.
func DefaultConfig() Config {
	d := search.DefaultOptions()
	return Config{
		Mode: ModeQualitySum,
		TopN: DefaultTopN,
		Search: SearchConfig{
			Terminal: d.Terminal.String(),
			Pruning:  d.Pruning.String(),
			Bound:    d.Bound.String(),
			IdleSkip: d.IdleSkip,
		},
	}
}

// LoadConfig reads a YAML run description. An empty path yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultConfig(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("evaluate config: %w", err)
	}

	return ParseConfig(b)
}

// ParseConfig decodes a YAML run description over DefaultConfig and
// validates the result. Unknown keys are rejected; an empty document is
// the default configuration.
func ParseConfig(b []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("evaluate config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("evaluate config: %w", err)
	}

	return cfg, nil
}

// Validate checks ranges and policy names.
func (c Config) Validate() error {
	if c.Mode != ModeQualitySum && c.Mode != ModeTopProduct {
		return ErrUnknownMode
	}
	if c.Horizon < 0 || c.Horizon > search.MaxHorizon {
		return ErrBadHorizon
	}
	if c.TopN < 1 {
		return ErrBadTopN
	}
	if c.Workers < 0 {
		return ErrBadWorkers
	}
	_, err := c.Search.Options()

	return err
}

// Options converts the named policies into search options.
func (c SearchConfig) Options() ([]search.Option, error) {
	terminal, err := search.ParseTerminalPolicy(c.Terminal)
	if err != nil {
		return nil, fmt.Errorf("terminal %q: %w", c.Terminal, err)
	}
	pruning, err := search.ParsePruneMode(c.Pruning)
	if err != nil {
		return nil, fmt.Errorf("pruning %q: %w", c.Pruning, err)
	}
	bound, err := search.ParseBoundAlgo(c.Bound)
	if err != nil {
		return nil, fmt.Errorf("bound %q: %w", c.Bound, err)
	}

	return []search.Option{search.WithOptions(search.Options{
		Terminal: terminal,
		Pruning:  pruning,
		Bound:    bound,
		IdleSkip: c.IdleSkip,
	})}, nil
}
