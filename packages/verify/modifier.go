package verify

import (
	"slices"
	"sync/atomic"

	"github.com/abdul-hamid-achik/verify/packages/core/config"
	"github.com/microbus-io/errors"
)

// Modifier decides which form of a check the next assertion runs.
type Modifier int

const (
	Unset Modifier = iota
	Positive
	Negative
)

func (m Modifier) String() string {
	switch m {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "unset"
	}
}

// Vocabulary holds the conjunction names understood by the builders.
type Vocabulary struct {
	Positive []string
	Negative []string
	Neutral  []string
}

// Resolve returns the modifier that results from calling the named
// conjunction while current is in effect. Neutral conjunctions keep
// current. ok is false when the name is in no list.
func (v Vocabulary) Resolve(current Modifier, name string) (next Modifier, ok bool) {
	switch {
	case slices.Contains(v.Positive, name):
		return Positive, true
	case slices.Contains(v.Negative, name):
		return Negative, true
	case slices.Contains(v.Neutral, name):
		return current, true
	}
	return current, false
}

func (v Vocabulary) clone() Vocabulary {
	return Vocabulary{
		Positive: slices.Clone(v.Positive),
		Negative: slices.Clone(v.Negative),
		Neutral:  slices.Clone(v.Neutral),
	}
}

// VocabularyFromConfig builds a vocabulary from configured conjunctions.
func VocabularyFromConfig(c config.Conjunctions) Vocabulary {
	return Vocabulary{
		Positive: c.Positive,
		Negative: c.Negative,
		Neutral:  c.Neutral,
	}.clone()
}

// DefaultVocabulary returns the built-in conjunctions.
func DefaultVocabulary() Vocabulary {
	return VocabularyFromConfig(config.DefaultConfig().Conjunctions)
}

var (
	vocabulary     atomic.Pointer[Vocabulary]
	defaultVerbose atomic.Bool
)

func init() {
	v := DefaultVocabulary()
	vocabulary.Store(&v)
}

// CurrentVocabulary returns a copy of the process-wide vocabulary.
func CurrentVocabulary() Vocabulary {
	return vocabulary.Load().clone()
}

// SetVocabulary replaces the process-wide vocabulary used by builders
// created without WithVocabulary. It is meant to be called once, before
// tests run.
func SetVocabulary(v Vocabulary) {
	v = v.clone()
	vocabulary.Store(&v)
}

// Configure applies a configuration: its vocabulary becomes the
// process-wide vocabulary and its verbose flag the default verbosity.
func Configure(cfg *config.Config) error {
	if cfg == nil {
		return errors.New("nil configuration", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return errors.Trace(err)
	}
	SetVocabulary(VocabularyFromConfig(cfg.Conjunctions))
	defaultVerbose.Store(cfg.GetVerbose())
	return nil
}
