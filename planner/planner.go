package planner

import (
	"go.uber.org/zap"

	"github.com/wippyai/xtp-cpp-bindgen/errors"
	"github.com/wippyai/xtp-cpp-bindgen/schema"
)

// Planner answers type mapping queries for schema nodes.
// It holds only immutable configuration and is safe for concurrent use.
type Planner struct {
	log  *zap.Logger
	opts Options

	// sizes caches object sizes by declaration name for one Plan run.
	sizes map[string]int
}

// New creates a new Planner with the given options.
func New(opts Options) *Planner {
	log := opts.Logger
	if log == nil {
		log = Logger()
	}
	return &Planner{
		log:  log,
		opts: opts,
	}
}

// NewWithDefaults creates a new Planner with default options.
func NewWithDefaults() *Planner {
	return New(DefaultOptions())
}

// Options returns the configuration.
func (p *Planner) Options() Options {
	return p.opts
}

// withPath prefixes the path of structured errors.
func withPath(err error, path ...string) error {
	var e *errors.Error
	if errors.As(err, &e) {
		return e.WithPath(path...)
	}
	return err
}

// unknownKind reports a kind value outside the declared set.
func unknownKind(phase errors.Phase, k schema.Kind) error {
	return errors.New(phase, errors.KindUnsupportedType).
		Type(k.String()).
		Detail("unknown kind %d", uint8(k)).
		Build()
}
