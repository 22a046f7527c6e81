package strategy

// Default tuning values.
const (
	DefaultAlpha      = 2.0 / 3.0
	DefaultIterations = 10
)

// Tuning controls the allocation loop.
//
// Alpha sets how strongly operator share penalizes a pool and must lie in (0,1)
// for the penalty to be well defined. Iterations is the number of equal slices
// the amount is split into. Neither is validated here.
type Tuning struct {
	Alpha      float64
	Iterations int
}

// DefaultTuning returns alpha=2/3 and 10 iterations.
func DefaultTuning() Tuning {
	return Tuning{Alpha: DefaultAlpha, Iterations: DefaultIterations}
}

// Option overrides a single tuning field.
type Option func(*Tuning)

// WithAlpha sets the reward weight exponent.
func WithAlpha(alpha float64) Option {
	return func(t *Tuning) { t.Alpha = alpha }
}

// WithIterations sets the number of allocation rounds.
func WithIterations(n int) Option {
	return func(t *Tuning) { t.Iterations = n }
}

// WithTuning copies the non-zero fields of o.
func WithTuning(o Tuning) Option {
	return func(t *Tuning) {
		if o.Alpha != 0 {
			t.Alpha = o.Alpha
		}
		if o.Iterations != 0 {
			t.Iterations = o.Iterations
		}
	}
}

// NewTuning applies opts over the defaults.
func NewTuning(opts ...Option) Tuning {
	t := DefaultTuning()
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
