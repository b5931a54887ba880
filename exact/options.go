package exact

// Config holds every independently-toggleable knob the search and
// constraint generator consult. Build one with NewConfig and Options;
// dependent options are validated once by NewConfig rather than scattered
// through the search loop.
type Config struct {
	// UpperBound is the largest tile count U the size search will try
	// before giving up with ErrNotPlaceable.
	UpperBound int
	// FixedSize, when nonzero, skips the size search entirely and tries
	// only that exact tile count.
	FixedSize int
	// Parallelism is the number of factor pairs explored concurrently per
	// size round (the worker-pool size, A). 1 means sequential; <=0 uses
	// the host's online CPU count (see poolSize).
	Parallelism int
	// BudgetMillis is the wall-clock budget for the whole search. The
	// remaining budget after each round becomes the next round's
	// per-check solver timeout.
	BudgetMillis int64

	// Crossings allows two edges to share a ground tile by lifting the
	// second to z=1.
	Crossings bool
	// BorderIO restricts PI/PO placement to border tiles.
	BorderIO bool
	// Desynchronize disables the fan-in balance constraint (12).
	Desynchronize bool
	// ArtificialLatch enables the per-tile latch-delay variables (tl);
	// requires !Desynchronize. Any latch assignment that satisfies the
	// constraints is accepted; the sum of latch values is not minimized.
	ArtificialLatch bool
	// IOPorts is carried in the Config but not consulted by the constraint
	// generator; PI/PO vertices always occupy their own tiles whatever its
	// value.
	IOPorts bool
	// StraightInverterOnly restricts every NOT vertex to tiles whose
	// in/out directions are opposite (constraint 18).
	StraightInverterOnly bool
	// WireLimit caps the tile count of any single routed edge; 0 means
	// unlimited.
	WireLimit int
	// CrossingsLimit caps the total number of crossing tiles; 0 means
	// unlimited (only meaningful when Crossings is set).
	CrossingsLimit int
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithUpperBound sets the largest tile count the size search will try.
func WithUpperBound(u int) Option { return func(c *Config) { c.UpperBound = u } }

// WithFixedSize pins the search to exactly n tiles.
func WithFixedSize(n int) Option { return func(c *Config) { c.FixedSize = n } }

// WithParallelism sets how many factor pairs are explored concurrently.
func WithParallelism(a int) Option { return func(c *Config) { c.Parallelism = a } }

// WithBudgetMillis sets the overall wall-clock search budget.
func WithBudgetMillis(ms int64) Option { return func(c *Config) { c.BudgetMillis = ms } }

// WithCrossings enables or disables wire crossings.
func WithCrossings(b bool) Option { return func(c *Config) { c.Crossings = b } }

// WithBorderIO enables or disables the border-tile restriction on I/O.
func WithBorderIO(b bool) Option { return func(c *Config) { c.BorderIO = b } }

// WithDesynchronize enables or disables the fan-in balance constraint.
func WithDesynchronize(b bool) Option { return func(c *Config) { c.Desynchronize = b } }

// WithArtificialLatch enables or disables per-tile latch variables.
func WithArtificialLatch(b bool) Option { return func(c *Config) { c.ArtificialLatch = b } }

// WithIOPorts sets Config.IOPorts, which the constraint generator does not
// consult.
func WithIOPorts(b bool) Option { return func(c *Config) { c.IOPorts = b } }

// WithStraightInverterOnly enables or disables the bent-inverter ban.
func WithStraightInverterOnly(b bool) Option { return func(c *Config) { c.StraightInverterOnly = b } }

// WithWireLimit caps the tile length of any routed edge.
func WithWireLimit(n int) Option { return func(c *Config) { c.WireLimit = n } }

// WithCrossingsLimit caps the total number of crossing tiles.
func WithCrossingsLimit(n int) Option { return func(c *Config) { c.CrossingsLimit = n } }

// NewConfig builds a Config from defaults plus opts, validating dependent
// options up front.
func NewConfig(opts ...Option) (Config, error) {
	cfg := Config{
		UpperBound:   64,
		Parallelism:  1,
		BudgetMillis: 30_000,
		IOPorts:      true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.BudgetMillis <= 0 {
		return Config{}, ErrBadBudget
	}
	if cfg.ArtificialLatch && cfg.Desynchronize {
		return Config{}, ErrLatchRequiresBalance
	}
	return cfg, nil
}
