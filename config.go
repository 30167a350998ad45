package smithchart

import "fmt"

// GridStyle collects the styling options of one grid class (major or minor).
// All fields are pass-through cosmetics for the host renderer, except the
// fancy parameters, which steer the adaptive thinning.
type GridStyle struct {
	Enable    bool
	Fancy     bool
	LineWidth float64
	LineStyle string
	ColorX    string // constant-resistance / conductance family
	ColorY    string // constant-reactance / susceptance family
}

// Markers holds the endpoint-marker cosmetics of plotted lines. None of
// these affect transform correctness.
type Markers struct {
	Hack    bool   // replace start/end markers of a line
	Rotate  bool   // rotate the end marker into the line direction
	Start   string // marker for the first point
	Default string // marker for intermediate points
	End     string // marker for the last point
}

// Config is the per-chart configuration. It is created once at chart
// construction and must not be mutated afterwards; the grid generator and
// the tick locators read it on every redraw.
type Config struct {
	Impedance float64 // reference impedance Z0, default 50
	Normalize bool    // normalize chart values to Z0

	Radius   float64 // radius of the drawing area in axes coordinates
	Rotation float64 // orientation offset of the Γ plane, radians CCW

	GridMajor GridStyle
	GridMinor GridStyle

	// Fancy thresholds, in 1/1000 of the plot size 2x2. MajorThresholdX/Y
	// steer the major thinning per family, MinorThreshold selects minor
	// dividers.
	MajorThresholdX float64
	MajorThresholdY float64
	MinorThreshold  float64
	MinorDividers   []int

	XMaxN     int // spacing steps for the real axis locator
	YMaxN     int // spacing steps for the imaginary axis locator
	MinorAuto int // minor subdivisions between major ticks
	Precision int // significant decimals per decade for nice rounding

	Interpolation int       // default interpolated steps between two points
	Datatype      ParamKind // default datatype for plotted values

	InfinitySymbol string
	OhmSymbol      string

	Markers Markers
}

// DefaultConfig returns the chart defaults. They mirror the classic Smith
// chart appearance: Z0 = 50Ω normalized, fancy major grid, dashed minor
// grid disabled.
func DefaultConfig() *Config {
	return &Config{
		Impedance: 50,
		Normalize: true,
		Radius:    0.43,
		GridMajor: GridStyle{
			Enable:    true,
			Fancy:     true,
			LineWidth: 1,
			LineStyle: "-",
			ColorX:    "0.2",
			ColorY:    "0.2",
		},
		GridMinor: GridStyle{
			Enable:    false,
			Fancy:     true,
			LineWidth: 0.75,
			LineStyle: ":",
			ColorX:    "0.4",
			ColorY:    "0.4",
		},
		MajorThresholdX: 100,
		MajorThresholdY: 50,
		MinorThreshold:  35,
		MinorDividers:   []int{1, 2, 3, 5, 10, 20},
		XMaxN:           10,
		YMaxN:           16,
		MinorAuto:       4,
		Precision:       2,
		Interpolation:   5,
		Datatype:        ZParameter,
		InfinitySymbol:  "∞ ",
		OhmSymbol:       "Ω",
		Markers: Markers{
			Hack:    true,
			Rotate:  true,
			Start:   "s",
			Default: "o",
			End:     "^",
		},
	}
}

// NewConfig validates and freezes a configuration. A non-positive reference
// impedance is a fatal construction error, never silently clamped.
func NewConfig(impedance float64, opts ...func(*Config)) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Impedance = impedance
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks a configuration for fatal errors.
func (cfg *Config) Validate() error {
	if cfg.Impedance <= 0 {
		return fmt.Errorf("%w: Z0 = %g", ErrNonPositiveImpedance, cfg.Impedance)
	}
	if cfg.Radius <= 0 {
		return fmt.Errorf("chart radius must be positive, got %g", cfg.Radius)
	}
	if len(cfg.MinorDividers) == 0 {
		return fmt.Errorf("minor grid needs at least one divider")
	}
	return nil
}

// Norm is the normalization constant fed into the Möbius transform: 1 for
// a normalized chart, Z0 otherwise.
func (cfg *Config) Norm() float64 {
	if cfg.Normalize {
		return 1
	}
	return cfg.Impedance
}
