package ticks

import (
	"fmt"
	"math"
	"strings"

	smith "github.com/scottprahl/pySmithPlot"
)

// Formatter renders a tick value as its axis label.
type Formatter interface {
	Format(v float64) string
}

// trim prints a float and strips trailing zeros and a dangling decimal
// point, so 0.500000 becomes "0.5" and 2.000000 becomes "2".
func trim(v float64) string {
	s := fmt.Sprintf("%f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// RealFormatter labels resistance/conductance ticks. Zero and the point at
// infinity stay unlabeled: both coincide with the imaginary axis labels.
type RealFormatter struct {
	cfg *smith.Config
}

// NewRealFormatter creates a formatter for the real axis.
func NewRealFormatter(cfg *smith.Config) *RealFormatter {
	return &RealFormatter{cfg: cfg}
}

// Format renders the label for a real-axis tick.
func (f *RealFormatter) Format(v float64) string {
	if v < smith.Epsilon || v > smith.NearInfinity {
		return ""
	}
	return trim(v)
}

// ImagFormatter labels reactance/susceptance ticks with a "j" suffix.
// Positive infinity renders as the infinity symbol, negative infinity
// renders empty (the two coincide at Γ = 1).
type ImagFormatter struct {
	cfg *smith.Config
}

// NewImagFormatter creates a formatter for the imaginary axis.
func NewImagFormatter(cfg *smith.Config) *ImagFormatter {
	return &ImagFormatter{cfg: cfg}
}

// Format renders the label for an imaginary-axis tick.
func (f *ImagFormatter) Format(v float64) string {
	if v < -smith.NearInfinity {
		return ""
	}
	if v > smith.NearInfinity {
		return f.cfg.InfinitySymbol
	}
	if math.Abs(v) < smith.Epsilon {
		return "0"
	}
	return trim(v) + "j"
}
