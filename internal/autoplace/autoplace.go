// Package autoplace produces best-effort pin positions for photos that
// lack an exact geolocation mapping.
package autoplace

import (
	"time"

	"sitepin/pkg/geometry"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultMargin is the pixel margin kept between a generated position
// and the plan edges.
const DefaultMargin = 50.0

// Generator picks pseudo-random in-bounds plan positions. The random
// source is injectable so tests can fix the seed.
type Generator struct {
	src rand.Source
}

// New returns a time-seeded generator.
func New() *Generator {
	return NewWithSource(rand.NewSource(uint64(time.Now().UnixNano())))
}

// NewWithSource returns a generator backed by the given source.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{src: src}
}

// Generate returns a percent position whose pixel equivalent lies
// within [margin, dimension-margin] on each axis. Plans too small for
// the margin on either axis get the center (50, 50) - margin math on
// them would invert the interval.
func (g *Generator) Generate(planWidth, planHeight, margin float64) geometry.PercentPoint {
	if planWidth < 2*margin || planHeight < 2*margin {
		return geometry.NewPercentPoint(50, 50)
	}

	x := distuv.Uniform{Min: margin, Max: planWidth - margin, Src: g.src}.Rand()
	y := distuv.Uniform{Min: margin, Max: planHeight - margin, Src: g.src}.Rand()

	return geometry.NewPercentPoint(x/planWidth*100, y/planHeight*100)
}
