package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	ID           string        // Correlates the render's log records
	TotalPixels  int           // Total number of pixels rendered
	PrimaryRays  int64         // Camera rays
	TotalRays    int64         // Every traced ray, primary and secondary
	DeepestDepth int           // Largest recursion depth reached by any ray
	Workers      int           // Concurrent row tasks; 1 when sequential
	Duration     time.Duration // Wall clock time of the render
}

// SecondaryRays returns the number of reflected and refracted rays
func (s RenderStats) SecondaryRays() int64 {
	return s.TotalRays - s.PrimaryRays
}

// merge folds the work of one row into the totals
func (s *RenderStats) merge(primary int64, trace integrator.TraceStats) {
	s.PrimaryRays += primary
	s.TotalRays += trace.Rays
	s.DeepestDepth = max(s.DeepestDepth, trace.DeepestDepth)
}

// PixelStats tracks the running mean of a single pixel's samples. Identical
// samples average to exactly that sample.
type PixelStats struct {
	Mean        core.Vec3
	SampleCount int
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.SampleCount++
	ps.Mean = ps.Mean.Add(color.Subtract(ps.Mean).Multiply(1.0 / float64(ps.SampleCount)))
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	return ps.Mean
}
