package renderer

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config controls how a render is dispatched
type Config struct {
	Parallel bool         // Render rows concurrently
	Workers  int          // Concurrent rows; <= 0 means runtime.NumCPU()
	Seed     int64        // Row y samples with a generator seeded Seed+y
	Logger   *slog.Logger // Optional
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Parallel: true,
		Workers:  runtime.NumCPU(),
		Seed:     42,
	}
}

// Raytracer renders a compiled scene into a FloatImage
type Raytracer struct {
	scene      *scene.Scene
	config     Config
	integrator integrator.Integrator
	logger     *slog.Logger
}

// NewRaytracer creates a new raytracer. It fails before any work is done when
// the scene cannot be rendered.
func NewRaytracer(s *scene.Scene, config Config) (*Raytracer, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot render scene: %w", err)
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	return &Raytracer{
		scene:      s,
		config:     config,
		integrator: integrator.NewWhittedIntegrator(),
		logger:     core.LoggerOrNop(config.Logger),
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.integrator = i
}

// rowResult is the work one row task reports back
type rowResult struct {
	primary int64
	trace   integrator.TraceStats
}

// Render traces every pixel and returns the finished image. Nothing is
// returned until all rows are done.
func (rt *Raytracer) Render() (*FloatImage, RenderStats, error) {
	start := time.Now()
	id := uuid.New().String()
	logger := rt.logger.With("render_id", id)

	plane := NewProjectionPlane(rt.scene.Plane)
	img := NewFloatImage(plane.Width, plane.Height)
	rows := make([]rowResult, plane.Height)
	rr := NewRowRenderer(rt.scene, rt.integrator)

	workers := 1
	if rt.config.Parallel {
		workers = rt.config.Workers
	}
	logger.Info("render started",
		"width", plane.Width,
		"height", plane.Height,
		"samples", plane.SamplesPerPixel,
		"shapes", len(rt.scene.Shapes),
		"lights", len(rt.scene.Lights),
		"workers", workers)

	var err error
	if rt.config.Parallel {
		err = rt.renderParallel(rr, img, rows, logger)
	} else {
		rt.renderSequential(rr, img, rows, logger)
	}
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("render %s: %w", id, err)
	}

	stats := RenderStats{
		ID:          id,
		TotalPixels: plane.Width * plane.Height,
		Workers:     workers,
	}
	for _, r := range rows {
		stats.merge(r.primary, r.trace)
	}
	stats.Duration = time.Since(start)

	logger.Info("render finished",
		"duration", stats.Duration,
		"primary_rays", stats.PrimaryRays,
		"total_rays", stats.TotalRays,
		"deepest_depth", stats.DeepestDepth)
	return img, stats, nil
}

// renderSequential renders rows top to bottom on the calling goroutine
func (rt *Raytracer) renderSequential(rr *RowRenderer, img *FloatImage, rows []rowResult, logger *slog.Logger) {
	for y := range rows {
		rows[y] = rt.renderRow(rr, y, img, logger)
	}
}

func (rt *Raytracer) renderRow(rr *RowRenderer, y int, out pixelSink, logger *slog.Logger) rowResult {
	ctx := integrator.NewRenderContext(rt.config.Seed+int64(y), logger)
	primary := rr.RenderRow(y, out, ctx)
	logger.Debug("row finished", "row", y, "rays", ctx.Stats.Rays)
	return rowResult{primary: primary, trace: ctx.Stats}
}
