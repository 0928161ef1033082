package renderer

import (
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// lockedImage serializes writes into a shared image
type lockedImage struct {
	mu  sync.Mutex
	img *FloatImage
}

func (l *lockedImage) PutPixel(x, y int, color core.Vec3) {
	l.mu.Lock()
	l.img.PutPixel(x, y, color)
	l.mu.Unlock()
}

// renderParallel schedules one task per row, at most Workers at a time. Each
// task owns its RenderContext and its slot in rows; only pixel writes share
// state.
func (rt *Raytracer) renderParallel(rr *RowRenderer, img *FloatImage, rows []rowResult, logger *slog.Logger) error {
	out := &lockedImage{img: img}

	var g errgroup.Group
	g.SetLimit(rt.config.Workers)
	for y := range rows {
		g.Go(func() error {
			rows[y] = rt.renderRow(rr, y, out, logger)
			return nil
		})
	}
	return g.Wait()
}
