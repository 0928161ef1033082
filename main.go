package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const defaultOutput = "render.pfm"

// options are the parsed command line flags
type options struct {
	config   string
	output   string
	parallel bool
	workers  int
	seed     int64
	png      bool
	schlick  bool
	debug    bool
	list     string

	parallelSet bool // -parallel was given explicitly
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("whitted-raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.config, "config", "", "JSON configuration file (built-in demo scene when empty)")
	fs.StringVar(&opts.output, "out", "", "Output image; .png is tone mapped, .hdr is Radiance RGBE, anything else is written as PFM")
	fs.BoolVar(&opts.parallel, "parallel", true, "Render rows concurrently (overrides GeneralConfig.Parallel)")
	fs.IntVar(&opts.workers, "workers", runtime.NumCPU(), "Concurrent rows when rendering in parallel")
	fs.Int64Var(&opts.seed, "seed", 42, "Seed for the per-row pixel jitter")
	fs.BoolVar(&opts.png, "png", false, "Also write a tone mapped PNG preview next to the output")
	fs.BoolVar(&opts.schlick, "schlick", false, "Weight reflection and refraction with Schlick's approximation instead of the exact Fresnel term")
	fs.BoolVar(&opts.debug, "debug", false, "Log per-row progress")
	fs.StringVar(&opts.list, "list", "", "List the JSON configurations in a directory and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Whitted Raytracer")
		fmt.Fprintln(stderr, "Usage: whitted-raytracer [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "parallel" {
			opts.parallelSet = true
		}
	})
	return opts, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if opts.list != "" {
		return listConfigs(stdout, opts.list)
	}
	logger := newLogger(stderr, opts.debug)

	desc, output, parallel, err := loadDescription(opts)
	if err != nil {
		return err
	}

	s, _, err := scene.Build(desc, scene.DefaultRegistry(), logger)
	if err != nil {
		return err
	}

	rt, err := renderer.NewRaytracer(s, renderer.Config{
		Parallel: parallel,
		Workers:  opts.workers,
		Seed:     opts.seed,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	if opts.schlick {
		rt.SetIntegrator(&integrator.WhittedIntegrator{Fresnel: material.Schlick})
	}
	img, stats, err := rt.Render()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := loaders.SaveImage(output, img); err != nil {
		return err
	}
	logger.Info("image saved", "path", output, "render_id", stats.ID)

	if opts.png && !strings.EqualFold(filepath.Ext(output), ".png") {
		preview := strings.TrimSuffix(output, filepath.Ext(output)) + ".png"
		if err := loaders.SaveImage(preview, img); err != nil {
			return err
		}
		logger.Info("preview saved", "path", preview, "render_id", stats.ID)
	}
	return nil
}

// loadDescription picks the scene and output settings from the config file,
// or the built-in demo, with flags taking precedence
func loadDescription(opts options) (scene.Description, string, bool, error) {
	desc := scene.NewDefaultDescription()
	output := defaultOutput
	parallel := opts.parallel

	if opts.config != "" {
		cfg, err := loaders.LoadConfig(opts.config)
		if err != nil {
			return scene.Description{}, "", false, err
		}
		desc = cfg.Description
		if cfg.Output != "" {
			output = cfg.Output
		}
		if !opts.parallelSet {
			parallel = cfg.Parallel
		}
	}

	if opts.output != "" {
		output = opts.output
	}
	return desc, output, parallel, nil
}

func listConfigs(w io.Writer, dir string) error {
	infos, err := loaders.DiscoverConfigs(dir)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintf(w, "No configurations found in %s\n", dir)
		return nil
	}
	for _, info := range infos {
		if info.Err != nil {
			fmt.Fprintf(w, "%-20s invalid: %v\n", info.Name, info.Err)
			continue
		}
		fmt.Fprintf(w, "%-20s %dx%d, %d shapes -> %s\n", info.Name, info.Width, info.Height, info.Shapes, info.Output)
	}
	return nil
}
