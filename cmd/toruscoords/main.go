// SPDX-License-Identifier: MIT

// Command toruscoords samples a torus, lets the user pick cohomology
// classes in a terminal view, and saves the selection so the next run can
// resume exactly where this one stopped.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/katalvlaran/topocoords/cover"
	"github.com/katalvlaran/topocoords/interactive"
	"github.com/katalvlaran/topocoords/internal/config"
	"github.com/katalvlaran/topocoords/internal/logger"
	"github.com/katalvlaran/topocoords/pointcloud"
	"github.com/katalvlaran/topocoords/session"
	"go.uber.org/zap"
)

// Flags holds the command line. Zero-valued overrides leave the
// environment configuration in place; see overrides.
type Flags struct {
	EnvFile  string
	Resume   string
	Out      string
	Headless bool

	Points    int
	Landmarks int
	Prime     int
	Seed      int64
	LogFile   string
	Debug     bool

	Cocycle string
	Theta   float64
	Phi     float64
	Perc    float64
	Kernel  string
}

func parseFlags(args []string) (*Flags, *flag.FlagSet, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("toruscoords", flag.ContinueOnError)

	fs.StringVar(&f.EnvFile, "env", "", "Path to a .env file (default: ./.env if present)")
	fs.StringVar(&f.Resume, "resume", "", "Resume from a saved selection (YAML or JSON)")
	fs.StringVar(&f.Out, "out", "", "Write the final selection to this file")
	fs.BoolVar(&f.Headless, "headless", false, "Skip the terminal view and apply -cocycle/-theta/-phi/-perc/-kernel")

	fs.IntVar(&f.Points, "points", 0, "Number of torus samples (env TOPO_POINTS)")
	fs.IntVar(&f.Landmarks, "landmarks", 0, "Number of landmarks (env TOPO_LANDMARKS)")
	fs.IntVar(&f.Prime, "prime", 0, "Coefficient prime (env TOPO_PRIME)")
	fs.Int64Var(&f.Seed, "seed", 0, "Sampling seed (env TOPO_SEED)")
	fs.StringVar(&f.LogFile, "log", "", "Log file (env TOPO_LOG_FILE)")
	fs.BoolVar(&f.Debug, "debug", false, "Debug logging (env TOPO_DEBUG)")

	fs.StringVar(&f.Cocycle, "cocycle", "", "Comma-separated diagram indices to sum, e.g. 0,2")
	fs.Float64Var(&f.Theta, "theta", 0, "View rotation in radians")
	fs.Float64Var(&f.Phi, "phi", 0, "View tilt in radians")
	fs.Float64Var(&f.Perc, "perc", 0, "Coverage fraction in [0,1]")
	fs.StringVar(&f.Kernel, "kernel", "", "Partition of unity: linear, quadratic or exp")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "toruscoords - circular coordinates on a sampled torus\n\n")
		fmt.Fprintf(os.Stderr, "Usage: toruscoords [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  toruscoords -out state.yaml\n")
		fmt.Fprintf(os.Stderr, "  toruscoords -resume state.yaml -out state.yaml\n")
		fmt.Fprintf(os.Stderr, "  toruscoords -headless -cocycle 2 -theta 0.78 -out state.json\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs, nil
}

// overrides copies every flag the user actually set onto cfg.
func (f *Flags) overrides(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "points":
			cfg.Points = f.Points
		case "landmarks":
			cfg.Landmarks = f.Landmarks
		case "prime":
			cfg.Prime = f.Prime
		case "seed":
			cfg.Seed = f.Seed
		case "log":
			cfg.LogFile = f.LogFile
		case "debug":
			cfg.Debug = f.Debug
		}
	})
}

// applyHeadless sets every selection flag the user passed.
func (f *Flags) applyHeadless(fs *flag.FlagSet, s *session.Session) error {
	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["cocycle"] {
		idx, err := parseIndices(f.Cocycle)
		if err != nil {
			return err
		}
		if err = s.SelectCocycles(idx...); err != nil {
			return err
		}
	}
	if set["perc"] {
		if err := s.SetPerc(f.Perc); err != nil {
			return err
		}
	}
	if set["kernel"] {
		k, err := cover.Parse(f.Kernel)
		if err != nil {
			return err
		}
		s.SetPartUnity(k)
	}
	if set["theta"] || set["phi"] {
		eff := s.Effective()
		theta, phi := eff.Theta, eff.Phi
		if set["theta"] {
			theta = f.Theta
		}
		if set["phi"] {
			phi = f.Phi
		}
		if err := s.SetView(theta, phi); err != nil {
			return err
		}
	}

	return nil
}

func parseIndices(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("cocycle index %q: %w", part, err)
		}
		out = append(out, k)
	}
	if len(out) == 0 {
		return nil, errors.New("cocycle: no index given")
	}

	return out, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags, fs, err := parseFlags(args)
	if err != nil {
		return err
	}

	var envFiles []string
	if flags.EnvFile != "" {
		envFiles = append(envFiles, flags.EnvFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	flags.overrides(fs, cfg)
	if err = cfg.Validate(); err != nil {
		return err
	}

	// The full-screen view owns the terminal; logs go to the file only.
	var log *zap.Logger
	if flags.Headless {
		log = logger.New(cfg.LogFile, cfg.Debug)
	} else {
		log = logger.NewFileOnly(cfg.LogFile, cfg.Debug)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cloud, _, err := pointcloud.Torus(cfg.Points, cfg.OuterRadius, cfg.InnerRadius, cfg.Seed)
	if err != nil {
		return fmt.Errorf("sampling torus: %w", err)
	}
	log.Info("torus sampled",
		zap.Int("points", cloud.Len()),
		zap.Float64("outer", cfg.OuterRadius),
		zap.Float64("inner", cfg.InnerRadius),
		zap.Int64("seed", cfg.Seed))

	opts := []session.Option{
		session.WithLogger(log),
		session.WithCache(session.NewEngineCache(cfg.CacheTTL)),
	}
	scfg := session.Config{Landmarks: cfg.Landmarks, Prime: cfg.Prime}

	color.Cyan("Computing persistence on %d points with %d landmarks (Z/%dZ)...", cloud.Len(), cfg.Landmarks, cfg.Prime)
	var s *session.Session
	if flags.Resume != "" {
		s, err = session.ResumeFile(cloud, scfg, flags.Resume, opts...)
	} else {
		s, err = session.New(cloud, scfg, opts...)
	}
	if err != nil {
		return err
	}
	for _, is := range s.Issues() {
		color.Yellow("  %s: %v", flags.Resume, is)
	}

	if flags.Headless {
		if err = flags.applyHeadless(fs, s); err != nil {
			return err
		}
	} else {
		r := interactive.New(interactive.WithLogger(log))
		if err = s.RenderInteractive(ctx, r, nil); err != nil {
			return err
		}
	}

	res, err := s.Coordinates()
	if err != nil {
		return fmt.Errorf("circular coordinates: %w", err)
	}
	report(os.Stdout, s, res)

	if flags.Out != "" {
		if err = session.SaveState(flags.Out, s.Extract()); err != nil {
			return fmt.Errorf("writing %s: %w", flags.Out, err)
		}
		color.Green("Selection saved to %s", flags.Out)
	}

	return nil
}
