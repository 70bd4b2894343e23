// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"
	"github.com/katalvlaran/topocoords/circular"
	"github.com/katalvlaran/topocoords/cover"
	"github.com/katalvlaran/topocoords/persistence"
	"github.com/katalvlaran/topocoords/pointcloud"
	"go.uber.org/zap"
)

// Session is one interactive coordinate session over a fixed cloud.
// It is owned by a single goroutine; the engine it wraps is shared
// read-only through the EngineCache.
type Session struct {
	id     uuid.UUID
	cloud  *pointcloud.Cloud
	cfg    Config
	engine *circular.Coords
	state  SelectionState
	issues []KeyIssue
	log    *zap.Logger
}

type options struct {
	log   *zap.Logger
	cache *EngineCache
}

// Option configures New and Resume.
type Option func(*options)

// WithLogger sets the session logger (default: no-op).
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithCache shares built engines between sessions.
func WithCache(c *EngineCache) Option {
	return func(o *options) { o.cache = c }
}

// New builds a session with empty selections.
func New(cloud *pointcloud.Cloud, cfg Config, opts ...Option) (*Session, error) {
	return Resume(cloud, cfg, nil, opts...)
}

// Resume builds a session over cloud and cfg and, when seed is non-nil,
// initializes its selections from seed before anything is rendered.
// Seed problems never fail the call: offending keys are dropped, logged
// and available from Issues.
//
// Errors: ErrConstruction wrapping pointcloud, landmarks or persistence sentinels.
func Resume(cloud *pointcloud.Cloud, cfg Config, seed *SelectionState, opts ...Option) (*Session, error) {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if cloud == nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, pointcloud.ErrBadShape)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}

	id := uuid.New()
	log := o.log.With(zap.String("session", id.String()))
	engine, err := buildEngine(cloud, cfg, o.cache, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}
	s := &Session{id: id, cloud: cloud, cfg: cfg, engine: engine, log: log}
	if seed != nil {
		s.apply(*seed)
	}
	log.Info("session ready",
		zap.Int("points", cloud.Len()),
		zap.Int("landmarks", cfg.Landmarks),
		zap.Int("prime", cfg.Prime),
		zap.Bool("seeded", !s.state.IsEmpty()))

	return s, nil
}

// ResumeMap is Resume with a loose key/value seed, as read from a state file
// or produced by ToMap.
func ResumeMap(cloud *pointcloud.Cloud, cfg Config, seed map[string]any, opts ...Option) (*Session, error) {
	if seed == nil {
		return Resume(cloud, cfg, nil, opts...)
	}
	st, issues := Decode(seed)
	// Decode has already judged the version; Resume restamps it.
	st.Version = 0
	s, err := Resume(cloud, cfg, &st, opts...)
	if err != nil {
		return nil, err
	}
	s.report(issues)
	s.issues = append(issues, s.issues...)

	return s, nil
}

func buildEngine(cloud *pointcloud.Cloud, cfg Config, c *EngineCache, log *zap.Logger) (*circular.Coords, error) {
	if c != nil {
		if eng, ok := c.Get(cloud, cfg); ok {
			log.Debug("engine cache hit")
			return eng, nil
		}
	}
	eng, err := circular.New(cloud, circular.Config{Landmarks: cfg.Landmarks, Prime: cfg.Prime}, circular.WithLogger(log))
	if err != nil {
		return nil, err
	}
	if c != nil {
		c.Put(cloud, cfg, eng)
	}

	return eng, nil
}

// apply replaces the state with a sanitized copy of seed.
func (s *Session) apply(seed SelectionState) {
	st, issues := sanitize(seed, len(s.engine.Diagram()))
	issues = append(versionIssues(seed.Version), issues...)
	st.stamp()
	s.state = st
	s.report(issues)
	s.issues = append(s.issues, issues...)
}

func (s *Session) report(issues []KeyIssue) {
	for _, is := range issues {
		if errors.Is(is.Err, ErrUnknownKey) {
			s.log.Debug("ignoring unknown seed key", zap.String("key", is.Key))
			continue
		}
		s.log.Warn("seed key dropped, using default", zap.String("key", is.Key), zap.Error(is.Err))
	}
}

// ID is a unique identifier for log correlation.
func (s *Session) ID() string { return s.id.String() }

// Config returns the engine configuration.
func (s *Session) Config() Config { return s.cfg }

// Cloud returns the point cloud.
func (s *Session) Cloud() *pointcloud.Cloud { return s.cloud }

// Diagram returns the halved H1 diagram in the order cocycle indices refer to.
func (s *Session) Diagram() []persistence.Pair { return s.engine.Diagram() }

// Issues lists what happened to seed keys during construction.
func (s *Session) Issues() []KeyIssue { return slices.Clone(s.issues) }

// Extract returns a deep copy of the current selections. A session with no
// selections yields an empty state.
func (s *Session) Extract() SelectionState { return s.state.Clone() }

// Effective resolves the current selections against the defaults.
func (s *Session) Effective() Selection { return s.state.Effective() }

// SelectCocycles chooses the classes to sum, by diagram index.
func (s *Session) SelectCocycles(idx ...int) error {
	n := len(s.engine.Diagram())
	if len(idx) == 0 {
		return fmt.Errorf("%w: no index", circular.ErrNoCocycle)
	}
	for _, k := range idx {
		if k < 0 || k >= n {
			return fmt.Errorf("index %d of %d: %w", k, n, circular.ErrCocycleIndex)
		}
	}
	s.state.CocycleIdx = slices.Clone(idx)
	s.state.stamp()

	return nil
}

// SetPerc sets the coverage fraction.
func (s *Session) SetPerc(perc float64) error {
	if math.IsNaN(perc) || perc < 0 || perc > 1 {
		return fmt.Errorf("perc=%g: %w", perc, cover.ErrBadPerc)
	}
	s.state.Perc = Float(perc)
	s.state.stamp()

	return nil
}

// SetPartUnity sets the partition-of-unity kernel.
func (s *Session) SetPartUnity(k cover.Kind) {
	s.state.PartUnity = String(k.String())
	s.state.stamp()
}

// SetView sets the viewing angles in radians.
func (s *Session) SetView(theta, phi float64) error {
	if !finite(theta) || !finite(phi) {
		return fmt.Errorf("%w: view angles must be finite", ErrMalformedSeed)
	}
	s.state.Theta = Float(theta)
	s.state.Phi = Float(phi)
	s.state.stamp()

	return nil
}

// Coordinates computes circular coordinates for the effective selection.
func (s *Session) Coordinates() (*circular.Result, error) {
	return s.CoordinatesFor(s.Effective())
}

// CoordinatesFor computes circular coordinates for an arbitrary selection
// without changing the session state.
func (s *Session) CoordinatesFor(sel Selection) (*circular.Result, error) {
	return s.engine.Coordinates(sel.Params())
}
