// SPDX-License-Identifier: MIT

package session_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/topocoords/cover"
	"github.com/katalvlaran/topocoords/landmarks"
	"github.com/katalvlaran/topocoords/persistence"
	"github.com/katalvlaran/topocoords/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestExtract_FreshSessionIsEmpty(t *testing.T) {
	s := newSession(t, smallTorus(t), nil)
	st := s.Extract()
	assert.True(t, st.IsEmpty())
	assert.Zero(t, st.Version)
	assert.Empty(t, st.ToMap())
	assert.Empty(t, s.Issues())
	assert.Equal(t, session.Defaults(), s.Effective())
}

func TestResume_RoundTrip(t *testing.T) {
	cloud := smallTorus(t)
	cache := session.NewEngineCache(0)
	s1 := newSession(t, cloud, nil, session.WithCache(cache))
	k := lastClass(t, s1)

	require.NoError(t, s1.SelectCocycles(0, k))
	require.NoError(t, s1.SetView(0.78, -0.3))
	require.NoError(t, s1.SetPerc(0.5))
	s1.SetPartUnity(cover.Exp)
	st := s1.Extract()
	assert.Equal(t, session.SchemaVersion, st.Version)

	s2 := newSession(t, cloud, &st, session.WithCache(cache))
	assert.True(t, st.Equal(s2.Extract()))
	assert.Equal(t, s1.Effective(), s2.Effective())
	assert.Empty(t, s2.Issues())
	assert.NotEqual(t, s1.ID(), s2.ID())
	assert.Equal(t, 1, cache.Len())

	// The loose-map route is equivalent.
	s3, err := session.ResumeMap(cloud, smallConfig, st.ToMap(), session.WithCache(cache))
	require.NoError(t, err)
	assert.True(t, st.Equal(s3.Extract()))
	assert.Empty(t, s3.Issues())
}

func TestResume_ExtractIsACopy(t *testing.T) {
	s := newSession(t, smallTorus(t), nil)
	require.NoError(t, s.SelectCocycles(0))
	require.NoError(t, s.SetView(1, 2))

	st := s.Extract()
	st.CocycleIdx[0] = 7
	*st.Theta = 9
	again := s.Extract()
	assert.Equal(t, []int{0}, again.CocycleIdx)
	assert.Equal(t, 1.0, *again.Theta)
}

func TestResume_ForwardCompatible(t *testing.T) {
	cloud := smallTorus(t)
	seed := map[string]any{
		"future_knob":       true,
		"renderer_settings": map[string]any{"dpi": 300},
		session.KeyTheta:    1.25,
		session.KeyVersion:  session.SchemaVersion,
	}
	s, err := session.ResumeMap(cloud, smallConfig, seed)
	require.NoError(t, err)
	assert.Equal(t, 1.25, s.Effective().Theta)

	var unknown []string
	for _, is := range s.Issues() {
		require.ErrorIs(t, is, session.ErrUnknownKey)
		unknown = append(unknown, is.Key)
	}
	assert.Equal(t, []string{"future_knob", "renderer_settings"}, unknown)
}

func TestResume_DefaultFill(t *testing.T) {
	seed := session.SelectionState{Theta: session.Float(0.4)}
	s := newSession(t, smallTorus(t), &seed)

	eff := s.Effective()
	def := session.Defaults()
	assert.Equal(t, 0.4, eff.Theta)
	assert.Equal(t, def.CocycleIdx, eff.CocycleIdx)
	assert.Equal(t, def.Perc, eff.Perc)
	assert.Equal(t, def.PartUnity, eff.PartUnity)
	assert.Equal(t, def.Phi, eff.Phi)
	assert.Nil(t, s.Extract().Perc)
}

func TestResume_MalformedValuesDroppedPerKey(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	seed := map[string]any{
		session.KeyPerc:       "high",
		session.KeyCocycleIdx: []any{0, "x"},
		session.KeyPartUnity:  "cubic",
		session.KeyTheta:      0.5,
		session.KeyPhi:        0.25,
	}
	s, err := session.ResumeMap(smallTorus(t), smallConfig, seed, session.WithLogger(zap.New(core)))
	require.NoError(t, err)

	eff := s.Effective()
	assert.Equal(t, 0.5, eff.Theta)
	assert.Equal(t, 0.25, eff.Phi)
	assert.Equal(t, session.Defaults().Perc, eff.Perc)
	assert.Equal(t, []int{0}, eff.CocycleIdx)
	assert.Equal(t, cover.Linear, eff.PartUnity)

	dropped := map[string]bool{}
	for _, is := range s.Issues() {
		assert.ErrorIs(t, is, session.ErrMalformedSeed)
		dropped[is.Key] = true
	}
	assert.Equal(t, map[string]bool{
		session.KeyPerc:       true,
		session.KeyCocycleIdx: true,
		session.KeyPartUnity:  true,
	}, dropped)
	assert.Equal(t, 3, logs.FilterMessage("seed key dropped, using default").Len())
}

func TestResume_TypedSeedOutOfRange(t *testing.T) {
	seed := session.SelectionState{
		CocycleIdx: []int{100000},
		Perc:       session.Float(1.5),
		PartUnity:  session.String("Quadratic"),
	}
	s := newSession(t, smallTorus(t), &seed)
	st := s.Extract()
	assert.Nil(t, st.CocycleIdx)
	assert.Nil(t, st.Perc)
	require.NotNil(t, st.PartUnity)
	assert.Equal(t, "quadratic", *st.PartUnity)
	assert.Len(t, s.Issues(), 2)
}

func TestResume_NewerSchemaStillHonored(t *testing.T) {
	seed := session.SelectionState{Version: session.SchemaVersion + 1, Theta: session.Float(2)}
	s := newSession(t, smallTorus(t), &seed)
	require.Len(t, s.Issues(), 1)
	assert.ErrorIs(t, s.Issues()[0], session.ErrNewerSchema)
	assert.Equal(t, 2.0, s.Effective().Theta)
	assert.Equal(t, session.SchemaVersion, s.Extract().Version)
}

func TestResume_ConstructionErrors(t *testing.T) {
	cloud := smallTorus(t)
	for _, tc := range []struct {
		name  string
		cfg   session.Config
		cause error
	}{
		{"not prime", session.Config{Landmarks: 10, Prime: 4}, persistence.ErrNotPrime},
		{"too many landmarks", session.Config{Landmarks: 401, Prime: 41}, landmarks.ErrBadLandmarkCount},
		{"zero landmarks", session.Config{Landmarks: 0, Prime: 41}, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := session.Resume(cloud, tc.cfg, nil)
			require.ErrorIs(t, err, session.ErrConstruction)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
		})
	}
	_, err := session.New(nil, smallConfig)
	assert.ErrorIs(t, err, session.ErrConstruction)
}

func TestSession_Mutators(t *testing.T) {
	s := newSession(t, smallTorus(t), nil)
	n := len(s.Diagram())

	assert.Error(t, s.SelectCocycles())
	assert.Error(t, s.SelectCocycles(n))
	assert.ErrorIs(t, s.SetPerc(-0.1), cover.ErrBadPerc)
	assert.Error(t, s.SetView(0, math.NaN()))
	assert.True(t, s.Extract().IsEmpty())

	require.NoError(t, s.SetPerc(0.7))
	assert.Equal(t, 0.7, s.Effective().Perc)

	res, err := s.Coordinates()
	require.NoError(t, err)
	assert.Len(t, res.Angles, s.Cloud().Len())
	assert.Equal(t, smallConfig, s.Config())
}

func TestRenderInteractive(t *testing.T) {
	cloud := smallTorus(t)
	s := newSession(t, cloud, nil)
	k := lastClass(t, s)

	init := session.SelectionState{CocycleIdx: []int{k}, Theta: session.Float(0.78)}
	var seen session.SelectionState
	accept := session.RendererFunc(func(ctx context.Context, v *session.View) (session.SelectionState, error) {
		seen = v.Initial
		angles, err := v.Coordinates(v.Initial.Effective())
		require.NoError(t, err)
		assert.Len(t, angles, cloud.Len())

		next := v.Initial.Clone()
		next.Phi = session.Float(0.2)
		return next, nil
	})
	require.NoError(t, s.RenderInteractive(context.Background(), accept, &init))
	assert.Equal(t, []int{k}, seen.CocycleIdx)
	assert.Equal(t, 0.78, *seen.Theta)
	assert.Equal(t, 0.2, s.Effective().Phi)
	assert.Equal(t, 0.78, s.Effective().Theta)

	before := s.Extract()
	abort := session.RendererFunc(func(context.Context, *session.View) (session.SelectionState, error) {
		return session.SelectionState{}, session.ErrInteractionAborted
	})
	require.NoError(t, s.RenderInteractive(context.Background(), abort, nil))
	assert.True(t, before.Equal(s.Extract()))

	boom := errors.New("display unavailable")
	fail := session.RendererFunc(func(context.Context, *session.View) (session.SelectionState, error) {
		return session.SelectionState{}, boom
	})
	assert.ErrorIs(t, s.RenderInteractive(context.Background(), fail, nil), boom)
	assert.ErrorIs(t, s.RenderInteractive(context.Background(), nil, nil), session.ErrNilRenderer)
}

func TestResume_LogsSessionReady(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := newSession(t, smallTorus(t), nil, session.WithLogger(zap.New(core)))
	entries := logs.FilterMessage("session ready").All()
	require.Len(t, entries, 1)
	assert.Equal(t, s.ID(), entries[0].ContextMap()["session"])
}
