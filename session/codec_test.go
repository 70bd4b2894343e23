// SPDX-License-Identifier: MIT

package session_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/topocoords/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Coercion(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   map[string]any
		want []int
	}{
		{"scalar int", map[string]any{"cocycle_idx": 2}, []int{2}},
		{"json float", map[string]any{"cocycle_idx": 2.0}, []int{2}},
		{"json number", map[string]any{"cocycle_idx": json.Number("3")}, []int{3}},
		{"list", map[string]any{"cocycle_idx": []any{0, 1.0}}, []int{0, 1}},
		{"typed list", map[string]any{"cocycle_idx": []int{4, 5}}, []int{4, 5}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			st, issues := session.Decode(tc.in)
			assert.Empty(t, issues)
			assert.Equal(t, tc.want, st.CocycleIdx)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, tc := range []struct {
		key string
		val any
	}{
		{"cocycle_idx", 1.5},
		{"cocycle_idx", -1},
		{"cocycle_idx", []any{}},
		{"cocycle_idx", "2"},
		{"perc", 1.01},
		{"perc", true},
		{"partunity_fn", 3},
		{"theta", "0.78"},
		{"phi", json.Number("nope")},
		{"version", -2},
	} {
		st, issues := session.Decode(map[string]any{tc.key: tc.val, "theta_ok": 1})
		require.Len(t, issues, 2, "%s=%v", tc.key, tc.val)
		byKey := map[string]error{}
		for _, is := range issues {
			byKey[is.Key] = is.Err
		}
		assert.ErrorIs(t, byKey[tc.key], session.ErrMalformedSeed, "%s=%v", tc.key, tc.val)
		assert.ErrorIs(t, byKey["theta_ok"], session.ErrUnknownKey)
		assert.True(t, st.IsEmpty())
	}
}

func TestToMap_ScenarioShape(t *testing.T) {
	st := session.SelectionState{
		Version:    session.SchemaVersion,
		CocycleIdx: []int{2},
		Theta:      session.Float(0.78),
	}
	m := st.ToMap()
	assert.Equal(t, map[string]any{
		"version":     session.SchemaVersion,
		"cocycle_idx": 2,
		"theta":       0.78,
	}, m)

	back, issues := session.Decode(m)
	assert.Empty(t, issues)
	assert.True(t, st.Equal(back))

	multi := session.SelectionState{Version: 1, CocycleIdx: []int{0, 3}}
	assert.Equal(t, []int{0, 3}, multi.ToMap()["cocycle_idx"])
}

func TestStateFiles_RoundTrip(t *testing.T) {
	st := session.SelectionState{
		Version:    session.SchemaVersion,
		CocycleIdx: []int{1, 2},
		Perc:       session.Float(0.9),
		PartUnity:  session.String("exp"),
		Theta:      session.Float(0.78),
		Phi:        session.Float(-1.5),
	}
	dir := t.TempDir()
	for _, name := range []string{"state.yaml", "state.json", "nested/dir/state.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, session.SaveState(path, st))
			got, issues, err := session.LoadState(path)
			require.NoError(t, err)
			assert.Empty(t, issues)
			assert.True(t, st.Equal(got), "%+v", got)
		})
	}
}

func TestUnmarshal_RecoversPerKey(t *testing.T) {
	doc := []byte("version: 1\ncocycle_idx: 2\ntheta: 0.78\nperc: lots\nzoom: 3\n")
	st, issues, err := session.Unmarshal(doc, session.YAML)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, st.CocycleIdx)
	assert.Equal(t, 0.78, *st.Theta)
	assert.Nil(t, st.Perc)
	assert.Len(t, issues, 2)

	empty, issues, err := session.Unmarshal(nil, session.JSON)
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.True(t, empty.IsEmpty())

	_, _, err = session.Unmarshal([]byte("{"), session.JSON)
	assert.Error(t, err)
	assert.Equal(t, session.JSON, session.FormatFor("a/B.JSON"))
	assert.Equal(t, session.YAML, session.FormatFor("a/b.yaml"))
}

func TestResumeFile(t *testing.T) {
	cloud := smallTorus(t)
	cache := session.NewEngineCache(0)
	first := newSession(t, cloud, nil, session.WithCache(cache))
	k := lastClass(t, first)
	require.NoError(t, first.SelectCocycles(k))
	require.NoError(t, first.SetView(0.78, 0))

	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, session.SaveState(path, first.Extract()))

	resumed, err := session.ResumeFile(cloud, smallConfig, path, session.WithCache(cache))
	require.NoError(t, err)
	assert.True(t, resumed.Extract().Equal(first.Extract()))
	assert.Empty(t, resumed.Issues())

	_, err = session.ResumeFile(cloud, smallConfig, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, session.ErrConstruction)

	broken := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0o600))
	_, err = session.ResumeFile(cloud, smallConfig, broken)
	assert.ErrorIs(t, err, session.ErrConstruction)
}
