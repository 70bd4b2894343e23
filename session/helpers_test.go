// SPDX-License-Identifier: MIT

package session_test

import (
	"testing"

	"github.com/katalvlaran/topocoords/pointcloud"
	"github.com/katalvlaran/topocoords/session"
	"github.com/stretchr/testify/require"
)

// smallConfig keeps the engine fast enough for unit tests.
var smallConfig = session.Config{Landmarks: 30, Prime: 41}

func smallTorus(t *testing.T) *pointcloud.Cloud {
	t.Helper()
	c, _, err := pointcloud.Torus(400, 5, 2, 1)
	require.NoError(t, err)

	return c
}

func newSession(t *testing.T, cloud *pointcloud.Cloud, seed *session.SelectionState, opts ...session.Option) *session.Session {
	t.Helper()
	s, err := session.Resume(cloud, smallConfig, seed, opts...)
	require.NoError(t, err)

	return s
}

// lastClass is the least persistent diagram index; tests use it to make a
// choice that differs from the default.
func lastClass(t *testing.T, s *session.Session) int {
	t.Helper()
	n := len(s.Diagram())
	require.Positive(t, n)

	return n - 1
}
