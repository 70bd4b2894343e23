// SPDX-License-Identifier: MIT

package pointcloud

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/topocoords/matrix"
)

// Cloud is an immutable N×d point cloud.
type Cloud struct {
	pts *matrix.Dense
}

// New copies rows into a Cloud. Every row must have the same, non-zero length
// and only finite coordinates.
func New(rows [][]float64) (*Cloud, error) {
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, translate(err)
	}

	return &Cloud{pts: m}, nil
}

// FromDense copies an N×d matrix into a Cloud.
func FromDense(m *matrix.Dense) (*Cloud, error) {
	if m == nil {
		return nil, ErrBadShape
	}
	cp := m.Clone().(*matrix.Dense)
	for i := 0; i < cp.Rows(); i++ {
		for j, v := range cp.RowView(i) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, ErrNaNInf)
			}
		}
	}

	return &Cloud{pts: cp}, nil
}

// translate maps matrix ingestion sentinels onto this package's sentinels.
func translate(err error) error {
	switch {
	case errors.Is(err, matrix.ErrNaNInf):
		return fmt.Errorf("%w: %v", ErrNaNInf, err)
	case errors.Is(err, matrix.ErrInvalidDimensions), errors.Is(err, matrix.ErrDimensionMismatch):
		return fmt.Errorf("%w: %v", ErrBadShape, err)
	default:
		return err
	}
}

// Len returns the number of points.
func (c *Cloud) Len() int { return c.pts.Rows() }

// Dim returns the ambient dimension.
func (c *Cloud) Dim() int { return c.pts.Cols() }

// Point returns a copy of point i.
func (c *Cloud) Point(i int) ([]float64, error) {
	return c.pts.Row(i)
}

// Matrix returns a copy of the coordinates as an N×d Dense.
func (c *Cloud) Matrix() *matrix.Dense {
	return c.pts.Clone().(*matrix.Dense)
}

// Fingerprint returns a stable 64-bit digest of the shape and coordinates.
// Equal clouds always share a fingerprint; it is the engine-cache key.
func (c *Cloud) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(c.Len()))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(c.Dim()))
	_, _ = h.Write(buf[:])
	for i := 0; i < c.Len(); i++ {
		for _, v := range c.pts.RowView(i) {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = h.Write(buf[:])
		}
	}

	return h.Sum64()
}

// Bounds returns per-dimension minima and maxima.
func (c *Cloud) Bounds() (lo, hi []float64) {
	d := c.Dim()
	lo = make([]float64, d)
	hi = make([]float64, d)
	for k := 0; k < d; k++ {
		lo[k], hi[k] = math.Inf(1), math.Inf(-1)
	}
	for i := 0; i < c.Len(); i++ {
		for k, v := range c.pts.RowView(i) {
			lo[k] = math.Min(lo[k], v)
			hi[k] = math.Max(hi[k], v)
		}
	}

	return lo, hi
}
