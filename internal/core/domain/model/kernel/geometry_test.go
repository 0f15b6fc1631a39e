package kernel_test

import (
	"testing"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/errs"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x, y, size float64) orb.Polygon {
	return orb.Polygon{{
		{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}, {x, y},
	}}
}

func TestNewPolygon(t *testing.T) {
	t.Run("closed square", func(t *testing.T) {
		g, err := kernel.NewPolygon(square(0, 0, 10), kernel.DefaultSRID)

		require.NoError(t, err)
		require.NoError(t, g.Validate())
		assert.True(t, g.IsPolygon())
		assert.True(t, g.IsPolygonal())
		assert.False(t, g.IsPoint())
		assert.Equal(t, kernel.DefaultSRID, g.SRID())
		assert.Equal(t, "POLYGON((0 0,10 0,10 10,0 10,0 0))", g.WKT())
	})

	t.Run("invalid input", func(t *testing.T) {
		tests := []struct {
			name string
			poly orb.Polygon
			srid int
			want error
		}{
			{"empty", orb.Polygon{}, kernel.DefaultSRID, errs.ErrValueIsRequired},
			{"too few positions", orb.Polygon{{{0, 0}, {1, 0}, {0, 0}}}, kernel.DefaultSRID, errs.ErrValueIsInvalid},
			{"open ring", orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}, kernel.DefaultSRID, errs.ErrValueIsInvalid},
			{"bad srid", square(0, 0, 1), 0, errs.ErrValueIsInvalid},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := kernel.NewPolygon(tt.poly, tt.srid)
				require.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestNewGeometry(t *testing.T) {
	t.Run("point", func(t *testing.T) {
		g, err := kernel.NewGeometry(orb.Point{1, 2}, kernel.DefaultSRID)

		require.NoError(t, err)
		assert.True(t, g.IsPoint())
		assert.Equal(t, "SRID=2056;POINT(1 2)", g.String())
	})

	t.Run("multipolygon", func(t *testing.T) {
		g, err := kernel.NewGeometry(orb.MultiPolygon{square(0, 0, 1), square(5, 5, 1)}, kernel.DefaultSRID)

		require.NoError(t, err)
		assert.True(t, g.IsPolygonal())
		assert.False(t, g.IsPolygon())
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := kernel.NewGeometry(orb.LineString{{0, 0}, {1, 1}}, kernel.DefaultSRID)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("nil", func(t *testing.T) {
		_, err := kernel.NewGeometry(nil, kernel.DefaultSRID)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var g kernel.Geometry
		require.ErrorIs(t, g.Validate(), kernel.ErrGeometryIsNotConstructed)
	})
}
