// Package postgis holds the PostGIS glue: the geometry column type shared by
// the repositories and a ports.GeometryProvider running on PostGIS SQL
// functions.
package postgis

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"

	"geoshop/internal/core/domain/model/kernel"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
)

// Geometry is a nullable geometry column. It is written as hex EWKB, which
// PostGIS accepts as geometry input, and read back from the hex EWKB text
// PostGIS returns.
type Geometry struct {
	Geom  orb.Geometry
	SRID  int
	Valid bool
}

func FromKernel(g kernel.Geometry) Geometry {
	if g.Validate() != nil {
		return Geometry{}
	}
	return Geometry{Geom: g.Orb(), SRID: g.SRID(), Valid: true}
}

func FromKernelPtr(g *kernel.Geometry) Geometry {
	if g == nil {
		return Geometry{}
	}
	return FromKernel(*g)
}

func (g Geometry) ToKernel() (kernel.Geometry, error) {
	return kernel.NewGeometry(g.Geom, g.SRID)
}

// ToKernelPtr returns nil for NULL columns.
func (g Geometry) ToKernelPtr() (*kernel.Geometry, error) {
	if !g.Valid {
		return nil, nil
	}
	k, err := g.ToKernel()
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// GormDataType makes AutoMigrate and gorm tags resolve to the PostGIS type.
func (Geometry) GormDataType() string {
	return "geometry"
}

func (g Geometry) Value() (driver.Value, error) {
	if !g.Valid {
		return nil, nil
	}
	return ewkb.MarshalToHex(g.Geom, g.SRID)
}

func (g *Geometry) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*g = Geometry{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into geometry", src)
	}

	data := raw
	if decoded, err := hex.DecodeString(string(raw)); err == nil {
		data = decoded
	}

	geom, srid, err := ewkb.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("decoding ewkb: %w", err)
	}
	*g = Geometry{Geom: geom, SRID: srid, Valid: true}
	return nil
}
