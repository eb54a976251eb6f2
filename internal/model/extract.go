package model

// multiContainerFor picks the Multi* variant matching a primitive type,
// falling back to GeometryCollection for types with no dedicated Multi
// container (CircularString, CompoundCurve, CurvePolygon, Triangle).
func multiContainerFor(want GeomType) GeomType {
	switch want {
	case PointType:
		return MultiPointType
	case LineStringType:
		return MultiLineStringType
	case PolygonType:
		return MultiPolygonType
	default:
		return GeometryCollectionType
	}
}

func collect(g *Geometry, want GeomType, out *[]*Geometry) {
	if g.Type == want {
		*out = append(*out, g.CloneDeep())
		return
	}
	for _, sub := range g.Geoms {
		collect(sub, want, out)
	}
}

// CollectionExtract returns a fresh multi-geometry containing exactly
// the sub-geometries of wantType found anywhere in coll, recursively
// flattened through nested collections.
func CollectionExtract(coll *Geometry, wantType GeomType) *Geometry {
	var found []*Geometry
	collect(coll, wantType, &found)
	out := &Geometry{
		Type:  multiContainerFor(wantType),
		SRID:  coll.SRID,
		Flags: coll.Flags,
		Geoms: found,
	}
	return out
}
