package geom

import "github.com/planargeo/geom/internal/model"

// Same reports structural equality between a and b: equal type, equal
// dimensionality, equal vertex sequences, equal nesting. SRID and any
// cached bbox are not compared.
func Same(a, b *Geometry) bool {
	return model.Same(a.inner, b.inner)
}
