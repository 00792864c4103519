package render

import (
	"github.com/taigrr/cuboid/pkg/math3d"
	"github.com/taigrr/cuboid/pkg/models"
)

// IsBackface reports whether q faces away from the viewer: its scaled normal
// has a positive component along forward.
func IsBackface(q models.Quad, forward math3d.Vec3) bool {
	return forward.Dot(q.ScaledNormal()) > 0
}

// Cull returns the indices of the faces that survive backface culling, in
// their original order.
func Cull(faces []models.Quad, forward math3d.Vec3) []int {
	visible := make([]int, 0, len(faces))
	for i, q := range faces {
		if !IsBackface(q, forward) {
			visible = append(visible, i)
		}
	}
	return visible
}
