package render

import (
	"slices"
	"testing"

	"github.com/taigrr/cuboid/pkg/math3d"
	"github.com/taigrr/cuboid/pkg/models"
)

func TestCull(t *testing.T) {
	tests := []struct {
		name        string
		orientation math3d.Vec3
		want        []int
	}{
		{
			// Side faces are edge-on and survive.
			name:        "unrotated",
			orientation: math3d.Zero3(),
			want:        []int{models.FaceTop, models.FaceFront, models.FaceLeft, models.FaceRight, models.FaceBottom},
		},
		{
			name:        "generic pose",
			orientation: math3d.V3(30, 45, 0),
			want:        []int{models.FaceTop, models.FaceFront, models.FaceLeft},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := models.UnitCuboid()
			c.Orientation = tc.orientation
			faces := c.Faces()
			got := Cull(faces[:], math3d.Forward())
			if !slices.Equal(got, tc.want) {
				t.Errorf("Cull() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsBackface(t *testing.T) {
	faces := models.UnitCuboid().Faces()
	if !IsBackface(faces[models.FaceBack], math3d.Forward()) {
		t.Error("back face should be culled")
	}
	if IsBackface(faces[models.FaceFront], math3d.Forward()) {
		t.Error("front face should be kept")
	}
	// Looking the other way swaps them.
	if !IsBackface(faces[models.FaceFront], math3d.Forward().Negate()) {
		t.Error("front face should be culled when forward is reversed")
	}
}

func TestCullGenericPoseDropsThree(t *testing.T) {
	// Away from edge-on poses exactly three faces point away.
	for _, o := range []math3d.Vec3{
		math3d.V3(30, 45, 0),
		math3d.V3(17, 203, 71),
		math3d.V3(-60, 10, 135),
	} {
		c := models.UnitCuboid()
		c.Orientation = o
		faces := c.Faces()
		if got := len(Cull(faces[:], math3d.Forward())); got != 3 {
			t.Errorf("orientation %v: %d faces kept, want 3", o, got)
		}
	}
}
