package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/taigrr/cuboid/pkg/math3d"
	"github.com/taigrr/cuboid/pkg/models"
	"github.com/taigrr/cuboid/pkg/render"
)

// sceneFlags holds the raw pose, render and view flags. Each command
// registers only the groups it uses; the rest keep their defaults.
type sceneFlags struct {
	size          string
	pos           string
	rot           string
	spin          string
	shading       string
	interp        string
	texture       string
	textureFilter string
	textureWrap   string
	workers       int
	halfBlock     bool
}

func defaultSceneFlags() sceneFlags {
	return sceneFlags{
		size:          "0.5,0.5,0.5",
		pos:           "0,0,0",
		rot:           "0,0,0",
		spin:          "20,30,0",
		shading:       render.ShadeUV.String(),
		interp:        render.InterpWachspress.String(),
		textureFilter: render.FilterNearest.String(),
		textureWrap:   render.WrapRepeat.String(),
		workers:       1,
	}
}

func (f *sceneFlags) registerPose(fs *pflag.FlagSet) {
	fs.StringVar(&f.size, "size", f.size, "Half-extents x,y,z (a single value applies to all)")
	fs.StringVar(&f.pos, "pos", f.pos, "Centre position x,y,z")
	fs.StringVar(&f.rot, "rot", f.rot, "Initial Euler angles x,y,z in degrees")
}

func (f *sceneFlags) registerRender(fs *pflag.FlagSet) {
	fs.StringVar(&f.shading, "shading", f.shading, "Face shading: uv, flat or texture")
	fs.StringVar(&f.interp, "interp", f.interp, "Corner weights: wachspress or tangent")
	fs.StringVar(&f.texture, "texture", f.texture, "Texture image (PNG/JPG) for texture shading")
	fs.StringVar(&f.textureFilter, "texture-filter", f.textureFilter, "Texture sampling: nearest or bilinear")
	fs.StringVar(&f.textureWrap, "texture-wrap", f.textureWrap, "Texture wrapping: repeat or clamp")
	fs.IntVar(&f.workers, "workers", f.workers, "Row bands rasterized in parallel (1 = serial)")
}

func (f *sceneFlags) registerView(fs *pflag.FlagSet) {
	fs.StringVar(&f.spin, "spin", f.spin, "Constant rotation x,y,z in degrees per second")
	fs.BoolVar(&f.halfBlock, "halfblock", f.halfBlock, "Two samples per terminal cell using half blocks")
}

// scene is the resolved form of sceneFlags.
type scene struct {
	cuboid    models.Cuboid
	spin      math3d.Vec3
	shading   render.ShadingMode
	interp    render.InterpolationMode
	texture   *render.Texture
	workers   int
	halfBlock bool
}

func (f *sceneFlags) resolve() (scene, error) {
	var (
		s   scene
		err error
	)
	if s.cuboid.HalfExtents, err = math3d.ParseVec3(f.size); err != nil {
		return s, fmt.Errorf("--size: %w", err)
	}
	if s.cuboid.Position, err = math3d.ParseVec3(f.pos); err != nil {
		return s, fmt.Errorf("--pos: %w", err)
	}
	if s.cuboid.Orientation, err = math3d.ParseVec3(f.rot); err != nil {
		return s, fmt.Errorf("--rot: %w", err)
	}
	if s.spin, err = math3d.ParseVec3(f.spin); err != nil {
		return s, fmt.Errorf("--spin: %w", err)
	}
	if s.shading, err = render.ParseShadingMode(f.shading); err != nil {
		return s, fmt.Errorf("--shading: %w", err)
	}
	if s.interp, err = render.ParseInterpolationMode(f.interp); err != nil {
		return s, fmt.Errorf("--interp: %w", err)
	}
	filter, err := render.ParseFilterMode(f.textureFilter)
	if err != nil {
		return s, fmt.Errorf("--texture-filter: %w", err)
	}
	wrap, err := render.ParseWrapMode(f.textureWrap)
	if err != nil {
		return s, fmt.Errorf("--texture-wrap: %w", err)
	}
	if f.workers < 1 {
		return s, fmt.Errorf("--workers: must be at least 1, got %d", f.workers)
	}
	s.workers = f.workers
	s.halfBlock = f.halfBlock

	if f.texture != "" {
		if s.texture, err = render.LoadTexture(f.texture); err != nil {
			return s, fmt.Errorf("load texture: %w", err)
		}
	}
	if s.texture == nil {
		s.texture = render.NewCheckerTexture(64, 64, 8, render.RGB(200, 200, 200), render.RGB(100, 100, 100))
	}
	s.texture.FilterMode = filter
	s.texture.WrapU, s.texture.WrapV = wrap, wrap
	return s, nil
}

// newRasterizer returns a rasterizer for fb configured from s.
func (s scene) newRasterizer(fb *render.Framebuffer) *render.Rasterizer {
	r := render.NewRasterizer(fb)
	r.Shading = s.shading
	r.Interpolation = s.interp
	r.Texture = s.texture
	r.Workers = s.workers
	return r
}
