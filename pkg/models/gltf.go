package models

import (
	"fmt"
	"image/color"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/cuboid/pkg/math3d"
)

// NewDocument builds a glTF document with one node holding mesh under the
// given node transform. The node extras carry the world centre and the local
// size of the mesh bounds. Faces are grouped into one primitive per material,
// in material order, followed by a primitive for faces without a material.
func NewDocument(mesh *Mesh, transform math3d.Mat4) (*gltf.Document, error) {
	if len(mesh.Vertices) > 1<<16 {
		return nil, fmt.Errorf("mesh %q: %d vertices exceed 16-bit indices", mesh.Name, len(mesh.Vertices))
	}

	doc := gltf.NewDocument()

	for _, mat := range mesh.Materials {
		factor := mat.BaseColor
		doc.Materials = append(doc.Materials, &gltf.Material{
			Name: mat.Name,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &factor,
			},
		})
	}

	groups := make([][]Face, len(mesh.Materials)+1)
	for _, f := range mesh.Faces {
		g := len(mesh.Materials)
		if mesh.GetMaterial(f.Material) != nil {
			g = f.Material
		}
		groups[g] = append(groups[g], f)
	}

	gm := &gltf.Mesh{Name: mesh.Name}
	for g, faces := range groups {
		if len(faces) == 0 {
			continue
		}
		prim := writePrimitive(doc, mesh, faces)
		if g < len(mesh.Materials) {
			prim.Material = gltf.Index(g)
		}
		gm.Primitives = append(gm.Primitives, prim)
	}
	doc.Meshes = append(doc.Meshes, gm)

	b := mesh.Bounds()
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name:   mesh.Name,
		Mesh:   gltf.Index(len(doc.Meshes) - 1),
		Matrix: [16]float64(transform),
		Extras: map[string]any{
			"center": vec3(transform.MulVec3(b.Center())),
			"size":   vec3(b.Size()),
		},
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	return doc, nil
}

// writePrimitive writes the vertices referenced by faces, remapped to a
// compact range, and returns a triangle primitive over them.
func writePrimitive(doc *gltf.Document, mesh *Mesh, faces []Face) *gltf.Primitive {
	remap := make(map[int]uint16)
	var (
		positions [][3]float32
		normals   [][3]float32
		uvs       [][2]float32
		indices   []uint16
	)
	for _, f := range faces {
		for _, vi := range f.V {
			idx, ok := remap[vi]
			if !ok {
				v := mesh.Vertices[vi]
				idx = uint16(len(positions))
				remap[vi] = idx
				positions = append(positions, vec3f(v.Position))
				normals = append(normals, vec3f(v.Normal))
				uvs = append(uvs, [2]float32{float32(v.UV.X), float32(v.UV.Y)})
			}
			indices = append(indices, idx)
		}
	}

	return &gltf.Primitive{
		Mode:    gltf.PrimitiveTriangles,
		Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
		Attributes: map[string]int{
			gltf.POSITION:   modeler.WritePosition(doc, positions),
			gltf.NORMAL:     modeler.WriteNormal(doc, normals),
			gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, uvs),
		},
	}
}

func vec3(v math3d.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func vec3f(v math3d.Vec3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

// SaveGLB writes mesh as a binary glTF file.
func SaveGLB(path string, mesh *Mesh, transform math3d.Mat4) error {
	doc, err := NewDocument(mesh, transform)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}

// ExportCuboid writes c as a GLB file with one material per colour.
func ExportCuboid(path string, c Cuboid, colors []color.RGBA) error {
	return SaveGLB(path, NewCuboidMesh(c, colors), c.Transform())
}
