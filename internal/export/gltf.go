// Package export writes chunk meshes as binary glTF.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"mini-voxel/internal/meshing"
)

// ErrNothingToExport is returned when every mesh in the batch is empty.
var ErrNothingToExport = errors.New("export: no faces to write")

const generator = "mini-voxel"

// Document builds a glTF document with one mesh and one node per non-empty
// chunk mesh. Vertices stay chunk-local; the node translation places them.
func Document(meshes []*meshing.ChunkMesh) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	doc.Asset.Generator = generator

	pbr := &gltf.PBRMetallicRoughness{BaseColorFactor: &[4]float32{1, 1, 1, 1}, MetallicFactor: gltf.Float(0), RoughnessFactor: gltf.Float(1)}
	doc.Materials = []*gltf.Material{{Name: "voxel", PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}}

	for _, mesh := range meshes {
		if mesh == nil || mesh.IsEmpty() {
			continue
		}
		if err := mesh.Validate(); err != nil {
			return nil, fmt.Errorf("chunk %v: %w", mesh.Position, err)
		}

		positions := make([][3]float32, len(mesh.Vertices))
		normals := make([][3]float32, len(mesh.Normals))
		uvs := make([][2]float32, len(mesh.UVs))
		for i := range mesh.Vertices {
			positions[i] = mesh.Vertices[i]
			normals[i] = mesh.Normals[i]
			uvs[i] = mesh.UVs[i]
		}

		posAccessor := modeler.WritePosition(doc, positions)
		normalAccessor := modeler.WriteNormal(doc, normals)
		uvAccessor := modeler.WriteTextureCoord(doc, uvs)
		indicesAccessor := modeler.WriteIndices(doc, mesh.Indices)

		prim := &gltf.Primitive{
			Attributes: map[string]uint32{
				gltf.POSITION:   uint32(posAccessor),
				gltf.NORMAL:     uint32(normalAccessor),
				gltf.TEXCOORD_0: uint32(uvAccessor),
			},
			Indices:  gltf.Index(uint32(indicesAccessor)),
			Material: gltf.Index(0),
		}

		name := "chunk" + mesh.Position.String()
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: name, Primitives: []*gltf.Primitive{prim}})
		node := &gltf.Node{Name: name, Mesh: gltf.Index(uint32(len(doc.Meshes) - 1))}
		node.Translation = mesh.Position.WorldOrigin()
		doc.Nodes = append(doc.Nodes, node)
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}

	if len(doc.Meshes) == 0 {
		return nil, ErrNothingToExport
	}
	return doc, nil
}

// Encode writes meshes to w as GLB.
func Encode(w io.Writer, meshes []*meshing.ChunkMesh) error {
	doc, err := Document(meshes)
	if err != nil {
		return err
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	return enc.Encode(doc)
}

// WriteGLB writes meshes to a .glb file at path.
func WriteGLB(path string, meshes []*meshing.ChunkMesh) error {
	doc, err := Document(meshes)
	if err != nil {
		return err
	}
	return gltf.SaveBinary(doc, path)
}
