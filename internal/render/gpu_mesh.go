package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/meshing"
)

const floatSize = 4

// GPUMesh is a chunk mesh resident in GL buffers.
type GPUMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
	model         mgl32.Mat4
}

// Upload copies mesh into new GL buffers. It must run on the GL thread.
// Empty meshes return nil.
func Upload(mesh *meshing.ChunkMesh) *GPUMesh {
	if mesh.IsEmpty() {
		return nil
	}
	data := mesh.Interleaved()
	g := &GPUMesh{
		indexCount: int32(len(mesh.Indices)),
		model:      mgl32.Translate3D(mesh.Position.WorldOrigin().Elem()),
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	stride := int32(meshing.VertexStride * floatSize)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*floatSize))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*floatSize))

	// the EBO binding stays recorded in the VAO
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return g
}

// Draw issues the indexed draw call with s bound.
func (g *GPUMesh) Draw(s *Shader) {
	s.SetMat4("model", g.model)
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

// Delete frees the GL buffers.
func (g *GPUMesh) Delete() {
	gl.DeleteBuffers(1, &g.ebo)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteVertexArrays(1, &g.vao)
}
