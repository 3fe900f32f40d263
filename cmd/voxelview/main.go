// Command voxelview generates a batch of chunks and orbits them in a window.
// Drag with the left mouse button to orbit, scroll to zoom, Esc to quit.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"mini-voxel/internal/config"
	"mini-voxel/internal/logger"
	"mini-voxel/internal/manager"
	"mini-voxel/internal/meshing"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/render"
)

const (
	windowTitle = "mini-voxel"
	orbitSpeed  = 0.3
	zoomStep    = 0.9
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	meshes, err := buildMeshes(cfg)
	if err != nil {
		logger.Log.Fatal("building chunk meshes", zap.Error(err))
	}

	if err := view(cfg, meshes); err != nil {
		logger.Log.Fatal("viewer", zap.Error(err))
	}
}

func buildMeshes(cfg *config.Config) ([]*meshing.ChunkMesh, error) {
	opts, err := cfg.ManagerOptions(logger.Named("manager"))
	if err != nil {
		return nil, err
	}
	m := manager.New(opts)
	defer m.Close()

	meshes, err := m.GenMeshMulti(context.Background(), cfg.Positions())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("profiling", zap.String("top", profiling.TopN(5)))
	return meshes, nil
}

func setupWindow(cfg *config.Config) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.View.Width, cfg.View.Height, windowTitle, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	if cfg.View.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, err
	}
	return window, nil
}

func view(cfg *config.Config, meshes []*meshing.ChunkMesh) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg)
	if err != nil {
		return err
	}
	logger.Log.Info("OpenGL ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	shader, err := render.NewChunkShader()
	if err != nil {
		return err
	}
	defer shader.Delete()

	var gpu []*render.GPUMesh
	for _, mesh := range meshes {
		if g := render.Upload(mesh); g != nil {
			gpu = append(gpu, g)
		}
	}
	defer func() {
		for _, g := range gpu {
			g.Delete()
		}
	}()

	cam := render.NewOrbitCamera(cfg.View.Width, cfg.View.Height, cfg.View.FOV)
	cam.Frame(cfg.Positions())
	installControls(window, cam)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.ClearColor(0.53, 0.74, 0.91, 1.0)

	light := mgl32.Vec3{-0.4, -1, -0.3}.Normalize()
	for !window.ShouldClose() {
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		fbw, fbh := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbw), int32(fbh))
		cam.Resize(fbw, fbh)

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		shader.Use()
		shader.SetMat4("view", cam.View())
		shader.SetMat4("proj", cam.Projection())
		shader.SetVec3("lightDir", light)
		for _, g := range gpu {
			g.Draw(shader)
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func installControls(window *glfw.Window, cam *render.OrbitCamera) {
	var dragging bool
	var lastX, lastY float64

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		dragging = action == glfw.Press
		lastX, lastY = w.GetCursorPos()
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		if !dragging {
			return
		}
		cam.Orbit(float32(x-lastX)*orbitSpeed, float32(y-lastY)*orbitSpeed)
		lastX, lastY = x, y
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		switch {
		case yoff > 0:
			cam.Zoom(zoomStep)
		case yoff < 0:
			cam.Zoom(1 / zoomStep)
		}
	})
}
