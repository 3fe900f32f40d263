// Package manager runs the two-stage chunk pipeline: generate every requested
// chunk in parallel, commit the batch to the shared registry, then mesh every
// chunk in parallel against that registry.
package manager

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"

	"mini-voxel/internal/meshing"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"
)

// Stage names a pipeline phase.
type Stage string

const (
	StageGenerate Stage = "generate"
	StageMesh     Stage = "mesh"
)

// TaskError reports a task that panicked. One failed task fails the batch.
type TaskError struct {
	Stage    Stage
	Position world.ChunkPosition
	Value    any
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("%s task for chunk %v failed: %v", e.Stage, e.Position, e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *TaskError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Options configures a ChunkManager. Zero values select the defaults.
type Options struct {
	Noise     world.NoiseSource // required
	Threshold *float64          // nil = world.DefaultThreshold
	Scale     float64           // 0 = world.DefaultScale
	Workers   int               // default runtime.NumCPU()
	QueueSize int               // default 2 * Workers
	Policy    meshing.UnknownNeighborPolicy
	Logger    *zap.Logger
}

// ChunkManager owns the chunk registry, the generator and the worker pool.
type ChunkManager struct {
	store  *world.ChunkStore
	gen    *world.Generator
	pool   *WorkerPool
	policy meshing.UnknownNeighborPolicy
	log    *zap.Logger

	buildMesh func(*world.Chunk, [world.NumDirections]*world.Chunk, meshing.UnknownNeighborPolicy) *meshing.ChunkMesh
}

// New creates a manager and starts its workers. Call Close when done.
func New(opts Options) *ChunkManager {
	if opts.Noise == nil {
		panic("manager: Options.Noise is required")
	}
	gen := world.NewGenerator(opts.Noise)
	if opts.Threshold != nil {
		gen.Threshold = *opts.Threshold
	}
	if opts.Scale != 0 {
		gen.Scale = opts.Scale
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = max(runtime.NumCPU(), 1)
	}
	queueSize := opts.QueueSize
	if queueSize <= 0 {
		queueSize = 2 * workers
	}
	pool := NewWorkerPool(workers, queueSize)

	log.Debug("chunk manager started",
		zap.Int("workers", pool.Workers()),
		zap.Float64("threshold", gen.Threshold),
		zap.Float64("scale", gen.Scale),
		zap.Stringer("unknown_policy", opts.Policy))

	return &ChunkManager{
		store:  world.NewChunkStore(),
		gen:    gen,
		pool:   pool,
		policy: opts.Policy,
		log:    log,

		buildMesh: meshing.BuildChunkMeshWithPolicy,
	}
}

// Store returns the shared chunk registry.
func (m *ChunkManager) Store() *world.ChunkStore {
	return m.store
}

// Close stops the worker pool.
func (m *ChunkManager) Close() {
	m.pool.Shutdown()
}

// GenerateNew builds the chunk at pos. It does not touch the registry.
func (m *ChunkManager) GenerateNew(pos world.ChunkPosition) *world.Chunk {
	return m.gen.Generate(pos)
}

type result[T any] struct {
	value T
	err   *TaskError
}

// GenMeshMulti generates and meshes the chunks at positions. Every chunk of
// the batch is committed to the registry before the first mesh job starts,
// so meshes see their in-batch neighbors. Meshes come back in completion
// order; use ChunkMesh.Position to re-key them.
//
// Failure is all-or-nothing: if any task panics the batch returns a
// *TaskError and no meshes, and a failed generation stage commits nothing.
// Cancelling ctx abandons the wait and returns ctx.Err().
func (m *ChunkManager) GenMeshMulti(ctx context.Context, positions []world.ChunkPosition) ([]*meshing.ChunkMesh, error) {
	positions = dedupe(positions)
	if len(positions) == 0 {
		return nil, nil
	}
	start := time.Now()

	chunks, err := m.generateAll(ctx, positions)
	if err != nil {
		m.log.Error("chunk generation failed", zap.Int("batch", len(positions)), zap.Error(err))
		return nil, err
	}

	// barrier: the whole batch becomes visible at once
	m.store.AddBatch(chunks)

	meshes, err := m.meshAll(ctx, chunks)
	if err != nil {
		m.log.Error("chunk meshing failed", zap.Int("batch", len(positions)), zap.Error(err))
		return nil, err
	}

	quads := 0
	for _, mesh := range meshes {
		quads += mesh.QuadCount()
	}
	m.log.Info("chunk batch meshed",
		zap.Int("chunks", len(meshes)),
		zap.Int("quads", quads),
		zap.Int("registry", m.store.Len()),
		zap.Duration("elapsed", time.Since(start)))

	return meshes, nil
}

func (m *ChunkManager) generateAll(ctx context.Context, positions []world.ChunkPosition) ([]*world.Chunk, error) {
	defer profiling.Track("manager.generate")()

	return scatterGather(ctx, m.pool, positions, StageGenerate, func(pos world.ChunkPosition) *world.Chunk {
		c := m.gen.Generate(pos)
		m.log.Debug("chunk generated",
			zap.Stringer("pos", pos),
			zap.Int("active", c.ActiveCount()),
			zap.Uint64("checksum", c.Checksum()))
		return c
	})
}

func (m *ChunkManager) meshAll(ctx context.Context, chunks []*world.Chunk) ([]*meshing.ChunkMesh, error) {
	defer profiling.Track("manager.mesh")()

	positions := make([]world.ChunkPosition, len(chunks))
	byPos := make(map[world.ChunkPosition]*world.Chunk, len(chunks))
	for i, c := range chunks {
		positions[i] = c.Position()
		byPos[c.Position()] = c
	}

	return scatterGather(ctx, m.pool, positions, StageMesh, func(pos world.ChunkPosition) *meshing.ChunkMesh {
		var mesh *meshing.ChunkMesh
		m.store.ViewNeighbors(pos, func(neighbors [world.NumDirections]*world.Chunk) {
			mesh = m.buildMesh(byPos[pos], neighbors, m.policy)
		})
		return mesh
	})
}

// scatterGather runs task once per position on the pool and waits for every
// result. Results arrive in completion order. On failure the remaining
// results are still drained before the first error is returned. A cancelled
// ctx or a pool shutdown returns early, since queued jobs may never run.
func scatterGather[T any](ctx context.Context, pool *WorkerPool, positions []world.ChunkPosition, stage Stage, task func(world.ChunkPosition) T) ([]T, error) {
	results := make(chan result[T], len(positions))

	submitted := 0
	var submitErr error
	for _, pos := range positions {
		err := pool.SubmitJobBlocking(ctx, func() {
			defer func() {
				if r := recover(); r != nil {
					results <- result[T]{err: &TaskError{Stage: stage, Position: pos, Value: r}}
				}
			}()
			results <- result[T]{value: task(pos)}
		})
		if err != nil {
			submitErr = err
			break
		}
		submitted++
	}

	out := make([]T, 0, submitted)
	var firstErr error
	for received := 0; received < submitted; received++ {
		select {
		case r := <-results:
			if r.err != nil && firstErr == nil {
				firstErr = r.err
			}
			if r.err == nil {
				out = append(out, r.value)
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-pool.Done():
			return nil, ErrPoolClosed
		}
	}

	switch {
	case submitErr != nil:
		return nil, submitErr
	case firstErr != nil:
		return nil, firstErr
	}
	return out, nil
}

func dedupe(positions []world.ChunkPosition) []world.ChunkPosition {
	seen := make(map[world.ChunkPosition]struct{}, len(positions))
	out := make([]world.ChunkPosition, 0, len(positions))
	for _, p := range positions {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
