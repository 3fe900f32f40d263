// Command voxelgen generates and meshes a batch of chunks and writes them
// to a binary glTF file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"mini-voxel/internal/config"
	"mini-voxel/internal/export"
	"mini-voxel/internal/logger"
	"mini-voxel/internal/manager"
	"mini-voxel/internal/profiling"
)

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

	if err := run(cfg); err != nil {
		logger.Log.Error("voxelgen failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, err := cfg.ManagerOptions(logger.Named("manager"))
	if err != nil {
		return err
	}
	m := manager.New(opts)
	defer m.Close()

	positions := cfg.Positions()
	logger.Log.Info("generating chunks",
		zap.Int("count", len(positions)),
		zap.Int64("seed", cfg.World.Seed),
		zap.String("noise", cfg.World.Noise),
		zap.String("unknown_policy", opts.Policy.String()))

	meshes, err := m.GenMeshMulti(ctx, positions)
	if err != nil {
		return fmt.Errorf("building chunk meshes: %w", err)
	}

	for _, mesh := range meshes {
		logger.Log.Debug("chunk mesh",
			zap.Stringer("pos", mesh.Position),
			zap.Int("quads", mesh.QuadCount()),
			zap.Int("vertices", len(mesh.Vertices)))
	}
	logger.Log.Info("profiling", zap.String("top", profiling.TopN(5)))

	if err := export.WriteGLB(cfg.Export.Path, meshes); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Export.Path, err)
	}
	logger.Log.Info("wrote mesh", zap.String("path", cfg.Export.Path), zap.Int("chunks", len(meshes)))
	return nil
}
