package config

import (
	"go.uber.org/zap"

	"mini-voxel/internal/manager"
	"mini-voxel/internal/world"
)

// ManagerOptions translates the world and pipeline sections into chunk
// manager options.
func (c *Config) ManagerOptions(log *zap.Logger) (manager.Options, error) {
	noise, err := world.NewNoise(c.World.Noise, c.World.Seed)
	if err != nil {
		return manager.Options{}, err
	}
	policy, err := c.Policy()
	if err != nil {
		return manager.Options{}, err
	}
	// copied so a zero threshold from YAML is kept rather than defaulted
	threshold := c.World.Threshold
	return manager.Options{
		Noise:     noise,
		Threshold: &threshold,
		Scale:     c.World.Scale,
		Workers:   c.Pipeline.Workers,
		QueueSize: c.Pipeline.QueueSize,
		Policy:    policy,
		Logger:    log,
	}, nil
}
