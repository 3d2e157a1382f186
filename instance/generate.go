package instance

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/heldkarp/tsp"
)

// GenConfig controls Generate.
//
// Nodes     – instance size, 1 ≤ Nodes ≤ tsp.MaxNodes.
// Seed      – RNG seed; 0 selects a fixed default stream.
// MaxWeight – edge costs are drawn uniformly from [1, MaxWeight].
// Missing   – probability in [0, 1) that an off-diagonal edge is tsp.NoEdge.
// Symmetric – mirror the upper triangle so d(u,v) == d(v,u).
// Feasible  – plant a random Hamiltonian cycle that Missing never removes.
// Start     – start vertex recorded in the instance.
type GenConfig struct {
	Nodes     int
	Seed      int64
	MaxWeight int32
	Missing   float64
	Symmetric bool
	Feasible  bool
	Start     int
}

// DefaultGenConfig returns a config for a complete asymmetric instance.
func DefaultGenConfig(nodes int) GenConfig {
	return GenConfig{
		Nodes:     nodes,
		MaxWeight: 100,
	}
}

func (c GenConfig) validate() error {
	if c.Nodes < 1 || c.Nodes > tsp.MaxNodes {
		return errors.Wrapf(ErrRange, "nodes must be between 1 and %d, got %d", tsp.MaxNodes, c.Nodes)
	}
	if c.MaxWeight < 1 || c.MaxWeight >= tsp.NoEdge {
		return errors.Wrapf(ErrRange, "max weight must be between 1 and %d, got %d", tsp.NoEdge-1, c.MaxWeight)
	}
	if c.Missing < 0 || c.Missing >= 1 {
		return errors.Wrapf(ErrRange, "missing-edge probability must be in [0, 1), got %g", c.Missing)
	}
	if c.Start < 0 || c.Start >= c.Nodes {
		return errors.Wrapf(ErrRange, "start vertex must be between 0 and %d, got %d", c.Nodes-1, c.Start)
	}

	return nil
}

// Generate builds a deterministic random instance. Diagonal entries are 0.
//
// Complexity: O(n²).
func Generate(cfg GenConfig) (*Instance, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var (
		n    = cfg.Nodes
		rng  = rngFromSeed(cfg.Seed)
		dist = make(tsp.Matrix, n)
		keep = make([]bool, n*n) // edges of the planted cycle
		i, j int
	)
	for i = 0; i < n; i++ {
		dist[i] = make([]int32, n)
	}

	if cfg.Feasible && n > 1 {
		var cycle = permRange(n, rng)
		for i = 0; i < n; i++ {
			keep[cycle[i]*n+cycle[(i+1)%n]] = true
			if cfg.Symmetric {
				keep[cycle[(i+1)%n]*n+cycle[i]] = true
			}
		}
	}

	draw := func(u, v int) int32 {
		if !keep[u*n+v] && cfg.Missing > 0 && rng.Float64() < cfg.Missing {
			return tsp.NoEdge
		}
		return 1 + rng.Int31n(cfg.MaxWeight)
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if cfg.Symmetric && j < i {
				dist[i][j] = dist[j][i]
				continue
			}
			dist[i][j] = draw(i, j)
		}
	}

	return &Instance{Dist: dist, Start: cfg.Start}, nil
}
