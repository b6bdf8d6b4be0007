package utils

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Buckets are contiguous, cover [0, N) and differ in size by at most one
		for _, np := range []int{1, 2, 3, 7, 32} {
			for N := np; N < 300; N++ {
				var (
					pm         = NewPartitionMap(np, N)
					next       int
					small, big = N, 0
				)
				for bn := 0; bn < np; bn++ {
					kMin, kMax := pm.GetBucketRange(bn)
					assert.Equal(t, next, kMin)
					next = kMax
					small, big = min(small, kMax-kMin), max(big, kMax-kMin)
				}
				assert.Equal(t, N, next)
				assert.LessOrEqual(t, big-small, 1)
			}
		}
	}
	{ // Leading buckets take the remainder
		pm := NewPartitionMap(4, 10)
		assert.Equal(t, [][2]int{{0, 3}, {3, 6}, {6, 8}, {8, 10}}, pm.Partitions)
	}
	{ // More buckets than elements leaves trailing buckets empty
		pm := NewPartitionMap(4, 2)
		assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 2}, {2, 2}}, pm.Partitions)
	}
}

func TestClampParallelDegree(t *testing.T) {
	assert.Equal(t, 1, ClampParallelDegree(0, 10))
	assert.Equal(t, 1, ClampParallelDegree(-4, 10))
	assert.Equal(t, 1, ClampParallelDegree(8, 1))
	assert.LessOrEqual(t, ClampParallelDegree(1000, 1000), runtime.NumCPU())
	assert.Equal(t, min(2, runtime.NumCPU()), ClampParallelDegree(2, 0))
}
