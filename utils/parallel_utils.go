package utils

import "runtime"

// PartitionMap splits the element range [0, MaxIndex) into ParallelDegree
// contiguous buckets, one per goroutine
type PartitionMap struct {
	MaxIndex       int
	ParallelDegree int
	Partitions     [][2]int // [first, last+1) element of each bucket
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for bn := range pm.Partitions {
		pm.Partitions[bn] = pm.Split1D(bn)
	}
	return
}

// ClampParallelDegree bounds a requested degree of parallelism to [1, NumCPU]
// and to the amount of work available
func ClampParallelDegree(requested, work int) (np int) {
	np = requested
	if np < 1 {
		np = 1
	}
	if ncpu := runtime.NumCPU(); np > ncpu {
		np = ncpu
	}
	if work > 0 && np > work {
		np = work
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

// Split1D returns the range of bucket bn. Bucket sizes differ by at most one,
// the leading MaxIndex % ParallelDegree buckets carry the extra element.
func (pm *PartitionMap) Split1D(bn int) (bucket [2]int) {
	var (
		size  = pm.MaxIndex / pm.ParallelDegree
		extra = pm.MaxIndex % pm.ParallelDegree
	)
	bucket[0] = bn*size + min(bn, extra)
	bucket[1] = bucket[0] + size
	if bn < extra {
		bucket[1]++
	}
	return
}
