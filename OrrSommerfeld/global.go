package OrrSommerfeld

import (
	"sync"

	"go.uber.org/zap"

	"github.com/notargets/poiseuille/utils"
)

// NumGlobalDOF is the size of the assembled system for N elements: a value
// and a slope unknown at each of the N+1 nodes
func NumGlobalDOF(N int) int { return 2 * (N + 1) }

// LocalToGlobal maps local function i of element k onto the node-major global
// numbering (value, slope) per node
func LocalToGlobal(k, i int) (g int) {
	switch i {
	case 0:
		g = 2 * k
	case 1:
		g = 2*k + 2
	case 2:
		g = 2*k + 1
	case 3:
		g = 2*k + 3
	default:
		panic("local index out of range")
	}
	return
}

// AssembleGlobal computes the element matrices of N elements of width h and
// scatters them into one sparse system. Elements are split into contiguous
// buckets, one goroutine each. Any element failure fails the whole assembly.
func (as *Assembler) AssembleGlobal(N int, h float64, sp SpectralParams) (G *utils.CSparse, err error) {
	var (
		ed = ElementDescriptor{N: N, H: h}
	)
	if err = ed.Validate(); err != nil {
		return
	}
	if err = sp.Validate(); err != nil {
		return
	}
	var (
		NP       = utils.ClampParallelDegree(as.ParallelDegree, N)
		pm       = utils.NewPartitionMap(NP, N)
		elements = make([]ElementMatrix, N)
		errs     = make([]error, NP)
		inner    = *as
		wg       = sync.WaitGroup{}
	)
	if NP > 1 {
		inner.ParallelDegree = 1 // Parallelism is spent on elements
	}
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				A, err := inner.Assemble(ElementDescriptor{N: N, H: h, K: k}, sp)
				if err != nil {
					errs[np] = &ElementError{K: k, Err: err}
					return
				}
				elements[k] = A
			}
		}(np)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			err = e
			return
		}
	}
	G = utils.NewCSparse(NumGlobalDOF(N), NumGlobalDOF(N))
	for k, A := range elements {
		for i := 0; i < NDOF; i++ {
			for j := 0; j < NDOF; j++ {
				G.AddAt(LocalToGlobal(k, i), LocalToGlobal(k, j), A[i][j])
			}
		}
	}
	G.SetReadOnly("A")
	as.logger().Debug("global system assembled",
		zap.Int("elements", N), zap.Int("dof", NumGlobalDOF(N)),
		zap.Int("nnz", G.NNZ()), zap.Int("parallelDegree", NP))
	return
}
