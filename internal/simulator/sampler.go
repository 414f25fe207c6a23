package simulator

import (
	"context"
	"math/rand/v2"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-circuit-runner/models"
)

const (
	// minShotsPerWorker keeps small jobs on a single goroutine.
	minShotsPerWorker = 4096

	// cancelCheckEvery is how many shots a worker draws between context checks.
	cancelCheckEvery = 1024
)

// distribution is the inverse CDF over basis states together with the
// classical bitstring each basis state reads out as.
type distribution struct {
	cdf    []float64
	labels []string
}

func newDistribution(probs []float64, measurements []models.Operation, bitCount int) distribution {
	cdf := make([]float64, len(probs))
	labels := make([]string, len(probs))

	var acc float64
	for i, p := range probs {
		acc += p
		cdf[i] = acc
		if p > 0 {
			labels[i] = readout(i, measurements, bitCount)
		}
	}

	return distribution{cdf: cdf, labels: labels}
}

// readout maps basis index i to a bitstring of length bitCount. Classical
// bit b is the character at position bitCount-1-b, so bit 0 is rightmost.
// Bits no measurement writes to stay '0'.
func readout(i int, measurements []models.Operation, bitCount int) string {
	bits := []byte(strings.Repeat("0", bitCount))
	for _, m := range measurements {
		if i>>m.Qubit&1 == 1 {
			bits[bitCount-1-m.Bit] = '1'
		}
	}
	return string(bits)
}

// draw returns the label of the basis state selected by u in [0, 1).
func (d distribution) draw(u float64) string {
	last := len(d.cdf) - 1
	// scale by the total so accumulated rounding never leaves u past the end
	u *= d.cdf[last]

	idx := sort.Search(len(d.cdf), func(i int) bool { return d.cdf[i] > u })
	if idx > last {
		idx = last
	}
	for d.labels[idx] == "" && idx > 0 {
		idx--
	}
	return d.labels[idx]
}

// sample fills shots outcomes, splitting the work across up to b.parallelism
// goroutines. Each goroutine owns a disjoint slice range and its own PCG
// stream, so no synchronisation is needed beyond the errgroup.
func (b *statevectorBackend) sample(ctx context.Context, d distribution, shots int) (models.Outcomes, error) {
	outcomes := make(models.Outcomes, shots)

	workers := min(b.parallelism, (shots+minShotsPerWorker-1)/minShotsPerWorker)
	workers = max(workers, 1)
	chunk := (shots + workers - 1) / workers

	seed := b.seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, shots)
		if start >= end {
			break
		}

		rng := rand.New(rand.NewPCG(seed, uint64(w)))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if (i-start)%cancelCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				outcomes[i] = d.draw(rng.Float64())
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
