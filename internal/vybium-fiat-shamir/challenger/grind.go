package challenger

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-fiat-shamir/internal/vybium-fiat-shamir/permutation"
)

// Grind searches for a proof-of-work witness w < field.P such that observing
// [w, 0, ..., 0] makes the next SampleBits(b) call return zero, commits that
// observation on the challenger, and returns the witness.
//
// The search runs lane-packed permutations over batches of consecutive
// candidates on a worker pool. Any successful batch may win; within the
// winning batch the lowest satisfying lane is selected, so the returned
// witness is always valid but not globally deterministic across runs. The
// challenger itself is not touched until a witness has been chosen.
//
// Panics unless 0 < b < FieldBits.
func (c *DuplexChallenger) Grind(b int) field.Element {
	if b <= 0 || b >= FieldBits {
		panic(fmt.Sprintf("challenger: grinding difficulty %d outside (0, %d)", b, FieldBits))
	}
	mask := uint64(1)<<uint(b) - 1

	// Slots RATE..WIDTH of every packed state carry the live capacity;
	// slots 1..RATE are the zero padding of the observed block.
	var capacity [Capacity]permutation.Packed
	for i := 0; i < Capacity; i++ {
		capacity[i] = permutation.Broadcast(c.spongeState[Rate+i])
	}

	var (
		nextBase atomic.Uint64
		stop     atomic.Bool
		mu       sync.Mutex
		witness  uint64
		found    bool
	)

	worker := func() {
		var state [permutation.Width]permutation.Packed
		for !stop.Load() {
			base := nextBase.Add(permutation.Lanes) - permutation.Lanes
			if base >= field.P {
				return
			}

			for lane := 0; lane < permutation.Lanes; lane++ {
				cand := base + uint64(lane)
				if cand < field.P {
					state[0][lane] = field.New(cand)
				} else {
					state[0][lane] = field.Zero
				}
			}
			for i := 1; i < Rate; i++ {
				state[i] = permutation.Broadcast(field.Zero)
			}
			copy(state[Rate:], capacity[:])

			c.perm.PermutePacked(&state)

			for lane := 0; lane < permutation.Lanes; lane++ {
				cand := base + uint64(lane)
				if cand >= field.P {
					break
				}
				if state[0][lane].Value()&mask == 0 {
					mu.Lock()
					if !found {
						found = true
						witness = cand
						stop.Store(true)
					}
					mu.Unlock()
					return
				}
			}
		}
	}

	var wg sync.WaitGroup
	for w := 0; w < runtime.NumCPU(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker()
		}()
	}
	wg.Wait()

	if !found {
		panic("challenger: no grinding witness in field range")
	}

	w := field.New(witness)
	var block [Rate]field.Element
	for i := range block {
		block[i] = field.Zero
	}
	block[0] = w
	c.Observe(block)
	if c.SampleBits(b) != 0 {
		panic("challenger: grinding witness failed recheck")
	}
	return w
}

// CheckWitness observes [w, 0, ..., 0] and reports whether the next
// SampleBits(b) call returns zero. Mutates the challenger either way, exactly
// as the prover's committing observe does.
func (c *DuplexChallenger) CheckWitness(b int, w field.Element) bool {
	var block [Rate]field.Element
	for i := range block {
		block[i] = field.Zero
	}
	block[0] = w
	c.Observe(block)
	return c.SampleBits(b) == 0
}
