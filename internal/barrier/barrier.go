// Package barrier provides a reusable rendezvous point for a fixed group of goroutines.
//
// A Barrier is cyclic: once every party has arrived, the barrier opens, starts a new
// generation and can immediately be waited on again. Everything a party wrote before
// calling Wait happens-before everything any party reads after its Wait returns.
package barrier

import "sync"

// Barrier blocks each caller of Wait until all parties have called Wait.
type Barrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	parties    int
	waiting    int
	generation uint64
}

// New creates a barrier for the given number of parties.
// It panics if parties < 1.
func New(parties int) *Barrier {
	if parties < 1 {
		panic("barrier: parties must be positive")
	}
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Parties returns the number of goroutines required to open the barrier.
func (b *Barrier) Parties() int {
	return b.parties
}

// Wait blocks until all parties have arrived.
// It returns true to exactly one caller per generation: the last one to arrive.
func (b *Barrier) Wait() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	gen := b.generation
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.generation++
		b.cond.Broadcast()
		return true
	}

	for gen == b.generation {
		b.cond.Wait()
	}
	return false
}
