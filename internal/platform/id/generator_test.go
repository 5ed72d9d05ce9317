package id

import (
	"sync"
	"testing"
)

func TestSequence_StartsAfterSeed(t *testing.T) {
	seq := NewSequence(8)
	if got := seq.NextID(); got != 9 {
		t.Fatalf("unexpected first id: got=%d want=9", got)
	}
	if got := seq.NextID(); got != 10 {
		t.Fatalf("unexpected second id: got=%d want=10", got)
	}
}

func TestSequence_UniqueUnderConcurrency(t *testing.T) {
	seq := NewSequence(0)

	const workers = 16
	const perWorker = 100

	ids := make(chan int64, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				ids <- seq.NextID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]struct{}, workers*perWorker)
	for v := range ids {
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate id %d", v)
		}
		seen[v] = struct{}{}
	}
	if len(seen) != workers*perWorker {
		t.Fatalf("unexpected id count: got=%d", len(seen))
	}
}
