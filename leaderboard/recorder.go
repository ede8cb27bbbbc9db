package leaderboard

import (
	"context"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/lixenwraith/turtle-dive/event"
)

// Ranker is the storage the recorder writes through
type Ranker interface {
	Add(ctx context.Context, e Entry) ([]Entry, error)
	Top(ctx context.Context, n int) ([]Entry, error)
	Clear(ctx context.Context) error
}

// recorderQueueSize bounds pending writes; results beyond it are dropped and logged
const recorderQueueSize = 16

// writeTimeout bounds a single storage operation
const writeTimeout = 5 * time.Second

type job struct {
	entry Entry
	clear bool
}

// Recorder persists game results off the frame loop
// HandleEvent never blocks; storage runs on the recorder's goroutine
type Recorder struct {
	ranker Ranker
	jobs   chan job
	done   chan struct{}

	mu     sync.RWMutex
	latest []Entry
	err    error
}

// NewRecorder starts the background writer
func NewRecorder(ranker Ranker) *Recorder {
	r := &Recorder{
		ranker: ranker,
		jobs:   make(chan job, recorderQueueSize),
		done:   make(chan struct{}),
	}
	go r.run()
	return r
}

// Refresh loads the current ranking synchronously
func (r *Recorder) Refresh(ctx context.Context) error {
	top, err := r.ranker.Top(ctx, 0)
	r.store(top, err)
	return err
}

// EventTypes implements event.Handler
func (r *Recorder) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameOver}
}

// HandleEvent queues the final result of an episode
func (r *Recorder) HandleEvent(ev event.GameEvent) {
	result, ok := ev.Payload.(*event.GameOverPayload)
	if !ok || result == nil {
		return
	}
	r.enqueue(job{entry: Entry{
		ID:        result.EpisodeID,
		Name:      result.DisplayName,
		Score:     result.Score,
		CreatedAt: time.Now(),
	}})
}

// Clear queues removal of all entries
func (r *Recorder) Clear() {
	r.enqueue(job{clear: true})
}

func (r *Recorder) enqueue(j job) {
	select {
	case r.jobs <- j:
	default:
		log.Printf("leaderboard: write queue full, dropping result for %q", j.entry.Name)
	}
}

// Latest returns a copy of the most recently loaded ranking
func (r *Recorder) Latest() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.latest)
}

// Err returns the last storage error, nil after a successful operation
func (r *Recorder) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

// Close stops accepting work and waits for pending writes
func (r *Recorder) Close() {
	close(r.jobs)
	<-r.done
}

func (r *Recorder) run() {
	defer close(r.done)
	for j := range r.jobs {
		r.process(j)
	}
}

func (r *Recorder) process(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if j.clear {
		if err := r.ranker.Clear(ctx); err != nil {
			log.Printf("leaderboard: clear failed: %v", err)
			r.store(nil, err)
			return
		}
		r.store(nil, nil)
		log.Printf("leaderboard: cleared")
		return
	}

	top, err := r.ranker.Add(ctx, j.entry)
	if err != nil {
		log.Printf("leaderboard: saving %q (%d) failed: %v", j.entry.Name, j.entry.Score, err)
		r.store(nil, err)
		return
	}
	log.Printf("leaderboard: saved %q with %d", j.entry.Name, j.entry.Score)
	r.store(top, nil)
}

func (r *Recorder) store(top []Entry, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err == nil {
		r.latest = top
	}
	r.err = err
}
