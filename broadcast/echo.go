package broadcast

import "sync"

const DefaultEchoCapacity = 1024

// EchoTracker remembers message ids whose sender already got their own copy,
// so the pipeline does not deliver it twice. Past capacity the oldest ids are
// forgotten.
type EchoTracker struct {
	mu       sync.Mutex
	capacity int
	ids      map[string]struct{}
	order    []string
}

func NewEchoTracker(capacity int) *EchoTracker {
	if capacity <= 0 {
		capacity = DefaultEchoCapacity
	}
	return &EchoTracker{capacity: capacity, ids: make(map[string]struct{}, capacity)}
}

// MarkEchoed records that messageID was pre-delivered to its sender.
func (e *EchoTracker) MarkEchoed(messageID string) {
	if messageID == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.ids[messageID]; ok {
		return
	}
	e.ids[messageID] = struct{}{}
	e.order = append(e.order, messageID)
	for len(e.ids) > e.capacity && len(e.order) > 0 {
		oldest := e.order[0]
		e.order = e.order[1:]
		delete(e.ids, oldest)
	}
}

// Consume reports whether the echo of messageID was already sent, and forgets it.
func (e *EchoTracker) Consume(messageID string) bool {
	if messageID == "" {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.ids[messageID]; !ok {
		return false
	}
	delete(e.ids, messageID)
	for i, id := range e.order {
		if id == messageID {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	return true
}

func (e *EchoTracker) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.ids)
}
