package core

// ReadyQueue is a FIFO of process indices awaiting dispatch.
// An index may be queued again after it has been removed.
type ReadyQueue struct {
	queue []int
	head  int
}

func NewReadyQueue(capacity int) *ReadyQueue {
	return &ReadyQueue{queue: make([]int, 0, capacity)}
}

func (q *ReadyQueue) AddToEnd(idx int) {
	q.queue = append(q.queue, idx)
}

// RemoveFromTop pops the front index. ok is false when the queue is empty.
func (q *ReadyQueue) RemoveFromTop() (idx int, ok bool) {
	if q.head >= len(q.queue) {
		return 0, false
	}
	idx = q.queue[q.head]
	q.head++

	// reclaim the consumed prefix once it dominates the backing array
	if q.head > len(q.queue)/2 {
		n := copy(q.queue, q.queue[q.head:])
		q.queue = q.queue[:n]
		q.head = 0
	}
	return idx, true
}

func (q *ReadyQueue) Len() int {
	return len(q.queue) - q.head
}

func (q *ReadyQueue) Empty() bool {
	return q.Len() == 0
}
