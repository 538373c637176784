package web

// Table maps small integer names to backend objects.
// Names start at 1 and are not reused until the counter wraps around,
// after that live names are skipped. 0 is never handed out.
type Table[V any] struct {
	next    uint32
	entries map[uint32]V
}

func NewTable[V any]() *Table[V] { return &Table[V]{entries: map[uint32]V{}} }

// Insert stores v under a fresh name.
func (t *Table[V]) Insert(v V) uint32 {
	for {
		t.next++
		if _, live := t.entries[t.next]; t.next != 0 && !live {
			break
		}
	}
	t.entries[t.next] = v
	return t.next
}

func (t *Table[V]) Get(id uint32) (V, bool) {
	v, ok := t.entries[id]
	return v, ok
}

// Remove deletes the entry and returns it.
func (t *Table[V]) Remove(id uint32) (V, bool) {
	v, ok := t.entries[id]
	if ok {
		delete(t.entries, id)
	}
	return v, ok
}

func (t *Table[V]) Len() int { return len(t.entries) }
