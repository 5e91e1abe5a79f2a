package lexer

import "fmt"

// deque is a fixed-capacity ring of cells, front = oldest. Capacity is
// set once at construction; overflowing it is a defect in the calling
// code, not a recoverable condition.
type deque struct {
	cells []cell
	head  int
	n     int
}

func newDeque(capacity int) deque {
	if capacity < 1 {
		panic(fmt.Errorf("lookahead capacity must be at least 1, got %d", capacity))
	}
	return deque{
		cells: make([]cell, capacity),
	}
}

func (d *deque) at(i int) *cell {
	return &d.cells[(d.head+i)%len(d.cells)]
}

func (d *deque) back() *cell {
	if d.n == 0 {
		return nil
	}
	return d.at(d.n - 1)
}

func (d *deque) pushBack(c cell) *cell {
	if d.n == len(d.cells) {
		panic(fmt.Errorf("lookahead buffer overflow: capacity %d exhausted", len(d.cells)))
	}
	slot := d.at(d.n)
	*slot = c
	d.n++
	return slot
}

func (d *deque) popFront() cell {
	if d.n == 0 {
		panic(fmt.Errorf("pop from empty lookahead buffer"))
	}
	c := *d.at(0)
	d.head = (d.head + 1) % len(d.cells)
	d.n--
	return c
}
