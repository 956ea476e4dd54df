package fmod

import (
	"fmt"
	"iter"
)

// view is the read half every engine-owned indexed sequence provides.
type view[E any] interface {
	count() (int, error)
	at(index int) (E, error)
}

// editor adds the write half: chains that support insertion, unlinking and
// reordering (DSP chains) implement this on top of view.
type editor[E any] interface {
	view[E]
	insert(pos Position, elem E) error
	unlink(elem E) error
	locate(elem E) (int, error)
	relocate(elem E, pos Position) error
}

// List presents an engine-owned indexed sequence as a read-only collection.
// A List is a stateless view bound to its parent handle: it caches nothing,
// so Count re-queries the engine on every call and At re-reads whatever
// element currently sits at the index. Mutation by the engine itself (the
// mixer inserts built-in units into DSP chains on its own) is therefore
// always observed.
type List[E any] struct {
	ops view[E]
}

// Count reports the live size of the sequence.
func (l List[E]) Count() (int, error) {
	return l.ops.count()
}

// At returns the element currently at index. Indices at or beyond the live
// count report absence rather than an error; that includes exactly one past
// the end, which the engine historically tolerates as a query boundary.
// Negative indices are rejected before any engine call: the write-side
// sentinels have no read meaning.
func (l List[E]) At(index int) (E, bool, error) {
	var zero E
	if index < 0 {
		return zero, false, fmt.Errorf("%w: negative read index %d", ErrInvalidArgument, index)
	}
	n, err := l.ops.count()
	if err != nil {
		return zero, false, err
	}
	if index >= n {
		return zero, false, nil
	}
	e, err := l.ops.at(index)
	if err != nil {
		return zero, false, err
	}
	return e, true, nil
}

// All iterates the sequence lazily and restartably. The size is read once
// when iteration begins; each element is then re-read live from the engine
// at its position. The iteration is not a snapshot: if the sequence is
// mutated mid-iteration, by the caller's own loop body or by the engine,
// the remaining positions observe the new layout, so elements can be
// skipped or repeated. This matches how the engine behaves under concurrent
// mixing and is deliberately left visible rather than papered over.
func (l List[E]) All() iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		var zero E
		n, err := l.ops.count()
		if err != nil {
			yield(zero, err)
			return
		}
		for i := 0; i < n; i++ {
			e, ok, err := l.At(i)
			if err != nil {
				yield(zero, err)
				return
			}
			if !ok {
				continue
			}
			if !yield(e, nil) {
				return
			}
		}
	}
}

// Chain extends List with the write operations of a mutable engine chain.
type Chain[E any] struct {
	List[E]
	ops editor[E]
}

func newChain[E any](ops editor[E]) Chain[E] {
	return Chain[E]{List: List[E]{ops: ops}, ops: ops}
}

// Insert places elem at pos. An At(i) position is an insertion, not a
// replacement: the engine shifts the elements at i and beyond one slot
// down. Head and Tail are valid regardless of the current size.
func (c Chain[E]) Insert(pos Position, elem E) error {
	if !pos.valid() {
		return fmt.Errorf("%w: position %d", ErrInvalidArgument, int(pos))
	}
	return c.ops.insert(pos, elem)
}

// Remove unlinks the first occurrence of elem from this sequence. The
// element itself is not destroyed: it keeps its engine identity, stays
// linked into any other chains referencing it, and may be re-inserted.
func (c Chain[E]) Remove(elem E) error {
	return c.ops.unlink(elem)
}

// IndexOf reports the element's current position. If the element is not in
// the sequence the engine's not-found status is returned as a recoverable
// *native.Error.
func (c Chain[E]) IndexOf(elem E) (int, error) {
	return c.ops.locate(elem)
}

// Move relocates an element already present in the sequence to a new
// position, shifting the others accordingly.
func (c Chain[E]) Move(elem E, pos Position) error {
	if !pos.valid() {
		return fmt.Errorf("%w: position %d", ErrInvalidArgument, int(pos))
	}
	return c.ops.relocate(elem, pos)
}

// Append inserts the given elements at the tail, in argument order.
func (c Chain[E]) Append(elems ...E) error {
	for _, e := range elems {
		if err := c.ops.insert(Tail, e); err != nil {
			return err
		}
	}
	return nil
}

// Prepend inserts elem before all current elements.
func (c Chain[E]) Prepend(elem E) error {
	return c.ops.insert(Head, elem)
}

// Pop unlinks and returns the element currently at the tail. An empty
// sequence reports absence, not an error.
func (c Chain[E]) Pop() (E, bool, error) {
	var zero E
	n, err := c.ops.count()
	if err != nil {
		return zero, false, err
	}
	if n == 0 {
		return zero, false, nil
	}
	e, err := c.ops.at(n - 1)
	if err != nil {
		return zero, false, err
	}
	if err := c.ops.unlink(e); err != nil {
		return zero, false, err
	}
	return e, true, nil
}

// Shift unlinks and returns the element currently at the head. An empty
// sequence reports absence, not an error.
func (c Chain[E]) Shift() (E, bool, error) {
	var zero E
	n, err := c.ops.count()
	if err != nil {
		return zero, false, err
	}
	if n == 0 {
		return zero, false, nil
	}
	e, err := c.ops.at(0)
	if err != nil {
		return zero, false, err
	}
	if err := c.ops.unlink(e); err != nil {
		return zero, false, err
	}
	return e, true, nil
}
