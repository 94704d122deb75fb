package deck

import "fmt"

// Store is the ordered slide sequence plus the current-slide cursor.
// Invariant: the cursor is -1 exactly when the store is empty, otherwise it
// is a valid index. Every structural mutation re-clamps it.
//
// The store is mutated only from the single command flow driving it, so it
// carries no lock. Renderers and views only read.
type Store struct {
	slides  []*Slide
	current int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{current: -1}
}

// Len returns the number of slides.
func (st *Store) Len() int { return len(st.slides) }

// Slides returns the slide sequence. Callers must not reorder it.
func (st *Store) Slides() []*Slide { return st.slides }

// CurrentIndex returns the cursor, -1 when the store is empty.
func (st *Store) CurrentIndex() int { return st.current }

// Current returns the slide under the cursor, nil when empty.
func (st *Store) Current() *Slide {
	if st.current < 0 {
		return nil
	}
	return st.slides[st.current]
}

// Get returns the slide at index i.
func (st *Store) Get(i int) (*Slide, error) {
	if i < 0 || i >= len(st.slides) {
		return nil, fmt.Errorf("slide index %d out of range [0,%d)", i, len(st.slides))
	}
	return st.slides[i], nil
}

// SetCurrent moves the cursor.
func (st *Store) SetCurrent(i int) error {
	if i < 0 || i >= len(st.slides) {
		return fmt.Errorf("slide index %d out of range [0,%d)", i, len(st.slides))
	}
	st.current = i
	return nil
}

// Add appends a slide and selects it.
func (st *Store) Add(s *Slide) {
	st.slides = append(st.slides, s)
	st.current = len(st.slides) - 1
}

// Append adds slides at the end without moving the cursor, except when the
// store was empty, in which case the first new slide is selected.
func (st *Store) Append(slides ...*Slide) {
	st.slides = append(st.slides, slides...)
	st.clamp()
}

// Replace swaps the whole deck, as the bulk generator and file loading do.
// The cursor moves to the first slide, or -1 for an empty deck.
func (st *Store) Replace(slides []*Slide) {
	st.slides = slides
	if len(st.slides) == 0 {
		st.current = -1
	} else {
		st.current = 0
	}
}

// Delete removes the slide at index i. The cursor stays on the same
// position where possible and clamps to the new bounds otherwise.
func (st *Store) Delete(i int) error {
	if i < 0 || i >= len(st.slides) {
		return fmt.Errorf("slide index %d out of range [0,%d)", i, len(st.slides))
	}
	st.slides = append(st.slides[:i], st.slides[i+1:]...)
	if st.current > i {
		st.current--
	}
	st.clamp()
	return nil
}

// Duplicate inserts a copy of the slide at index i directly after it and
// selects the copy. The copy gets a fresh ID.
func (st *Store) Duplicate(i int) (*Slide, error) {
	src, err := st.Get(i)
	if err != nil {
		return nil, err
	}

	dup := src.Clone()
	st.slides = append(st.slides, nil)
	copy(st.slides[i+2:], st.slides[i+1:])
	st.slides[i+1] = dup
	st.current = i + 1
	return dup, nil
}

// clamp restores the cursor invariant after a structural change.
func (st *Store) clamp() {
	switch {
	case len(st.slides) == 0:
		st.current = -1
	case st.current < 0:
		st.current = 0
	case st.current >= len(st.slides):
		st.current = len(st.slides) - 1
	}
}
