package buffer

import "testing"

func TestNewClampsNegativeLength(t *testing.T) {
	b := New(-4)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", b.Len())
	}
}

func TestFromSliceShares(t *testing.T) {
	s := []float64{1, 2, 3}
	b := FromSlice(s)
	b.Samples()[1] = 9
	if s[1] != 9 {
		t.Fatal("FromSlice must not copy")
	}
}

func TestResizeReusesCapacity(t *testing.T) {
	b := New(8)
	backing := &b.Samples()[0]
	b.Resize(4)
	b.Resize(8)
	if &b.Samples()[0] != backing {
		t.Fatal("Resize within capacity must not reallocate")
	}
}

func TestResizeZeroesNewTail(t *testing.T) {
	b := New(4)
	for i := range b.Samples() {
		b.Samples()[i] = 1
	}
	b.Resize(2)
	b.Resize(4)
	s := b.Samples()
	if s[2] != 0 || s[3] != 0 {
		t.Fatalf("tail not zeroed: %v", s)
	}
}

func TestCopyIsDeep(t *testing.T) {
	b := New(3)
	b.Samples()[0] = 5
	c := b.Copy()
	c.Samples()[0] = 7
	if b.Samples()[0] != 5 {
		t.Fatal("Copy must not share backing storage")
	}
}

func TestPoolReturnsZeroedBuffers(t *testing.T) {
	p := NewPool()
	b := p.Get(16)
	for i := range b.Samples() {
		b.Samples()[i] = 1
	}
	p.Put(b)

	c := p.Get(16)
	for i, v := range c.Samples() {
		if v != 0 {
			t.Fatalf("pooled buffer not zeroed at %d: %v", i, v)
		}
	}
	p.Put(c)
}

func TestPoolPutNil(t *testing.T) {
	p := NewPool()
	p.Put(nil) // must not panic
}
