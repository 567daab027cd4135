package fragment

import "testing"

func mustPanic(t *testing.T, label string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic, got none", label)
		}
		if _, ok := r.(Violation); !ok {
			t.Fatalf("%s: panic value %v is not a Violation", label, r)
		}
	}()
	f()
}

func TestNewAndFromArray(t *testing.T) {
	f := FromArray([]byte{1, 2, 3})
	if f.Len() != 3 || f.MaxLen() != 3 {
		t.Fatalf("FromArray len/cap = %d/%d, want 3/3", f.Len(), f.MaxLen())
	}
}

func TestNewCapacityViolation(t *testing.T) {
	mustPanic(t, "offset+length>maxLen", func() {
		New([]byte{1, 2, 3}, 0, 3, 2)
	})
}

func TestAtAndSet(t *testing.T) {
	f := FromArray([]byte{1, 2, 3})
	if f.At(1) != 2 {
		t.Fatalf("At(1) = %d, want 2", f.At(1))
	}
	f.Set(1, 9)
	if f.At(1) != 9 {
		t.Fatalf("Set did not persist")
	}
	mustPanic(t, "At out of range", func() { f.At(3) })
}

func TestSubFragmentAndSlice(t *testing.T) {
	f := FromArray([]byte{1, 2, 3, 4, 5})
	sub := f.SubFragment(1, 3)
	if sub.Len() != 3 || sub.At(0) != 2 {
		t.Fatalf("SubFragment wrong: len=%d at0=%d", sub.Len(), sub.At(0))
	}
	sl := f.Slice(2, 4)
	if sl.Len() != 2 || sl.At(0) != 3 {
		t.Fatalf("Slice wrong: len=%d at0=%d", sl.Len(), sl.At(0))
	}
	mustPanic(t, "SubFragment escapes bounds", func() { f.SubFragment(3, 5) })
}

func TestFirstLast(t *testing.T) {
	f := FromArray([]byte{7, 8, 9})
	if f.First() != 7 || f.Last() != 9 {
		t.Fatalf("First/Last = %d/%d, want 7/9", f.First(), f.Last())
	}
	mustPanic(t, "First on empty", func() { Empty[byte](4).First() })
}

func TestPushPopBack(t *testing.T) {
	f := New(make([]byte, 4), 0, 0, 4)
	f = f.PushBack(1)
	f = f.PushBack(2)
	if f.Len() != 2 || f.At(0) != 1 || f.At(1) != 2 {
		t.Fatalf("PushBack wrong: %+v", f.ToSlice())
	}
	var v byte
	f, v = f.PopBack()
	if v != 2 || f.Len() != 1 {
		t.Fatalf("PopBack wrong: v=%d len=%d", v, f.Len())
	}
	mustPanic(t, "PushBack over capacity", func() {
		g := New(make([]byte, 2), 0, 2, 2)
		g.PushBack(3)
	})
}

func TestPushPopFront(t *testing.T) {
	backing := make([]byte, 4)
	f := New(backing, 2, 0, 4)
	f = f.PushFront(5)
	if f.Len() != 1 || f.At(0) != 5 {
		t.Fatalf("PushFront wrong: %+v", f.ToSlice())
	}
	var v byte
	f, v = f.PopFront()
	if v != 5 || f.Len() != 0 {
		t.Fatalf("PopFront wrong: v=%d len=%d", v, f.Len())
	}
	mustPanic(t, "PushFront at offset 0", func() {
		g := New(make([]byte, 4), 0, 0, 4)
		g.PushFront(1)
	})
}

func TestExtendFromSlice(t *testing.T) {
	f := New(make([]byte, 5), 0, 0, 5)
	f = f.ExtendFromSlice([]byte{1, 2, 3})
	if f.Len() != 3 {
		t.Fatalf("ExtendFromSlice len = %d, want 3", f.Len())
	}
	mustPanic(t, "ExtendFromSlice over capacity", func() {
		g := New(make([]byte, 2), 0, 0, 2)
		g.ExtendFromSlice([]byte{1, 2, 3})
	})
}

func TestFocus(t *testing.T) {
	f := FromArray([]byte{1, 2, 3})
	g := f.Focus(10)
	if g.Len() != 3 || g.MaxLen() != 10 {
		t.Fatalf("Focus wrong: len=%d cap=%d", g.Len(), g.MaxLen())
	}
	if !Equal(f, g) {
		t.Fatalf("Focus changed content")
	}
	mustPanic(t, "Focus too small", func() { f.Focus(2) })
}

func TestEqual(t *testing.T) {
	a := FromArray([]byte{1, 2, 3})
	b := FromArray([]byte{1, 2, 3})
	c := FromArray([]byte{1, 2, 4})
	if !Equal(a, b) {
		t.Fatalf("Equal(a, b) = false, want true")
	}
	if Equal(a, c) {
		t.Fatalf("Equal(a, c) = true, want false")
	}
}

func TestToSliceIndependentOfBacking(t *testing.T) {
	backing := []byte{1, 2, 3}
	f := FromArray(backing)
	s := f.ToSlice()
	s[0] = 99
	if f.At(0) != 1 {
		t.Fatalf("ToSlice aliased backing array")
	}
}
