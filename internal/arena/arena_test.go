package arena

import "testing"

func TestAllocTracksRecords(t *testing.T) {
	a := New()
	h1 := a.Alloc(16)
	h2 := a.Alloc(32)

	if a.Count() != 2 {
		t.Errorf("Expected 2 live records, got %d", a.Count())
	}
	if a.TotalBytes() != 48 {
		t.Errorf("Expected 48 total bytes, got %d", a.TotalBytes())
	}
	if h1 == h2 {
		t.Error("Expected distinct handles for distinct allocations")
	}
	if len(a.Bytes(h1)) != 16 {
		t.Errorf("Expected 16-byte buffer, got %d", len(a.Bytes(h1)))
	}
}

func TestTrackingListDoubles(t *testing.T) {
	a := New()
	// Push well past the initial reserve to force several doublings.
	handles := make([]Handle, 0, 64)
	for i := 0; i < 64; i++ {
		handles = append(handles, a.Alloc(8))
	}
	if a.Count() != 64 {
		t.Fatalf("Expected 64 live records, got %d", a.Count())
	}
	// Every handle must still resolve after the list grew.
	for _, h := range handles {
		if len(a.Bytes(h)) != 8 {
			t.Fatalf("Handle %d lost its buffer after growth", h)
		}
	}
}

func TestGrowPreservesContents(t *testing.T) {
	a := New()
	h := a.Alloc(4)
	copy(a.Bytes(h), "abcd")

	buf := a.Grow(h, 6)
	if len(buf) != 8 {
		t.Errorf("Expected doubled capacity 8, got %d", len(buf))
	}
	if string(buf[:4]) != "abcd" {
		t.Errorf("Grow lost contents: %q", buf[:4])
	}

	// A request larger than double wins over the doubling policy.
	buf = a.Grow(h, 100)
	if len(buf) != 100 {
		t.Errorf("Expected capacity 100, got %d", len(buf))
	}
	if string(buf[:4]) != "abcd" {
		t.Errorf("Second grow lost contents: %q", buf[:4])
	}
}

func TestReleaseSwapsWithLast(t *testing.T) {
	a := New()
	h1 := a.Alloc(1)
	h2 := a.Alloc(2)
	h3 := a.Alloc(3)

	a.Release(h1)
	if a.Count() != 2 {
		t.Fatalf("Expected 2 live records after release, got %d", a.Count())
	}
	if a.TotalBytes() != 5 {
		t.Errorf("Expected 5 total bytes after release, got %d", a.TotalBytes())
	}
	// Remaining handles stay valid regardless of internal ordering.
	if len(a.Bytes(h2)) != 2 || len(a.Bytes(h3)) != 3 {
		t.Error("Surviving handles no longer resolve after swap-remove")
	}
}

func TestResetReleasesEverything(t *testing.T) {
	a := New()
	a.Alloc(10)
	a.Alloc(20)
	a.Reset()

	if a.Count() != 0 {
		t.Errorf("Expected 0 live records after reset, got %d", a.Count())
	}
	if a.TotalBytes() != 0 {
		t.Errorf("Expected 0 total bytes after reset, got %d", a.TotalBytes())
	}
}

func TestUnknownHandlePanics(t *testing.T) {
	a := New()
	h := a.Alloc(4)
	a.Release(h)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for a released handle")
		}
	}()
	a.Release(h)
}

func TestCopyString(t *testing.T) {
	a := New()
	s := a.CopyString("hello")
	if s != "hello" {
		t.Errorf("Expected copy %q, got %q", "hello", s)
	}
	if a.Count() != 1 {
		t.Errorf("Expected the copy to be tracked, count=%d", a.Count())
	}

	empty := a.CopyString("")
	if empty != "" {
		t.Errorf("Expected empty copy, got %q", empty)
	}
}
