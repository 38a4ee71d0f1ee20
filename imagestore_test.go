package icyengine

import "testing"

func TestImageStorePutGet(t *testing.T) {
	s := NewImageStore()
	pixels := []RGBAQuad{{255, 0, 0, 255}, {0, 255, 0, 255}}
	s.Put("brush1", 2, 1, pixels)

	got := s.Get("brush1")
	if got == nil || got.Width != 2 || got.Height != 1 {
		t.Fatalf("expected stored image 2x1, got %#v", got)
	}
	if s.Get("missing") != nil {
		t.Fatal("expected nil for unknown name")
	}
}

func TestImageStoreDeleteAndClear(t *testing.T) {
	s := NewImageStore()
	s.Put("a", 1, 1, []RGBAQuad{{1, 2, 3, 255}})
	s.Put("b", 1, 1, []RGBAQuad{{4, 5, 6, 255}})

	s.Delete("a")
	if s.Get("a") != nil {
		t.Fatal("expected a to be deleted")
	}
	if len(s.Names()) != 1 {
		t.Fatalf("expected 1 remaining image, got %d", len(s.Names()))
	}

	s.Clear()
	if len(s.Names()) != 0 {
		t.Fatal("expected empty store after Clear")
	}
}
