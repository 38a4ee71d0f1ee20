package icyengine

import "testing"

func TestSauceRoundTrip(t *testing.T) {
	body := []byte("hello world")
	rec := &SauceRecord{
		Title: "My Art", Author: "Someone", Group: "A Group", Date: "20260730",
		DataType: 1, FileType: 1, TInfo1: 80, TInfo2: 25,
	}
	out := WriteSauce(body, rec)

	got, cutoff, ok := ReadSauce(out)
	if !ok {
		t.Fatalf("expected SAUCE record to be found")
	}
	if cutoff != len(body) {
		t.Fatalf("expected cutoff %d, got %d", len(body), cutoff)
	}
	if got.Title != "My Art" || got.Author != "Someone" || got.Group != "A Group" {
		t.Fatalf("unexpected metadata round trip: %#v", got)
	}
	if got.TInfo1 != 80 || got.TInfo2 != 25 {
		t.Fatalf("unexpected TInfo round trip: %#v", got)
	}
}

func TestSauceRoundTripWithComments(t *testing.T) {
	body := []byte("art")
	rec := &SauceRecord{Title: "T", Comments: []string{"line one", "line two"}}
	out := WriteSauce(body, rec)

	got, cutoff, ok := ReadSauce(out)
	if !ok || cutoff != len(body) {
		t.Fatalf("expected record found at cutoff %d, got ok=%v cutoff=%d", len(body), ok, cutoff)
	}
	if len(got.Comments) != 2 || got.Comments[0] != "line one" || got.Comments[1] != "line two" {
		t.Fatalf("unexpected comments: %#v", got.Comments)
	}
}

func TestReadSauceAbsent(t *testing.T) {
	_, cutoff, ok := ReadSauce([]byte("no sauce here"))
	if ok {
		t.Fatalf("expected no SAUCE record found")
	}
	if cutoff != len("no sauce here") {
		t.Fatalf("expected cutoff to equal input length when absent")
	}
}

func TestFontRegistryFallbackChain(t *testing.T) {
	r := NewFontRegistry()
	r.Register(NewBitFont("Amiga Topaz", 8, 8))

	if f := r.LoadSauceFont("IBM VGA 999"); f == nil || f.Name != "IBM VGA" {
		t.Fatalf("expected IBM VGA base font fallback, got %#v", f)
	}
	if f := r.LoadSauceFont("Amiga Topaz+"); f == nil || f.Name != "Amiga Topaz" {
		t.Fatalf("expected Amiga Topaz+ to fall back to Amiga Topaz, got %#v", f)
	}
	if f := r.LoadSauceFont("nonexistent"); f == nil || f.Name != "IBM VGA" {
		t.Fatalf("expected default IBM VGA slot-0 fallback, got %#v", f)
	}
}
