package recommendation

import "testing"

func items(n int) []Item {
	out := make([]Item, n)
	for i := range out {
		out[i] = Item{ExternalID: string(rune('a' + i)), Kind: KindVideo}
	}
	return out
}

func TestProjectUnderPreview(t *testing.T) {
	for n := 0; n <= PreviewCount; n++ {
		p := Project(items(n))
		if len(p.Visible) != n {
			t.Fatalf("n=%d: expected %d visible, got %d", n, n, len(p.Visible))
		}
		if len(p.Revealable) != 0 {
			t.Fatalf("n=%d: expected nothing revealable, got %d", n, len(p.Revealable))
		}
	}
}

func TestProjectOverPreview(t *testing.T) {
	p := Project(items(5))
	if len(p.Visible) != PreviewCount {
		t.Fatalf("expected %d visible, got %d", PreviewCount, len(p.Visible))
	}
	if len(p.Revealable) != 3 {
		t.Fatalf("expected 3 revealable, got %d", len(p.Revealable))
	}
	if p.Visible[0].ExternalID != "a" {
		t.Fatalf("best pick must stay at index 0, got %q", p.Visible[0].ExternalID)
	}
}

func TestDisclosureAlternates(t *testing.T) {
	var d Disclosure
	if d.Expanded() {
		t.Fatalf("disclosure must start hidden")
	}
	for i := 0; i < 6; i++ {
		got := d.Toggle()
		want := i%2 == 0
		if got != want {
			t.Fatalf("toggle %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestBucketsEmpty(t *testing.T) {
	var b Buckets
	if !b.Empty() {
		t.Fatalf("zero buckets must be empty")
	}
	b.Videos = items(1)
	if b.Empty() {
		t.Fatalf("buckets with a video must not be empty")
	}
}
