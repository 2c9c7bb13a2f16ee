package skillset

import "testing"

func TestAddTrimsAndIgnoresEmpty(t *testing.T) {
	s := New(nil)
	s.Add("  React ")
	s.Add("")
	s.Add("   ")

	got := s.List()
	if len(got) != 1 || got[0] != "React" {
		t.Fatalf("expected [React], got %v", got)
	}
}

func TestAddIgnoresDuplicates(t *testing.T) {
	s := New(nil)
	s.Add("React")
	s.Add("React")
	s.Add(" React ")

	if s.Len() != 1 {
		t.Fatalf("expected 1 skill, got %d", s.Len())
	}
}

func TestAddIsCaseSensitive(t *testing.T) {
	s := New(nil)
	s.Add("React")
	s.Add("react")

	if s.Len() != 2 {
		t.Fatalf("expected case-sensitive distinct entries, got %v", s.List())
	}
}

func TestRemoveDropsAllMatches(t *testing.T) {
	s := &SkillSet{skills: []string{"a", "b", "a", "c"}}
	s.Remove("a")

	got := s.List()
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("expected [b c], got %v", got)
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	s := New([]string{"a"})
	s.Remove("zzz")
	if s.Len() != 1 {
		t.Fatalf("expected untouched set, got %v", s.List())
	}
}

func TestNewNormalizesInitialSkills(t *testing.T) {
	s := New([]string{" Go ", "Go", "", "SQL"})
	got := s.List()
	if len(got) != 2 || got[0] != "Go" || got[1] != "SQL" {
		t.Fatalf("expected [Go SQL], got %v", got)
	}
}

func TestListReturnsSnapshot(t *testing.T) {
	s := New([]string{"a", "b"})
	got := s.List()
	got[0] = "mutated"

	if s.List()[0] != "a" {
		t.Fatalf("List must return a copy, set was mutated: %v", s.List())
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := New(nil)
	for _, sk := range []string{"c", "a", "b"} {
		s.Add(sk)
	}
	got := s.List()
	if got[0] != "c" || got[1] != "a" || got[2] != "b" {
		t.Fatalf("expected insertion order [c a b], got %v", got)
	}
}
