package profile

import (
	"testing"
	"time"
)

func TestCompletionEmpty(t *testing.T) {
	if got := Completion(Profile{}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestCompletionFull(t *testing.T) {
	p := Profile{
		Name:   "Asha",
		Email:  "asha@example.com",
		City:   "Pune",
		Skills: []string{"React"},
	}
	if got := Completion(p); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestCompletionNameAndCity(t *testing.T) {
	p := Profile{Name: "Asha", City: "Pune"}
	if got := Completion(p); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestCompletionWhitespaceDoesNotCount(t *testing.T) {
	p := Profile{Name: "   ", City: "\t"}
	if got := Completion(p); got != 0 {
		t.Fatalf("whitespace-only fields must not count, got %d", got)
	}
}

func TestCompletionMonotonic(t *testing.T) {
	steps := []Profile{
		{},
		{Name: "Asha"},
		{Name: "Asha", Email: "asha@example.com"},
		{Name: "Asha", Email: "asha@example.com", City: "Pune"},
		{Name: "Asha", Email: "asha@example.com", City: "Pune", Skills: []string{"SQL"}},
	}

	prev := -1
	for i, p := range steps {
		got := Completion(p)
		if got <= prev {
			t.Fatalf("step %d: completion %d not greater than previous %d", i, got, prev)
		}
		prev = got
	}
	if prev != 100 {
		t.Fatalf("final step should reach 100, got %d", prev)
	}
}

func TestNormalizeSkills(t *testing.T) {
	p := Normalize(Profile{Skills: []string{" React ", "React", "", "SQL", "react"}})

	want := []string{"React", "SQL", "react"}
	if len(p.Skills) != len(want) {
		t.Fatalf("expected %v, got %v", want, p.Skills)
	}
	for i := range want {
		if p.Skills[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, p.Skills)
		}
	}
}

func TestNormalizeSavedCoursesKeepsFirstPerID(t *testing.T) {
	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	p := Normalize(Profile{SavedCourses: []SavedItem{
		{ExternalID: "a", Title: "first", SavedAt: early},
		{ExternalID: "", Title: "junk"},
		{ExternalID: "a", Title: "second", SavedAt: late},
		{ExternalID: "b", Title: "other", SavedAt: late},
	}})

	if len(p.SavedCourses) != 2 {
		t.Fatalf("expected 2 items, got %d", len(p.SavedCourses))
	}
	if p.SavedCourses[0].Title != "first" {
		t.Fatalf("expected first record kept for duplicate id, got %q", p.SavedCourses[0].Title)
	}
	if p.SavedCourses[1].ExternalID != "b" {
		t.Fatalf("expected b second, got %q", p.SavedCourses[1].ExternalID)
	}
}
