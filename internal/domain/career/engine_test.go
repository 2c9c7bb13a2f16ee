package career

import (
	"errors"
	"testing"
	"time"
)

func answersAll(v int) []int {
	out := make([]int, QuestionCount)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestDiagnoseRejectsWrongLength(t *testing.T) {
	_, err := Diagnose([]int{1, 2, 3}, Constraints{})
	if !errors.Is(err, ErrBadQuestionnaire) {
		t.Fatalf("expected ErrBadQuestionnaire, got %v", err)
	}
}

func TestDiagnoseRejectsOutOfRangeAnswer(t *testing.T) {
	a := answersAll(3)
	a[7] = 6
	if _, err := Diagnose(a, Constraints{}); !errors.Is(err, ErrBadQuestionnaire) {
		t.Fatalf("expected ErrBadQuestionnaire, got %v", err)
	}

	a[7] = 0
	if _, err := Diagnose(a, Constraints{}); !errors.Is(err, ErrBadQuestionnaire) {
		t.Fatalf("expected ErrBadQuestionnaire, got %v", err)
	}
}

func TestDiagnoseAttributeScale(t *testing.T) {
	d, err := Diagnose(answersAll(5), Constraints{TimePerWeek: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v := d.Attributes.vector()
	for i, got := range v {
		if got != 1.0 {
			t.Fatalf("attribute %d: all-5 answers must score 1.0, got %v", i, got)
		}
	}

	d, err = Diagnose(answersAll(1), Constraints{TimePerWeek: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v = d.Attributes.vector()
	for i, got := range v {
		if got != 0.2 {
			t.Fatalf("attribute %d: all-1 answers must score 0.2, got %v", i, got)
		}
	}
}

func TestDiagnoseProducesSummary(t *testing.T) {
	d, err := Diagnose(answersAll(4), Constraints{TimePerWeek: 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Summary == "" {
		t.Fatalf("expected a non-empty summary")
	}
}

func TestCompatibilityConstraintDeductions(t *testing.T) {
	d, err := Diagnose(answersAll(3), Constraints{TimePerWeek: 40, HasInternet: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := paths["frontend_internship"]

	full := Compatibility(d, p)

	d.Constraints.TimePerWeek = 0
	short := Compatibility(d, p)
	if full-short != 15 {
		t.Fatalf("time shortfall must deduct 15, got %v", full-short)
	}

	d.Constraints.TimePerWeek = 40
	d.Constraints.HasInternet = false
	if p.InternetRequired {
		offline := Compatibility(d, p)
		if full-offline != 10 {
			t.Fatalf("missing internet must deduct 10, got %v", full-offline)
		}
	}
}

func TestRecommendReturnsDistinctRankedPaths(t *testing.T) {
	d, err := Diagnose(answersAll(4), Constraints{TimePerWeek: 20, HasInternet: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	primary, secondary := Recommend(d)
	if primary.Key == secondary.Key {
		t.Fatalf("primary and secondary must differ, both %q", primary.Key)
	}
	if primary.Score < secondary.Score {
		t.Fatalf("primary %v must outrank secondary %v", primary.Score, secondary.Score)
	}
	if primary.Rationale == "" || secondary.Rationale == "" {
		t.Fatalf("recommendations must carry a rationale")
	}
}

func TestRecommendIsDeterministic(t *testing.T) {
	d, err := Diagnose(answersAll(3), Constraints{TimePerWeek: 15, HasInternet: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p1, s1 := Recommend(d)
	for i := 0; i < 10; i++ {
		p2, s2 := Recommend(d)
		if p2.Key != p1.Key || s2.Key != s1.Key {
			t.Fatalf("run %d: recommendation changed from (%s,%s) to (%s,%s)", i, p1.Key, s1.Key, p2.Key, s2.Key)
		}
	}
}

func TestRoadmapUnknownPath(t *testing.T) {
	if _, err := Roadmap("underwater_basket_weaving", 10, time.Now()); err == nil {
		t.Fatalf("expected error for unknown path")
	}
}

func TestRoadmapSpansNinetyDays(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	plan, err := Roadmap("frontend_internship", 12, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.StartDate != "2026-03-01" {
		t.Fatalf("unexpected start date %q", plan.StartDate)
	}
	if plan.EndDate != "2026-05-30" {
		t.Fatalf("expected end 90 days out, got %q", plan.EndDate)
	}
	if len(plan.Phases) == 0 {
		t.Fatalf("expected phases in the plan")
	}
	if plan.CurrentWeek.Week != 1 {
		t.Fatalf("plan must start at week 1, got %d", plan.CurrentWeek.Week)
	}
	if plan.TimeCommitment != "12 hours/week" {
		t.Fatalf("unexpected time commitment %q", plan.TimeCommitment)
	}
}

func TestRoadmapGenericFallback(t *testing.T) {
	// Only some paths carry a handcrafted roadmap; the rest use the
	// generic template.
	plan, err := Roadmap("digital_marketing", 8, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Phases) == 0 {
		t.Fatalf("generic fallback must still produce phases")
	}
}
