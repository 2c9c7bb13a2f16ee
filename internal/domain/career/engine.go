package career

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Attributes are the internal 0..1 trait scores diagnosed from the
// questionnaire. They are never shown to the user directly.
type Attributes struct {
	LogicalIntensity   float64
	Creativity         float64
	Consistency        float64
	AmbiguityTolerance float64
	SelfLearning       float64
	TimeToReward       float64
}

// Constraints are the user's practical limits collected alongside the
// questionnaire.
type Constraints struct {
	TimePerWeek      int
	AcademicYear     string
	FinancialBarrier string
	HasInternet      bool
}

type Diagnosis struct {
	Attributes  Attributes
	Constraints Constraints
	Summary     string
}

type PathRecommendation struct {
	Key       string
	Name      string
	Score     float64
	Rationale string
	Outcomes  []string
}

// QuestionCount is the fixed questionnaire length; answers are on a 1-5
// scale.
const QuestionCount = 20

var ErrBadQuestionnaire = errors.New("questionnaire must have 20 answers in 1..5")

// Diagnose converts the 20 questionnaire answers into attribute scores.
// Question blocks map to attributes: 1-4 logic, 5-8 creativity, 9-12
// consistency, 13-15 ambiguity tolerance, 16-18 self-learning, 19-20
// time-to-reward.
func Diagnose(answers []int, c Constraints) (Diagnosis, error) {
	if len(answers) != QuestionCount {
		return Diagnosis{}, ErrBadQuestionnaire
	}
	for _, a := range answers {
		if a < 1 || a > 5 {
			return Diagnosis{}, ErrBadQuestionnaire
		}
	}

	attrs := Attributes{
		LogicalIntensity:   round2(sumRange(answers, 0, 4) / 20.0),
		Creativity:         round2(sumRange(answers, 4, 8) / 20.0),
		Consistency:        round2(sumRange(answers, 8, 12) / 20.0),
		AmbiguityTolerance: round2(sumRange(answers, 12, 15) / 15.0),
		SelfLearning:       round2(sumRange(answers, 15, 18) / 15.0),
		TimeToReward:       round2(sumRange(answers, 18, 20) / 10.0),
	}

	d := Diagnosis{Attributes: attrs, Constraints: c}
	d.Summary = summarize(d)
	return d, nil
}

// Compatibility scores a diagnosis against one path: 70% attribute
// similarity plus 30% constraint fit, with deductions for time, internet
// and financial-barrier mismatches.
func Compatibility(d Diagnosis, p Path) float64 {
	user := d.Attributes.vector()
	path := p.Attributes.vector()

	var similarity float64
	for i := range path {
		similarity += 1 - math.Abs(user[i]-path[i])
	}
	attributeScore := similarity / float64(len(path)) * 70

	constraintScore := 30.0
	if d.Constraints.TimePerWeek < p.MinTimePerWeek {
		constraintScore -= 15
	}
	if p.InternetRequired && !d.Constraints.HasInternet {
		constraintScore -= 10
	}
	if d.Constraints.FinancialBarrier == "low" && p.FinancialBarrier == "high" {
		constraintScore -= 5
	}

	return round1(attributeScore + constraintScore)
}

// Recommend returns the primary and secondary career path for a diagnosis,
// ranked by compatibility.
func Recommend(d Diagnosis) (PathRecommendation, PathRecommendation) {
	type scored struct {
		key   string
		score float64
	}

	scores := make([]scored, 0, len(paths))
	for key, p := range paths {
		scores = append(scores, scored{key: key, score: Compatibility(d, p)})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].key < scores[j].key
	})

	primary := buildRecommendation(d, scores[0].key, scores[0].score, true)
	secondary := buildRecommendation(d, scores[1].key, scores[1].score, false)
	return primary, secondary
}

func buildRecommendation(d Diagnosis, key string, score float64, primary bool) PathRecommendation {
	p := paths[key]
	return PathRecommendation{
		Key:       key,
		Name:      p.Name,
		Score:     score,
		Rationale: rationale(d, p, primary),
		Outcomes:  p.Outcomes,
	}
}

func rationale(d Diagnosis, p Path, primary bool) string {
	user := d.Attributes.vector()
	path := p.Attributes.vector()

	var matches []string
	for i, name := range attributeNames {
		if math.Abs(user[i]-path[i]) < 0.2 {
			matches = append(matches, name)
		}
	}

	var b strings.Builder
	if primary {
		b.WriteString("This path aligns strongly with your profile. ")
	} else {
		b.WriteString("This is a solid fallback option. ")
	}
	if len(matches) > 0 {
		if len(matches) > 2 {
			matches = matches[:2]
		}
		fmt.Fprintf(&b, "Your strengths in %s match well with this track. ", strings.Join(matches, ", "))
	}

	switch {
	case d.Constraints.TimePerWeek >= p.MinTimePerWeek+5:
		b.WriteString("You have sufficient time to excel in this path.")
	case d.Constraints.TimePerWeek >= p.MinTimePerWeek:
		b.WriteString("Your available time meets the minimum requirements.")
	default:
		b.WriteString("Note: This path requires more time than you currently have available.")
	}
	return b.String()
}

func summarize(d Diagnosis) string {
	type attr struct {
		name  string
		value float64
	}
	vec := d.Attributes.vector()
	attrs := make([]attr, len(attributeNames))
	for i, name := range attributeNames {
		attrs[i] = attr{name: name, value: vec[i]}
	}
	sort.SliceStable(attrs, func(i, j int) bool { return attrs[i].value > attrs[j].value })

	var b strings.Builder
	fmt.Fprintf(&b, "Your strongest attributes are %s and %s. ", attrs[0].name, attrs[1].name)

	t := d.Constraints.TimePerWeek
	switch {
	case t >= 15:
		fmt.Fprintf(&b, "With %d hours per week, you can pursue intensive tracks.", t)
	case t >= 10:
		fmt.Fprintf(&b, "With %d hours per week, you have good flexibility for most paths.", t)
	default:
		fmt.Fprintf(&b, "With %d hours per week, focus on efficient, targeted learning.", t)
	}
	return b.String()
}

// Roadmap returns the 90-day plan for a path, falling back to the generic
// three-phase template when no specific one exists.
func Roadmap(pathKey string, timePerWeek int, now time.Time) (Plan, error) {
	p, ok := paths[pathKey]
	if !ok {
		return Plan{}, fmt.Errorf("unknown career path: %s", pathKey)
	}

	phases, ok := roadmaps[pathKey]
	if !ok {
		phases = genericPhases()
	}

	return Plan{
		PathName:       p.Name,
		Duration:       "90 days",
		TimeCommitment: fmt.Sprintf("%d hours/week", timePerWeek),
		StartDate:      now.Format("2006-01-02"),
		EndDate:        now.AddDate(0, 0, 90).Format("2006-01-02"),
		Phases:         phases,
		CurrentWeek: WeekFocus{
			Week:  1,
			Phase: phases[0].Name,
			Focus: phases[0].Weeks[0].Goal,
		},
	}, nil
}

var attributeNames = []string{
	"logical intensity",
	"creativity",
	"consistency",
	"ambiguity tolerance",
	"self learning",
	"time to reward",
}

func (a Attributes) vector() [6]float64 {
	return [6]float64{
		a.LogicalIntensity,
		a.Creativity,
		a.Consistency,
		a.AmbiguityTolerance,
		a.SelfLearning,
		a.TimeToReward,
	}
}

func sumRange(answers []int, from, to int) float64 {
	var sum int
	for _, a := range answers[from:to] {
		sum += a
	}
	return float64(sum)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
