package career

// Path describes one career track: the trait vector it rewards, its
// practical requirements and its typical outcomes.
type Path struct {
	Name             string
	Attributes       Attributes
	MinTimePerWeek   int
	InternetRequired bool
	FinancialBarrier string
	Outcomes         []string
}

var paths = map[string]Path{
	"frontend_internship": {
		Name: "Frontend Development Internship Track",
		Attributes: Attributes{
			LogicalIntensity:   0.7,
			Creativity:         0.8,
			Consistency:        0.6,
			AmbiguityTolerance: 0.5,
			SelfLearning:       0.7,
			TimeToReward:       0.8,
		},
		MinTimePerWeek:   10,
		InternetRequired: true,
		FinancialBarrier: "low",
		Outcomes:         []string{"Internship", "Freelance Projects", "Portfolio"},
	},
	"backend_dsa": {
		Name: "Backend + DSA Track",
		Attributes: Attributes{
			LogicalIntensity:   0.9,
			Creativity:         0.5,
			Consistency:        0.8,
			AmbiguityTolerance: 0.6,
			SelfLearning:       0.8,
			TimeToReward:       0.5,
		},
		MinTimePerWeek:   15,
		InternetRequired: true,
		FinancialBarrier: "low",
		Outcomes:         []string{"SDE Role", "Competitive Programming", "System Design"},
	},
	"data_analyst": {
		Name: "Data Analyst Track",
		Attributes: Attributes{
			LogicalIntensity:   0.8,
			Creativity:         0.6,
			Consistency:        0.7,
			AmbiguityTolerance: 0.7,
			SelfLearning:       0.7,
			TimeToReward:       0.7,
		},
		MinTimePerWeek:   12,
		InternetRequired: true,
		FinancialBarrier: "low",
		Outcomes:         []string{"Data Analyst Role", "Business Intelligence", "Analytics Projects"},
	},
	"fullstack_web": {
		Name: "Full Stack Web Development Track",
		Attributes: Attributes{
			LogicalIntensity:   0.8,
			Creativity:         0.7,
			Consistency:        0.7,
			AmbiguityTolerance: 0.6,
			SelfLearning:       0.8,
			TimeToReward:       0.7,
		},
		MinTimePerWeek:   15,
		InternetRequired: true,
		FinancialBarrier: "low",
		Outcomes:         []string{"Full Stack Developer", "Startup Roles", "Freelancing"},
	},
	"ui_ux_design": {
		Name: "UI/UX Design Track",
		Attributes: Attributes{
			LogicalIntensity:   0.5,
			Creativity:         0.9,
			Consistency:        0.6,
			AmbiguityTolerance: 0.7,
			SelfLearning:       0.7,
			TimeToReward:       0.8,
		},
		MinTimePerWeek:   10,
		InternetRequired: true,
		FinancialBarrier: "medium",
		Outcomes:         []string{"UI/UX Designer", "Product Design", "Design Internship"},
	},
	"digital_marketing": {
		Name: "Digital Marketing Track",
		Attributes: Attributes{
			LogicalIntensity:   0.6,
			Creativity:         0.8,
			Consistency:        0.7,
			AmbiguityTolerance: 0.8,
			SelfLearning:       0.7,
			TimeToReward:       0.7,
		},
		MinTimePerWeek:   10,
		InternetRequired: true,
		FinancialBarrier: "low",
		Outcomes:         []string{"Marketing Specialist", "Content Strategy", "SEO/SEM Roles"},
	},
}
