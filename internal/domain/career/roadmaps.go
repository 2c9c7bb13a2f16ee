package career

type Plan struct {
	PathName       string
	Duration       string
	TimeCommitment string
	StartDate      string
	EndDate        string
	Phases         []Phase
	CurrentWeek    WeekFocus
}

type Phase struct {
	Name  string
	Weeks []Week
}

type Week struct {
	Week     int
	Goal     string
	Skills   []string
	Outcomes []string
}

type WeekFocus struct {
	Week  int
	Phase string
	Focus string
}

var roadmaps = map[string][]Phase{
	"frontend_internship": {
		{
			Name: "Foundation (Weeks 1-4)",
			Weeks: []Week{
				{Week: 1, Goal: "HTML & CSS Fundamentals",
					Skills:   []string{"HTML5 semantic tags", "CSS selectors", "Flexbox basics"},
					Outcomes: []string{"Build 3 static web pages", "Complete HTML/CSS course"}},
				{Week: 2, Goal: "Advanced CSS & Responsive Design",
					Skills:   []string{"CSS Grid", "Media queries", "Mobile-first design"},
					Outcomes: []string{"Create responsive portfolio page", "Clone 2 website layouts"}},
				{Week: 3, Goal: "JavaScript Basics",
					Skills:   []string{"Variables & data types", "Functions", "DOM manipulation"},
					Outcomes: []string{"Build calculator app", "Create interactive form"}},
				{Week: 4, Goal: "JavaScript ES6+ Features",
					Skills:   []string{"Arrow functions", "Promises", "Async/await"},
					Outcomes: []string{"Build weather app using API", "Complete JS challenges"}},
			},
		},
		{
			Name: "Application (Weeks 5-8)",
			Weeks: []Week{
				{Week: 5, Goal: "React Fundamentals",
					Skills:   []string{"Components", "Props & State", "Hooks basics"},
					Outcomes: []string{"Build todo app in React", "Complete React tutorial"}},
				{Week: 6, Goal: "React Advanced Concepts",
					Skills:   []string{"useEffect", "Context API", "Custom hooks"},
					Outcomes: []string{"Build movie search app", "Implement routing"}},
				{Week: 7, Goal: "State Management & APIs",
					Skills:   []string{"API integration", "Error handling", "Loading states"},
					Outcomes: []string{"Build e-commerce product page", "Integrate payment UI"}},
				{Week: 8, Goal: "Styling & UI Libraries",
					Skills:   []string{"Tailwind CSS", "Material-UI", "Component libraries"},
					Outcomes: []string{"Redesign previous projects", "Build design system"}},
			},
		},
		{
			Name: "Proof of Work (Weeks 9-12)",
			Weeks: []Week{
				{Week: 9, Goal: "Portfolio Project Planning",
					Skills:   []string{"Project planning", "Wireframing", "Git workflow"},
					Outcomes: []string{"Define project scope", "Create wireframes", "Setup Git repo"}},
				{Week: 10, Goal: "Portfolio Project Development",
					Skills:   []string{"Full-stack integration", "Deployment", "Testing"},
					Outcomes: []string{"Build 80% of portfolio project", "Write tests"}},
				{Week: 11, Goal: "Polish & Deploy",
					Skills:   []string{"Performance optimization", "SEO basics", "Deployment"},
					Outcomes: []string{"Deploy project to Vercel/Netlify", "Optimize performance"}},
				{Week: 12, Goal: "Job Applications & Interview Prep",
					Skills:   []string{"Resume building", "LinkedIn optimization", "Interview prep"},
					Outcomes: []string{"Apply to 10 internships", "Complete mock interviews", "Update portfolio"}},
			},
		},
	},
	"backend_dsa": {
		{
			Name: "Foundation (Weeks 1-4)",
			Weeks: []Week{
				{Week: 1, Goal: "Programming Language Mastery",
					Skills:   []string{"Python/Java syntax", "OOP concepts", "Standard library"},
					Outcomes: []string{"Solve 20 basic problems", "Build CLI tool"}},
				{Week: 2, Goal: "Arrays & Strings",
					Skills:   []string{"Two pointers", "Sliding window", "String manipulation"},
					Outcomes: []string{"Solve 25 array problems", "Implement algorithms"}},
				{Week: 3, Goal: "Linked Lists & Stacks/Queues",
					Skills:   []string{"Linked list operations", "Stack/Queue implementation"},
					Outcomes: []string{"Solve 20 problems", "Implement data structures"}},
				{Week: 4, Goal: "Recursion & Backtracking",
					Skills:   []string{"Recursive thinking", "Backtracking patterns"},
					Outcomes: []string{"Solve 15 recursion problems", "Master base cases"}},
			},
		},
		{
			Name: "Application (Weeks 5-8)",
			Weeks: []Week{
				{Week: 5, Goal: "Trees & Graphs",
					Skills:   []string{"Tree traversals", "BFS/DFS", "Graph algorithms"},
					Outcomes: []string{"Solve 25 tree/graph problems", "Implement traversals"}},
				{Week: 6, Goal: "Dynamic Programming Basics",
					Skills:   []string{"Memoization", "Tabulation", "DP patterns"},
					Outcomes: []string{"Solve 20 DP problems", "Master classic problems"}},
				{Week: 7, Goal: "Backend Development Basics",
					Skills:   []string{"REST APIs", "Express.js/Flask", "Database basics"},
					Outcomes: []string{"Build CRUD API", "Connect to database"}},
				{Week: 8, Goal: "Authentication & Security",
					Skills:   []string{"JWT", "Password hashing", "API security"},
					Outcomes: []string{"Implement auth system", "Secure API endpoints"}},
			},
		},
		{
			Name: "Proof of Work (Weeks 9-12)",
			Weeks: []Week{
				{Week: 9, Goal: "System Design Basics",
					Skills:   []string{"Scalability", "Caching", "Load balancing"},
					Outcomes: []string{"Design 3 systems", "Study case studies"}},
				{Week: 10, Goal: "Full Stack Project",
					Skills:   []string{"API design", "Database schema", "Deployment"},
					Outcomes: []string{"Build complete backend project", "Write documentation"}},
				{Week: 11, Goal: "Advanced DSA Practice",
					Skills:   []string{"Hard problems", "Optimization", "Time complexity"},
					Outcomes: []string{"Solve 30 medium/hard problems", "Mock interviews"}},
				{Week: 12, Goal: "Interview Preparation",
					Skills:   []string{"Behavioral questions", "System design", "Coding rounds"},
					Outcomes: []string{"Apply to 15 companies", "Complete 5 mock interviews"}},
			},
		},
	},
}

func genericPhases() []Phase {
	mk := func(name, goal string, from, to int) Phase {
		p := Phase{Name: name}
		for w := from; w <= to; w++ {
			p.Weeks = append(p.Weeks, Week{Week: w, Goal: goal})
		}
		return p
	}
	return []Phase{
		mk("Foundation (Weeks 1-4)", "Build foundational skills", 1, 4),
		mk("Application (Weeks 5-8)", "Apply skills to projects", 5, 8),
		mk("Proof of Work (Weeks 9-12)", "Build portfolio and apply", 9, 12),
	}
}
