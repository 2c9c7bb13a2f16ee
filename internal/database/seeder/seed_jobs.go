package seeder

import (
	"context"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/database"
	"career-compass/internal/domain/job"
	"career-compass/internal/repository"
)

// JobsSeeder loads the starter job board. IDs derive from company and
// title so reruns upsert instead of duplicating.
type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	now := time.Now().UTC()
	posted := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	listings := []job.Listing{
		{
			Title: "Frontend Developer", Company: "TechCorp Solutions", Logo: "T",
			Location: "Mumbai", EmploymentType: "Full-time", Experience: "0-2 years", Salary: "₹4-6 LPA",
			Description: "We're looking for a passionate Frontend Developer to join our team. You'll work on building responsive web applications using modern frameworks.",
			Skills:      []string{"React", "JavaScript", "CSS", "HTML"},
			PostedAt:    posted(2),
		},
		{
			Title: "Software Engineer Intern", Company: "InnovateLabs", Logo: "I",
			Location: "Bangalore", EmploymentType: "Internship", Experience: "Fresher", Salary: "₹15k-20k/month",
			Description: "Join our dynamic team as a Software Engineering Intern. Learn from experienced developers and work on real-world projects.",
			Skills:      []string{"Python", "Java", "Git", "SQL"},
			PostedAt:    posted(1),
		},
		{
			Title: "Full Stack Developer", Company: "WebWorks India", Logo: "W",
			Location: "Remote", EmploymentType: "Full-time", Experience: "2-5 years", Salary: "₹8-12 LPA",
			Description: "Seeking an experienced Full Stack Developer to build scalable web applications. Must have strong knowledge of both frontend and backend technologies.",
			Skills:      []string{"Node.js", "React", "MongoDB", "Express"},
			PostedAt:    posted(5),
		},
		{
			Title: "Data Analyst", Company: "DataDriven Co.", Logo: "D",
			Location: "Pune", EmploymentType: "Full-time", Experience: "0-2 years", Salary: "₹5-7 LPA",
			Description: "Looking for a Data Analyst to help us make data-driven decisions. You'll work with large datasets and create insightful visualizations.",
			Skills:      []string{"Python", "SQL", "Excel", "Tableau"},
			PostedAt:    posted(3),
		},
		{
			Title: "UI/UX Designer", Company: "DesignHub", Logo: "D",
			Location: "Delhi", EmploymentType: "Full-time", Experience: "2-5 years", Salary: "₹6-9 LPA",
			Description: "We need a creative UI/UX Designer to craft beautiful and intuitive user experiences. Portfolio required.",
			Skills:      []string{"Figma", "Adobe XD", "Sketch", "Prototyping"},
			PostedAt:    posted(7),
		},
		{
			Title: "Backend Developer", Company: "CloudTech Systems", Logo: "C",
			Location: "Hyderabad", EmploymentType: "Full-time", Experience: "0-2 years", Salary: "₹5-8 LPA",
			Description: "Join our backend team to build robust APIs and microservices. Experience with cloud platforms is a plus.",
			Skills:      []string{"Java", "Spring Boot", "AWS", "Docker"},
			PostedAt:    posted(2),
		},
		{
			Title: "Mobile App Developer", Company: "AppMakers Inc.", Logo: "A",
			Location: "Bangalore", EmploymentType: "Full-time", Experience: "2-5 years", Salary: "₹7-11 LPA",
			Description: "Develop cutting-edge mobile applications for iOS and Android. Experience with React Native or Flutter required.",
			Skills:      []string{"React Native", "Flutter", "iOS", "Android"},
			PostedAt:    posted(4),
		},
		{
			Title: "DevOps Engineer", Company: "InfraCloud", Logo: "I",
			Location: "Remote", EmploymentType: "Full-time", Experience: "2-5 years", Salary: "₹9-14 LPA",
			Description: "Looking for a DevOps Engineer to manage our cloud infrastructure and CI/CD pipelines. Strong automation skills required.",
			Skills:      []string{"Kubernetes", "Docker", "Jenkins", "AWS"},
			PostedAt:    posted(1),
		},
		{
			Title: "Content Writer Intern", Company: "ContentCraft", Logo: "C",
			Location: "Mumbai", EmploymentType: "Internship", Experience: "Fresher", Salary: "₹10k-15k/month",
			Description: "Join our content team to create engaging articles and blog posts. Great opportunity for freshers to learn and grow.",
			Skills:      []string{"Writing", "SEO", "Research", "Editing"},
			PostedAt:    posted(6),
		},
		{
			Title: "Machine Learning Engineer", Company: "AI Innovations", Logo: "A",
			Location: "Bangalore", EmploymentType: "Full-time", Experience: "2-5 years", Salary: "₹10-16 LPA",
			Description: "Work on exciting ML projects and build intelligent systems. Strong background in mathematics and statistics required.",
			Skills:      []string{"Python", "TensorFlow", "PyTorch", "ML"},
			PostedAt:    posted(2),
		},
		{
			Title: "Digital Marketing Specialist", Company: "MarketPro", Logo: "M",
			Location: "Delhi", EmploymentType: "Full-time", Experience: "0-2 years", Salary: "₹4-6 LPA",
			Description: "Manage digital marketing campaigns across multiple channels. Experience with Google Ads and social media marketing required.",
			Skills:      []string{"SEO", "Google Ads", "Social Media", "Analytics"},
			PostedAt:    posted(5),
		},
		{
			Title: "QA Engineer", Company: "TestWorks", Logo: "T",
			Location: "Pune", EmploymentType: "Full-time", Experience: "0-2 years", Salary: "₹4-7 LPA",
			Description: "Ensure software quality through comprehensive testing. Experience with automation testing tools is a plus.",
			Skills:      []string{"Selenium", "Testing", "Java", "Automation"},
			PostedAt:    posted(3),
		},
	}

	for i := range listings {
		listings[i].ID = seedID("job", listings[i].Company, listings[i].Title)
	}

	return repository.NewPostgresJobRepository(db).UpsertListings(ctx, listings)
}

func seedID(parts ...string) uuid.UUID {
	name := ""
	for _, p := range parts {
		name += p + "|"
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
}
