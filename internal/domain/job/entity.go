package job

import (
	"time"

	"github.com/google/uuid"
)

type Listing struct {
	ID             uuid.UUID
	Title          string
	Company        string
	Logo           string
	Location       string
	EmploymentType string
	Experience     string
	Salary         string
	Description    string
	Skills         []string
	PostedAt       time.Time
	CreatedAt      time.Time
}
