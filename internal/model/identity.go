package model

// Role identifies which side of the marketplace an identity belongs to.
// Roles are assigned at registration and never change afterwards.
type Role string

const (
	RoleLearner  Role = "learner"
	RoleProvider Role = "provider"
)

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	return r == RoleLearner || r == RoleProvider
}

// Identity is the signed-in user's profile record. Only the fields matching
// the identity's role are populated.
type Identity struct {
	ID    string `json:"id"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	// Learner profile.
	DependentName string `json:"dependentName,omitempty"`
	Grade         string `json:"grade,omitempty"`
	Board         string `json:"board,omitempty"`
	PreviousMarks string `json:"previousMarks,omitempty"`

	// Provider profile.
	Subjects        []string `json:"subjects,omitempty"`
	ExperienceYears int      `json:"experienceYears,omitempty"`
	HourlyRate      int      `json:"hourlyRate,omitempty"`

	Address Address `json:"address"`
}
