package model

// Draft is an in-progress, unsubmitted registration aggregate. It is owned
// by the wizard: mutated locally between steps, handed to the registration
// collaborator on final submit, discarded only on success.
type Draft struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
	Phone           string `json:"phone"`

	// Learner profile step.
	DependentName string `json:"dependentName,omitempty"`
	Grade         string `json:"grade,omitempty"`
	Board         string `json:"board,omitempty"`
	PreviousMarks string `json:"previousMarks,omitempty"`

	// Provider profile step.
	Subjects        []string `json:"subjects,omitempty"`
	ExperienceYears int      `json:"experienceYears,omitempty"`
	HourlyRate      int      `json:"hourlyRate,omitempty"`

	AadhaarNumber string  `json:"aadhaarNumber"`
	Address       Address `json:"address"`
}
