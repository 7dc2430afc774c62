package resumes

// GenerationRequest is the inbound payload for resume generation.
type GenerationRequest struct {
	JobRole string   `json:"job_role" binding:"required"`
	Skills  []string `json:"skills" binding:"required"`
}

// ExperienceItem is a single work-history entry in the generated resume.
type ExperienceItem struct {
	JobTitle         string   `json:"job_title"`
	Company          string   `json:"company"`
	Location         *string  `json:"location,omitempty"`
	StartDate        *string  `json:"start_date,omitempty"`
	EndDate          *string  `json:"end_date,omitempty"`
	Responsibilities []string `json:"responsibilities"`
}

// EducationItem is a single education entry in the generated resume.
type EducationItem struct {
	Degree         string  `json:"degree"`
	Institution    string  `json:"institution"`
	Location       *string `json:"location,omitempty"`
	GraduationYear *int    `json:"graduation_year,omitempty"`
}

// ResumeDocument is the normalized resume payload returned to the caller.
type ResumeDocument struct {
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	Summary    string           `json:"summary"`
	Experience []ExperienceItem `json:"experience"`
	Education  []EducationItem  `json:"education"`
	Skills     []string         `json:"skills"`
}
