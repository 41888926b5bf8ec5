package models

import "time"

// ResumeSlug is the fixed key of the singleton resume document.
const ResumeSlug = "main-resume"

// Socials holds the public profile links shown on the resume.
type Socials struct {
	LinkedIn string `json:"linkedin" validate:"omitempty,http_url"`
	Github   string `json:"github" validate:"omitempty,http_url"`
	Website  string `json:"website" validate:"omitempty,http_url"`
}

// SkillGroup is a named category of skills.
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Experience is one position held.
type Experience struct {
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Period      string   `json:"period"`
	Description []string `json:"description"`
}

// Education is one degree or course of study.
type Education struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}

// ResumeDocument is the editable body of the resume.
type ResumeDocument struct {
	Name     string  `json:"name"`
	Title    string  `json:"title"`
	Summary  string  `json:"summary"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Location string  `json:"location"`
	Socials  Socials `json:"socials"`

	Skills         []SkillGroup `json:"skills"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Certifications []string     `json:"certifications"`
}

// ResumeUpdate is a partial resume payload. Each non-nil field replaces the
// stored top-level field as a whole; omitted fields are kept.
type ResumeUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Title    *string  `json:"title,omitempty"`
	Summary  *string  `json:"summary,omitempty"`
	Email    *string  `json:"email,omitempty"`
	Location *string  `json:"location,omitempty"`
	Socials  *Socials `json:"socials,omitempty"`

	Skills         *[]SkillGroup `json:"skills,omitempty"`
	Experience     *[]Experience `json:"experience,omitempty"`
	Education      *[]Education  `json:"education,omitempty"`
	Certifications *[]string     `json:"certifications,omitempty"`
}

// Apply returns a copy of doc with every non-nil field of u applied.
func (u ResumeUpdate) Apply(doc ResumeDocument) ResumeDocument {
	if u.Name != nil {
		doc.Name = *u.Name
	}
	if u.Title != nil {
		doc.Title = *u.Title
	}
	if u.Summary != nil {
		doc.Summary = *u.Summary
	}
	if u.Email != nil {
		doc.Email = *u.Email
	}
	if u.Location != nil {
		doc.Location = *u.Location
	}
	if u.Socials != nil {
		doc.Socials = *u.Socials
	}
	if u.Skills != nil {
		doc.Skills = append([]SkillGroup{}, (*u.Skills)...)
	}
	if u.Experience != nil {
		doc.Experience = append([]Experience{}, (*u.Experience)...)
	}
	if u.Education != nil {
		doc.Education = append([]Education{}, (*u.Education)...)
	}
	if u.Certifications != nil {
		doc.Certifications = append([]string{}, (*u.Certifications)...)
	}

	return doc
}

// Resume is the singleton resume stored under [ResumeSlug].
type Resume struct {
	Slug string `json:"slug"`
	ResumeDocument

	// UpdatedAt changes only when the stored document changes.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Resume model.
func (r Resume) TableName() string {
	return "resumes"
}

// Normalize replaces nil collections with empty ones.
func (d *ResumeDocument) Normalize() {
	if d.Skills == nil {
		d.Skills = []SkillGroup{}
	}
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Certifications == nil {
		d.Certifications = []string{}
	}
	for i := range d.Skills {
		if d.Skills[i].Items == nil {
			d.Skills[i].Items = []string{}
		}
	}
	for i := range d.Experience {
		if d.Experience[i].Description == nil {
			d.Experience[i].Description = []string{}
		}
	}
}

// DefaultResume returns the placeholder document stored on first read.
func DefaultResume() ResumeDocument {
	return ResumeDocument{
		Name:     "Your Name",
		Title:    "Software Engineer",
		Summary:  "Short professional summary. Edit this resume from the admin panel.",
		Email:    "you@example.com",
		Location: "Remote",
		Socials: Socials{
			LinkedIn: "https://www.linkedin.com/",
			Github:   "https://github.com/",
			Website:  "https://example.com/",
		},
		Skills: []SkillGroup{
			{Category: "Languages", Items: []string{"Go", "SQL"}},
			{Category: "Tools", Items: []string{"Docker", "PostgreSQL", "Git"}},
		},
		Experience: []Experience{
			{
				Role:        "Software Engineer",
				Company:     "Company",
				Period:      "2020 - Present",
				Description: []string{"Describe your responsibilities and achievements."},
			},
		},
		Education: []Education{
			{Degree: "B.Sc. Computer Science", School: "University", Year: "2020"},
		},
		Certifications: []string{},
	}
}
