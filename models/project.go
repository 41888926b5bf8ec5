package models

import "time"

// DefaultProjectStatus is assigned to projects created without a status.
const DefaultProjectStatus = "Public"

// Feature is one highlighted capability of a project.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TechItem names a technology used by a project and what it is used for.
type TechItem struct {
	Name    string `json:"name"`
	UseCase string `json:"useCase"`
}

// InstallStep is one ordered installation instruction.
type InstallStep struct {
	Title   string `json:"title"`
	Command string `json:"command"`
}

// Project is a portfolio showcase entry. Mutations are keyed by Slug.
type Project struct {
	ID string `json:"id"`

	Title            string `json:"title" validate:"notblank"`
	Slug             string `json:"slug" validate:"required,notid,slug"`
	ShortDescription string `json:"shortDescription" validate:"notblank"`
	LongDescription  string `json:"longDescription" validate:"notblank"`

	GithubLink string `json:"githubLink" validate:"omitempty,http_url"`
	DemoLink   string `json:"demoLink" validate:"omitempty,http_url"`

	// Status is a free-text label such as "Public", "Private" or "In Progress".
	Status string   `json:"status" validate:"notblank"`
	Tags   []string `json:"tags" validate:"dive,notblank"`

	HowItWorks   []string      `json:"howItWorks"`
	Features     []Feature     `json:"features"`
	TechStack    []TechItem    `json:"techStack"`
	Installation []InstallStep `json:"installation"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}

// ProjectUpdate is a partial project payload. Only non-nil fields are applied.
type ProjectUpdate struct {
	Title            *string        `json:"title,omitempty"`
	Slug             *string        `json:"slug,omitempty"`
	ShortDescription *string        `json:"shortDescription,omitempty"`
	LongDescription  *string        `json:"longDescription,omitempty"`
	GithubLink       *string        `json:"githubLink,omitempty"`
	DemoLink         *string        `json:"demoLink,omitempty"`
	Status           *string        `json:"status,omitempty"`
	Tags             *[]string      `json:"tags,omitempty"`
	HowItWorks       *[]string      `json:"howItWorks,omitempty"`
	Features         *[]Feature     `json:"features,omitempty"`
	TechStack        *[]TechItem    `json:"techStack,omitempty"`
	Installation     *[]InstallStep `json:"installation,omitempty"`
}

// Apply returns a copy of project with every non-nil field of u applied.
func (u ProjectUpdate) Apply(project Project) Project {
	if u.Title != nil {
		project.Title = *u.Title
	}
	if u.Slug != nil {
		project.Slug = *u.Slug
	}
	if u.ShortDescription != nil {
		project.ShortDescription = *u.ShortDescription
	}
	if u.LongDescription != nil {
		project.LongDescription = *u.LongDescription
	}
	if u.GithubLink != nil {
		project.GithubLink = *u.GithubLink
	}
	if u.DemoLink != nil {
		project.DemoLink = *u.DemoLink
	}
	if u.Status != nil {
		project.Status = *u.Status
	}
	if u.Tags != nil {
		project.Tags = append([]string{}, (*u.Tags)...)
	}
	if u.HowItWorks != nil {
		project.HowItWorks = append([]string{}, (*u.HowItWorks)...)
	}
	if u.Features != nil {
		project.Features = append([]Feature{}, (*u.Features)...)
	}
	if u.TechStack != nil {
		project.TechStack = append([]TechItem{}, (*u.TechStack)...)
	}
	if u.Installation != nil {
		project.Installation = append([]InstallStep{}, (*u.Installation)...)
	}

	return project
}

// Normalize replaces nil collections with empty ones so that a stored
// project and its JSON representation stay identical after a round trip.
func (p *Project) Normalize() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.HowItWorks == nil {
		p.HowItWorks = []string{}
	}
	if p.Features == nil {
		p.Features = []Feature{}
	}
	if p.TechStack == nil {
		p.TechStack = []TechItem{}
	}
	if p.Installation == nil {
		p.Installation = []InstallStep{}
	}
}
