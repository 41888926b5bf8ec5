package models

import "time"

// Post is a blog entry. Content is stored as raw markdown.
type Post struct {
	// ID is the server-assigned identifier (UUID).
	ID string `json:"id"`

	Title   string `json:"title" validate:"notblank,max=60"`
	Slug    string `json:"slug" validate:"required,notid,slug"`
	Summary string `json:"summary" validate:"notblank,max=200"`
	Content string `json:"content" validate:"notblank"`

	// Image is a hosted image URL, may be empty.
	Image string   `json:"image" validate:"omitempty,http_url"`
	Tags  []string `json:"tags" validate:"dive,notblank"`

	// CreatedAt is set once at creation.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostUpdate is a partial post payload. Only non-nil fields are applied.
type PostUpdate struct {
	Title   *string   `json:"title,omitempty"`
	Slug    *string   `json:"slug,omitempty"`
	Summary *string   `json:"summary,omitempty"`
	Content *string   `json:"content,omitempty"`
	Image   *string   `json:"image,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
}

// Apply returns a copy of post with every non-nil field of u applied.
func (u PostUpdate) Apply(post Post) Post {
	if u.Title != nil {
		post.Title = *u.Title
	}
	if u.Slug != nil {
		post.Slug = *u.Slug
	}
	if u.Summary != nil {
		post.Summary = *u.Summary
	}
	if u.Content != nil {
		post.Content = *u.Content
	}
	if u.Image != nil {
		post.Image = *u.Image
	}
	if u.Tags != nil {
		post.Tags = append([]string{}, (*u.Tags)...)
	}

	return post
}
