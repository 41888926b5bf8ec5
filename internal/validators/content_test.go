// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/portfolio-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validPost() models.Post {
	return models.Post{
		Title:   "X",
		Slug:    "x",
		Summary: "s",
		Content: "c",
		Tags:    []string{"go"},
	}
}

func validProject() models.Project {
	return models.Project{
		Title:            "Tool",
		Slug:             "tool",
		ShortDescription: "short",
		LongDescription:  "long",
		GithubLink:       "https://github.com/x/tool",
		Status:           models.DefaultProjectStatus,
	}
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	post := validPost()
	project := validProject()
	resume := models.DefaultResume()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "unsupported type", obj: "a string", wantErr: ErrUnsupportedType},
		{name: "post value", obj: post},
		{name: "post pointer", obj: &post},
		{name: "project value", obj: project},
		{name: "project pointer", obj: &project},
		{name: "resume value", obj: resume},
		{name: "resume pointer", obj: &resume},
		{name: "credentials", obj: models.Credentials{Username: "admin", Password: "secret"}},
		{name: "credentials update", obj: &models.CredentialsUpdate{NewPassword: "abc123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Post(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(p *models.Post)
		wantErr error
	}{
		{name: "valid", mutate: func(p *models.Post) {}},
		{name: "blank title", mutate: func(p *models.Post) { p.Title = "  " }, wantErr: ErrTitleRequired},
		{name: "title at limit", mutate: func(p *models.Post) { p.Title = strings.Repeat("a", 60) }},
		{name: "title too long", mutate: func(p *models.Post) { p.Title = strings.Repeat("a", 61) }, wantErr: ErrTitleTooLong},
		{name: "multibyte title at limit", mutate: func(p *models.Post) { p.Title = strings.Repeat("é", 60) }},
		{name: "missing slug", mutate: func(p *models.Post) { p.Slug = "" }, wantErr: ErrSlugRequired},
		{name: "uppercase slug", mutate: func(p *models.Post) { p.Slug = "Hello" }, wantErr: ErrInvalidSlug},
		{name: "slug with spaces", mutate: func(p *models.Post) { p.Slug = "hello world" }, wantErr: ErrInvalidSlug},
		{name: "double hyphen", mutate: func(p *models.Post) { p.Slug = "a--b" }, wantErr: ErrInvalidSlug},
		{name: "trailing hyphen", mutate: func(p *models.Post) { p.Slug = "a-" }, wantErr: ErrInvalidSlug},
		{name: "slug shaped like id", mutate: func(p *models.Post) { p.Slug = "0190a6f2-7c1e-7d3a-8b4f-2c5d6e7f8a9b" }, wantErr: ErrSlugLooksLikeID},
		{name: "missing summary", mutate: func(p *models.Post) { p.Summary = "" }, wantErr: ErrSummaryRequired},
		{name: "summary too long", mutate: func(p *models.Post) { p.Summary = strings.Repeat("s", 201) }, wantErr: ErrSummaryTooLong},
		{name: "missing content", mutate: func(p *models.Post) { p.Content = "" }, wantErr: ErrContentRequired},
		{name: "relative image", mutate: func(p *models.Post) { p.Image = "/img.png" }, wantErr: ErrInvalidImage},
		{name: "hosted image", mutate: func(p *models.Post) { p.Image = "https://res.cloudinary.com/demo/image.png" }},
		{name: "blank tag", mutate: func(p *models.Post) { p.Tags = []string{"go", ""} }, wantErr: ErrInvalidTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := validPost()
			tt.mutate(&post)

			err := v.Validate(ctx, post)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_PostScopedFields(t *testing.T) {
	v := NewContentValidator()

	post := validPost()
	post.Content = ""

	require.NoError(t, v.Validate(context.Background(), post, FieldTitle, FieldSlug))
	require.ErrorIs(t, v.Validate(context.Background(), post, FieldContent), ErrContentRequired)
	require.ErrorIs(t, v.Validate(context.Background(), post, "nope"), ErrUnknownField)
}

func TestValidate_Project(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(p *models.Project)
		wantErr error
	}{
		{name: "valid", mutate: func(p *models.Project) {}},
		{name: "long title allowed", mutate: func(p *models.Project) { p.Title = strings.Repeat("t", 120) }},
		{name: "missing title", mutate: func(p *models.Project) { p.Title = "" }, wantErr: ErrTitleRequired},
		{name: "bad slug", mutate: func(p *models.Project) { p.Slug = "my_tool" }, wantErr: ErrInvalidSlug},
		{name: "missing short description", mutate: func(p *models.Project) { p.ShortDescription = "" }, wantErr: ErrShortDescriptionRequired},
		{name: "missing long description", mutate: func(p *models.Project) { p.LongDescription = " " }, wantErr: ErrLongDescriptionRequired},
		{name: "no links", mutate: func(p *models.Project) { p.GithubLink = ""; p.DemoLink = "" }},
		{name: "bad demo link", mutate: func(p *models.Project) { p.DemoLink = "ftp://demo" }, wantErr: ErrInvalidLink},
		{name: "missing status", mutate: func(p *models.Project) { p.Status = "" }, wantErr: ErrStatusRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := validProject()
			tt.mutate(&project)

			err := v.Validate(ctx, &project)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Resume(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ResumeDocument{}))

	resume := models.DefaultResume()
	resume.Email = "not an email"
	assert.ErrorIs(t, v.Validate(ctx, resume), ErrInvalidEmail)

	resume = models.DefaultResume()
	resume.Socials.Website = "example.com"
	assert.ErrorIs(t, v.Validate(ctx, resume), ErrInvalidLink)
}

func TestValidate_Credentials(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Password: "x"}), ErrUsernameRequired)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Username: "admin"}), ErrPasswordRequired)

	assert.ErrorIs(t, v.Validate(ctx, models.CredentialsUpdate{}), ErrNoCredentialsToUpdate)
	assert.ErrorIs(t, v.Validate(ctx, models.CredentialsUpdate{NewUsername: " ", NewPassword: "\t"}), ErrNoCredentialsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.CredentialsUpdate{NewUsername: "root"}))
}

func TestValidate_LengthLimitsCountCharacters(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	post := validPost()
	post.Title = strings.Repeat("日", 61)
	require.ErrorIs(t, v.Validate(ctx, post), ErrTitleTooLong)

	post = validPost()
	post.Summary = strings.Repeat("ü", 200)
	require.NoError(t, v.Validate(ctx, post))
}

func TestValidate_ScopedFields(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	project := validProject()
	project.DemoLink = "not a link"
	project.Status = ""
	require.NoError(t, v.Validate(ctx, project, FieldTitle, FieldSlug))
	require.ErrorIs(t, v.Validate(ctx, project, FieldLinks), ErrInvalidLink)
	require.ErrorIs(t, v.Validate(ctx, project, FieldStatus), ErrStatusRequired)

	resume := models.DefaultResume()
	resume.Socials.Github = "github.com/x"
	require.NoError(t, v.Validate(ctx, resume, FieldEmail))
	require.ErrorIs(t, v.Validate(ctx, resume, FieldSocials), ErrInvalidLink)

	require.ErrorIs(t, v.Validate(ctx, models.Credentials{}, FieldPassword), ErrPasswordRequired)
	require.ErrorIs(t, v.Validate(ctx, models.Credentials{}, FieldEmail), ErrUnknownField)
}
