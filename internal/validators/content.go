package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/portfolio-server/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldTitle            = "title"
	FieldSlug             = "slug"
	FieldSummary          = "summary"
	FieldContent          = "content"
	FieldImage            = "image"
	FieldTags             = "tags"
	FieldShortDescription = "short_description"
	FieldLongDescription  = "long_description"
	FieldLinks            = "links"
	FieldStatus           = "status"
	FieldEmail            = "email"
	FieldSocials          = "socials"
	FieldUsername         = "username"
	FieldPassword         = "password"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Field constants accepted per model and the struct fields they select.
var (
	postFields = map[string][]string{
		FieldTitle:   {"Title"},
		FieldSlug:    {"Slug"},
		FieldSummary: {"Summary"},
		FieldContent: {"Content"},
		FieldImage:   {"Image"},
		FieldTags:    {"Tags"},
	}
	projectFields = map[string][]string{
		FieldTitle:            {"Title"},
		FieldSlug:             {"Slug"},
		FieldShortDescription: {"ShortDescription"},
		FieldLongDescription:  {"LongDescription"},
		FieldLinks:            {"GithubLink", "DemoLink"},
		FieldStatus:           {"Status"},
		FieldTags:             {"Tags"},
	}
	resumeFields = map[string][]string{
		FieldEmail:   {"Email"},
		FieldSocials: {"Socials.LinkedIn", "Socials.Github", "Socials.Website"},
	}
	credentialsFields = map[string][]string{
		FieldUsername: {"Username"},
		FieldPassword: {"Password"},
	}
)

// ruleErrors translates a failed "<StructField>.<tag>" rule into the
// package sentinel reported to callers.
var ruleErrors = map[string]error{
	"Title.notblank":            ErrTitleRequired,
	"Title.max":                 ErrTitleTooLong,
	"Slug.required":             ErrSlugRequired,
	"Slug.notid":                ErrSlugLooksLikeID,
	"Slug.slug":                 ErrInvalidSlug,
	"Summary.notblank":          ErrSummaryRequired,
	"Summary.max":               ErrSummaryTooLong,
	"Content.notblank":          ErrContentRequired,
	"Image.http_url":            ErrInvalidImage,
	"Tags.notblank":             ErrInvalidTag,
	"ShortDescription.notblank": ErrShortDescriptionRequired,
	"LongDescription.notblank":  ErrLongDescriptionRequired,
	"GithubLink.http_url":       ErrInvalidLink,
	"DemoLink.http_url":         ErrInvalidLink,
	"Status.notblank":           ErrStatusRequired,
	"Email.email":               ErrInvalidEmail,
	"LinkedIn.http_url":         ErrInvalidLink,
	"Github.http_url":           ErrInvalidLink,
	"Website.http_url":          ErrInvalidLink,
	"Username.notblank":         ErrUsernameRequired,
	"Password.required":         ErrPasswordRequired,
	"NewUsername.credentials":   ErrNoCredentialsToUpdate,
}

// ContentValidator implements [Validator] for posts, projects, the resume
// document and administrator credentials. Both value and pointer forms of
// every model are accepted. The rules live in the models' validate tags.
type ContentValidator struct {
	validate *validator.Validate
}

func NewContentValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails on an empty tag or a nil function.
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return !isBlank(fl.Field().String())
	})
	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("notid", func(fl validator.FieldLevel) bool {
		return !models.IsIdentifier(fl.Field().String())
	})
	validate.RegisterStructValidation(credentialsUpdateRule, models.CredentialsUpdate{})

	return &ContentValidator{validate: validate}
}

// Validate dispatches on the dynamic type of obj. When fields is empty the
// full rule set of the type is applied.
func (v *ContentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Post:
		return v.check(ctx, value, postFields, fields)
	case *models.Post:
		return v.check(ctx, *value, postFields, fields)

	case models.Project:
		return v.check(ctx, value, projectFields, fields)
	case *models.Project:
		return v.check(ctx, *value, projectFields, fields)

	case models.ResumeDocument:
		return v.check(ctx, value, resumeFields, fields)
	case *models.ResumeDocument:
		return v.check(ctx, *value, resumeFields, fields)

	case models.Credentials:
		return v.check(ctx, value, credentialsFields, fields)
	case *models.Credentials:
		return v.check(ctx, *value, credentialsFields, fields)

	case models.CredentialsUpdate:
		return v.check(ctx, value, nil, nil)
	case *models.CredentialsUpdate:
		return v.check(ctx, *value, nil, nil)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContentValidator) check(ctx context.Context, obj any, known map[string][]string, fields []string) error {
	if len(fields) == 0 {
		return translate(v.validate.StructCtx(ctx, obj))
	}

	var selected []string
	for _, f := range fields {
		names, ok := known[f]
		if !ok {
			return ErrUnknownField
		}
		selected = append(selected, names...)
	}

	return translate(v.validate.StructPartialCtx(ctx, obj, selected...))
}

// translate reports the first failed rule as its sentinel.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var failed validator.ValidationErrors
	if !errors.As(err, &failed) || len(failed) == 0 {
		return err
	}

	fe := failed[0]
	field := fe.StructField()
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	if sentinel, ok := ruleErrors[field+"."+fe.Tag()]; ok {
		return sentinel
	}
	return fmt.Errorf("%s failed the %q rule", fe.Namespace(), fe.Tag())
}

// credentialsUpdateRule requires at least one non-blank new credential.
func credentialsUpdateRule(sl validator.StructLevel) {
	update := sl.Current().Interface().(models.CredentialsUpdate)
	if isBlank(update.NewUsername) && isBlank(update.NewPassword) {
		sl.ReportError(update.NewUsername, "newUsername", "NewUsername", "credentials", "")
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
