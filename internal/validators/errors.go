package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrTitleRequired            = errors.New("title is required")
	ErrTitleTooLong             = errors.New("title is too long")
	ErrSlugRequired             = errors.New("slug is required")
	ErrInvalidSlug              = errors.New("slug must contain only lowercase letters, digits and single hyphens")
	ErrSlugLooksLikeID          = errors.New("slug must not have the shape of an identifier")
	ErrSummaryRequired          = errors.New("summary is required")
	ErrSummaryTooLong           = errors.New("summary is too long")
	ErrContentRequired          = errors.New("content is required")
	ErrInvalidImage             = errors.New("image must be an absolute http(s) URL")
	ErrInvalidTag               = errors.New("tags must not be empty")
	ErrShortDescriptionRequired = errors.New("short description is required")
	ErrLongDescriptionRequired  = errors.New("long description is required")
	ErrInvalidLink              = errors.New("links must be absolute http(s) URLs")
	ErrStatusRequired           = errors.New("status is required")
	ErrInvalidEmail             = errors.New("invalid email")
	ErrUsernameRequired         = errors.New("username is required")
	ErrPasswordRequired         = errors.New("password is required")
	ErrNoCredentialsToUpdate    = errors.New("at least one of new username or new password must be provided")
)
