package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/portfolio-server/models"
)

var (
	adminColumns = []string{
		"id",
		"username",
		"password_hash",
		"session_version",
		"created_at",
		"updated_at",
	}

	postColumns = []string{
		"id",
		"title",
		"slug",
		"summary",
		"content",
		"image",
		"tags",
		"created_at",
	}

	projectColumns = []string{
		"id",
		"title",
		"slug",
		"short_description",
		"long_description",
		"github_link",
		"demo_link",
		"status",
		"tags",
		"how_it_works",
		"features",
		"tech_stack",
		"installation",
		"created_at",
	}

	resumeColumns = []string{
		"slug",
		"document",
		"updated_at",
	}
)

const (
	resumeInsertIfAbsentSuffix = "ON CONFLICT (slug) DO NOTHING"

	// updated_at only moves when the stored document actually changes.
	resumeUpsertSuffix = "ON CONFLICT (slug) DO UPDATE SET " +
		"document = excluded.document, " +
		"updated_at = CASE WHEN resumes.document = excluded.document " +
		"THEN resumes.updated_at ELSE excluded.updated_at END"
)

// keyCondition selects the column a content key resolves against.
func keyCondition(key models.ContentKey) sq.Eq {
	if key.IsID() {
		return sq.Eq{"id": key.Value}
	}
	return sq.Eq{"slug": key.Value}
}

// ─────────────────────────────────────────────
// admins
// ─────────────────────────────────────────────

func buildInsertAdminQuery(b sq.StatementBuilderType, admin models.Admin) (string, []any, error) {
	return b.Insert(admin.TableName()).
		Columns(adminColumns...).
		Values(admin.ID, admin.Username, admin.PasswordHash, admin.SessionVersion, admin.CreatedAt, admin.UpdatedAt).
		ToSql()
}

func buildSelectAdminQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(adminColumns...).
		From(models.Admin{}.TableName()).
		Where(sq.Eq{"id": models.AdminSlot}).
		ToSql()
}

func buildSelectAdminByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(adminColumns...).
		From(models.Admin{}.TableName()).
		Where(sq.Eq{"id": models.AdminSlot, "username": username}).
		ToSql()
}

// buildUpdateAdminQuery sets the non-empty fields and increments the session
// version in the same statement.
func buildUpdateAdminQuery(b sq.StatementBuilderType, username, passwordHash string, now time.Time) (string, []any, error) {
	query := b.Update(models.Admin{}.TableName())
	if username != "" {
		query = query.Set("username", username)
	}
	if passwordHash != "" {
		query = query.Set("password_hash", passwordHash)
	}

	return query.
		Set("session_version", sq.Expr("session_version + 1")).
		Set("updated_at", now).
		Where(sq.Eq{"id": models.AdminSlot}).
		ToSql()
}

// ─────────────────────────────────────────────
// posts
// ─────────────────────────────────────────────

func buildInsertPostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	tags, err := toJSONColumn(post.Tags)
	if err != nil {
		return "", nil, err
	}

	return b.Insert(post.TableName()).
		Columns(postColumns...).
		Values(post.ID, post.Title, post.Slug, post.Summary, post.Content, post.Image, tags, post.CreatedAt).
		ToSql()
}

func buildSelectPostsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(postColumns...).
		From(models.Post{}.TableName()).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildSelectPostQuery(b sq.StatementBuilderType, key models.ContentKey) (string, []any, error) {
	return b.Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(keyCondition(key)).
		ToSql()
}

func buildUpdatePostQuery(b sq.StatementBuilderType, key models.ContentKey, post models.Post) (string, []any, error) {
	tags, err := toJSONColumn(post.Tags)
	if err != nil {
		return "", nil, err
	}

	return b.Update(post.TableName()).
		Set("title", post.Title).
		Set("slug", post.Slug).
		Set("summary", post.Summary).
		Set("content", post.Content).
		Set("image", post.Image).
		Set("tags", tags).
		Where(keyCondition(key)).
		ToSql()
}

func buildDeletePostQuery(b sq.StatementBuilderType, key models.ContentKey) (string, []any, error) {
	return b.Delete(models.Post{}.TableName()).
		Where(keyCondition(key)).
		ToSql()
}

// ─────────────────────────────────────────────
// projects
// ─────────────────────────────────────────────

// projectJSONColumns holds the encoded list columns of a project.
type projectJSONColumns struct {
	tags, howItWorks, features, techStack, installation string
}

func encodeProjectColumns(project models.Project) (projectJSONColumns, error) {
	var (
		cols projectJSONColumns
		err  error
	)

	if cols.tags, err = toJSONColumn(project.Tags); err != nil {
		return cols, err
	}
	if cols.howItWorks, err = toJSONColumn(project.HowItWorks); err != nil {
		return cols, err
	}
	if cols.features, err = toJSONColumn(project.Features); err != nil {
		return cols, err
	}
	if cols.techStack, err = toJSONColumn(project.TechStack); err != nil {
		return cols, err
	}
	if cols.installation, err = toJSONColumn(project.Installation); err != nil {
		return cols, err
	}

	return cols, nil
}

func buildInsertProjectQuery(b sq.StatementBuilderType, project models.Project) (string, []any, error) {
	cols, err := encodeProjectColumns(project)
	if err != nil {
		return "", nil, err
	}

	return b.Insert(project.TableName()).
		Columns(projectColumns...).
		Values(
			project.ID,
			project.Title,
			project.Slug,
			project.ShortDescription,
			project.LongDescription,
			project.GithubLink,
			project.DemoLink,
			project.Status,
			cols.tags,
			cols.howItWorks,
			cols.features,
			cols.techStack,
			cols.installation,
			project.CreatedAt,
		).
		ToSql()
}

func buildSelectProjectsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(projectColumns...).
		From(models.Project{}.TableName()).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildSelectProjectQuery(b sq.StatementBuilderType, key models.ContentKey) (string, []any, error) {
	return b.Select(projectColumns...).
		From(models.Project{}.TableName()).
		Where(keyCondition(key)).
		ToSql()
}

func buildUpdateProjectQuery(b sq.StatementBuilderType, key models.ContentKey, project models.Project) (string, []any, error) {
	cols, err := encodeProjectColumns(project)
	if err != nil {
		return "", nil, err
	}

	return b.Update(project.TableName()).
		Set("title", project.Title).
		Set("slug", project.Slug).
		Set("short_description", project.ShortDescription).
		Set("long_description", project.LongDescription).
		Set("github_link", project.GithubLink).
		Set("demo_link", project.DemoLink).
		Set("status", project.Status).
		Set("tags", cols.tags).
		Set("how_it_works", cols.howItWorks).
		Set("features", cols.features).
		Set("tech_stack", cols.techStack).
		Set("installation", cols.installation).
		Where(keyCondition(key)).
		ToSql()
}

func buildDeleteProjectQuery(b sq.StatementBuilderType, key models.ContentKey) (string, []any, error) {
	return b.Delete(models.Project{}.TableName()).
		Where(keyCondition(key)).
		ToSql()
}

// ─────────────────────────────────────────────
// resumes
// ─────────────────────────────────────────────

func buildSelectResumeQuery(b sq.StatementBuilderType, slug string) (string, []any, error) {
	return b.Select(resumeColumns...).
		From(models.Resume{}.TableName()).
		Where(sq.Eq{"slug": slug}).
		ToSql()
}

func buildInsertResumeQuery(b sq.StatementBuilderType, resume models.Resume, suffix string) (string, []any, error) {
	document, err := toJSONColumn(resume.ResumeDocument)
	if err != nil {
		return "", nil, err
	}

	return b.Insert(resume.TableName()).
		Columns(resumeColumns...).
		Values(resume.Slug, document, resume.UpdatedAt).
		Suffix(suffix).
		ToSql()
}
