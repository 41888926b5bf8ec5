package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/portfolio-server/internal/config"
	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/internal/mock"
	"github.com/MKhiriev/portfolio-server/internal/service"
	"github.com/MKhiriev/portfolio-server/internal/store"
	"github.com/MKhiriev/portfolio-server/internal/utils"
	"github.com/MKhiriev/portfolio-server/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validToken = "valid-token"

// testServices holds the mocks behind a router built by newTestRouter.
type testServices struct {
	auth     *mock.MockAuthService
	posts    *mock.MockPostService
	projects *mock.MockProjectService
	resume   *mock.MockResumeService
	upload   *mock.MockUploadService
	appInfo  *mock.MockAppInfoService
}

// testUploadLimit is the image size limit reported by the mocked upload service.
const testUploadLimit = 4 << 10

func newTestRouter(t *testing.T) (*chi.Mux, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := &testServices{
		auth:     mock.NewMockAuthService(ctrl),
		posts:    mock.NewMockPostService(ctrl),
		projects: mock.NewMockProjectService(ctrl),
		resume:   mock.NewMockResumeService(ctrl),
		upload:   mock.NewMockUploadService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	mocks.auth.EXPECT().ParseToken(gomock.Any(), validToken).Return(models.Token{AdminID: models.AdminSlot, SessionVersion: 1}, nil).AnyTimes()
	mocks.upload.EXPECT().MaxBytes().Return(int64(testUploadLimit)).AnyTimes()

	services := &service.Services{
		AuthService:    mocks.auth,
		PostService:    mocks.posts,
		ProjectService: mocks.projects,
		ResumeService:  mocks.resume,
		UploadService:  mocks.upload,
		AppInfoService: mocks.appInfo,
	}

	return NewHandler(services, config.Server{}, logger.Nop()).Init(), mocks
}

func doRequest(router http.Handler, method, path, body string, authorized bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+validToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

// ─────────────────────────────────────────────
// Routing
// ─────────────────────────────────────────────

func TestInit_AdminRoutesRequireSession(t *testing.T) {
	router, _ := newTestRouter(t)

	routes := []struct{ method, path string }{
		{http.MethodPut, "/admin/credentials"},
		{http.MethodPost, "/posts"},
		{http.MethodPut, "/posts/x"},
		{http.MethodDelete, "/posts/x"},
		{http.MethodPost, "/projects"},
		{http.MethodPut, "/projects/x"},
		{http.MethodDelete, "/projects/x"},
		{http.MethodPut, "/resume"},
		{http.MethodPost, "/upload"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(router, tc.method, tc.path, "{}", false)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, kindUnauthorized, decodeError(t, rec).Error)
		})
	}
}

func TestInit_UnknownRoutesAreNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodPatch, "/posts/x"},
		{http.MethodPost, "/api/version"},
	} {
		rec := doRequest(router, tc.method, tc.path, "", true)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, kindNotFound, decodeError(t, rec).Error)
	}
}

func TestInit_CORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/posts", nil)
	req.Header.Set("Origin", "https://portfolio.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestInit_TraceIDHeader(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := doRequest(router, http.MethodGet, "/api/version", "", false)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

// ─────────────────────────────────────────────
// Error mapping
// ─────────────────────────────────────────────

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantKind    string
		wantMessage string
	}{
		{name: "validation", err: fmt.Errorf("%w: %w", service.ErrValidation, store.ErrSlugAlreadyExists), wantStatus: http.StatusUnprocessableEntity, wantKind: kindValidation},
		{name: "not found", err: fmt.Errorf("%w: %w", service.ErrNotFound, store.ErrPostNotFound), wantStatus: http.StatusNotFound, wantKind: kindNotFound},
		{name: "revoked session", err: service.ErrSessionRevoked, wantStatus: http.StatusUnauthorized, wantKind: kindUnauthorized},
		{name: "invalid credentials", err: fmt.Errorf("%w: wrong password", service.ErrInvalidCredentials), wantStatus: http.StatusUnauthorized, wantKind: kindInvalidCredentials, wantMessage: "access denied"},
		{name: "bad request", err: service.ErrNoFileUploaded, wantStatus: http.StatusBadRequest, wantKind: kindBadRequest},
		{name: "upstream", err: fmt.Errorf("%w: cloud says no", service.ErrUpstreamFailure), wantStatus: http.StatusBadGateway, wantKind: kindUpstreamFailure, wantMessage: "upstream service failure"},
		{name: "internal", err: errors.New("pq: connection reset"), wantStatus: http.StatusInternalServerError, wantKind: kindInternal, wantMessage: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			body := decodeError(t, rec)
			assert.Equal(t, tt.wantKind, body.Error)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, body.Message)
			} else {
				assert.Equal(t, tt.err.Error(), body.Message)
			}
		})
	}
}

// ─────────────────────────────────────────────
// Auth middleware
// ─────────────────────────────────────────────

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no header"},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "missing token", header: "Bearer"},
		{name: "rejected token", header: "Bearer stale-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			mocks.auth.EXPECT().ParseToken(gomock.Any(), "stale-token").Return(models.Token{}, service.ErrSessionRevoked).MaxTimes(1)

			req := httptest.NewRequest(http.MethodDelete, "/posts/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, kindUnauthorized, decodeError(t, rec).Error)
		})
	}
}

func TestAuth_SessionLookupFailure(t *testing.T) {
	router, mocks := newTestRouter(t)
	lookupErr := fmt.Errorf("admin lookup failed: %w: sql: database is closed", service.ErrUpstreamFailure)
	mocks.auth.EXPECT().ParseToken(gomock.Any(), "some-token").Return(models.Token{}, lookupErr)

	req := httptest.NewRequest(http.MethodDelete, "/posts/x", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, kindUpstreamFailure, body.Error)
	assert.Equal(t, "upstream service failure", body.Message)
}

func TestAuth_StoresAdminID(t *testing.T) {
	_, mocks := newTestRouter(t)
	h := &Handler{services: &service.Services{AuthService: mocks.auth}, logger: logger.Nop()}

	var gotID int64
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = utils.GetAdminIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+validToken)
	h.auth(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, gotOK)
	assert.Equal(t, models.AdminSlot, gotID)
}

// ─────────────────────────────────────────────
// Auth handlers
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	router, mocks := newTestRouter(t)

	admin := models.Admin{ID: models.AdminSlot, Username: "admin", SessionVersion: 1}
	mocks.auth.EXPECT().Login(gomock.Any(), models.Credentials{Username: "admin", Password: "secret"}).Return(admin, nil)
	mocks.auth.EXPECT().CreateToken(gomock.Any(), admin).Return(models.Token{SignedString: "signed"}, nil)

	rec := doRequest(router, http.MethodPost, "/auth/login", `{"username":"admin","password":"secret"}`, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))
	assert.JSONEq(t, `{"token":"signed"}`, rec.Body.String())
}

func TestJSONBodyLimit(t *testing.T) {
	router, _ := newTestRouter(t)
	oversized := `{"username":"` + strings.Repeat("a", maxJSONBodyBytes) + `","password":"x"}`

	rec := doRequest(router, http.MethodPost, "/auth/login", oversized, false)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, kindBadRequest, decodeError(t, rec).Error)

	rec = doRequest(router, http.MethodPut, "/resume", `{"name":"`+strings.Repeat("n", maxJSONBodyBytes)+`"}`, true)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		wantStatus int
		wantKind   string
	}{
		{name: "wrong password", body: `{"username":"admin","password":"nope"}`, loginErr: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantKind: kindInvalidCredentials},
		{name: "unknown field", body: `{"username":"admin","password":"x","otp":"1"}`, wantStatus: http.StatusBadRequest, wantKind: kindBadRequest},
		{name: "malformed json", body: `{"username":`, wantStatus: http.StatusBadRequest, wantKind: kindBadRequest},
		{name: "seeding failure", body: `{"username":"admin","password":"x"}`, loginErr: service.ErrAdminSeedingFailed, wantStatus: http.StatusInternalServerError, wantKind: kindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			if tt.loginErr != nil {
				mocks.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Admin{}, tt.loginErr)
			}

			rec := doRequest(router, http.MethodPost, "/auth/login", tt.body, false)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Header().Get("Authorization"))
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantKind, body.Error)
			if tt.wantKind == kindInvalidCredentials {
				assert.Equal(t, "access denied", body.Message)
			}
		})
	}
}

func TestUpdateCredentials(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.auth.EXPECT().RotateCredentials(gomock.Any(), models.CredentialsUpdate{NewPassword: "abc123"}).Return(nil)

	rec := doRequest(router, http.MethodPut, "/admin/credentials", `{"newPassword":"abc123"}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestUpdateCredentials_NothingToUpdate(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.auth.EXPECT().RotateCredentials(gomock.Any(), models.CredentialsUpdate{}).Return(fmt.Errorf("%w: nothing to update", service.ErrBadRequest))

	rec := doRequest(router, http.MethodPut, "/admin/credentials", `{}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// Posts
// ─────────────────────────────────────────────

func TestCreatePost(t *testing.T) {
	router, mocks := newTestRouter(t)

	created := models.Post{ID: "0190a6f2-7c1e-7d3a-8b4f-2c5d6e7f8a9b", Title: "X", Slug: "x", Summary: "s", Content: "c", Tags: []string{}, CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	mocks.posts.EXPECT().CreatePost(gomock.Any(), models.Post{Title: "X", Slug: "x", Summary: "s", Content: "c"}).Return(created, nil)

	rec := doRequest(router, http.MethodPost, "/posts", `{"title":"X","slug":"x","summary":"s","content":"c"}`, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.Post
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, created, got)
}

func TestCreatePost_Validation(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.posts.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(models.Post{}, fmt.Errorf("%w: title is required", service.ErrValidation))

	rec := doRequest(router, http.MethodPost, "/posts", `{"slug":"x"}`, true)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, kindValidation, decodeError(t, rec).Error)
}

func TestGetPost_PassesKey(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.posts.EXPECT().GetPost(gomock.Any(), "hello-world").Return(models.Post{Slug: "hello-world"}, nil)
	mocks.posts.EXPECT().GetPost(gomock.Any(), "missing").Return(models.Post{}, service.ErrNotFound)

	rec := doRequest(router, http.MethodGet, "/posts/hello-world", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodGet, "/posts/missing", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPosts(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.posts.EXPECT().ListPosts(gomock.Any()).Return([]models.Post{}, nil)

	rec := doRequest(router, http.MethodGet, "/posts", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUpdatePost(t *testing.T) {
	router, mocks := newTestRouter(t)

	title := "New"
	mocks.posts.EXPECT().UpdatePost(gomock.Any(), "old", models.PostUpdate{Title: &title}).Return(models.Post{Title: "New"}, nil)

	rec := doRequest(router, http.MethodPut, "/posts/old", `{"title":"New"}`, true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeletePost(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.posts.EXPECT().DeletePost(gomock.Any(), "x").Return(nil)

	rec := doRequest(router, http.MethodDelete, "/posts/x", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// Projects
// ─────────────────────────────────────────────

func TestProjectRoutes(t *testing.T) {
	router, mocks := newTestRouter(t)

	status := "Private"
	mocks.projects.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Return(models.Project{Slug: "tool"}, nil)
	mocks.projects.EXPECT().ListProjects(gomock.Any()).Return([]models.Project{{Slug: "tool"}}, nil)
	mocks.projects.EXPECT().GetProject(gomock.Any(), "tool").Return(models.Project{Slug: "tool"}, nil)
	mocks.projects.EXPECT().UpdateProject(gomock.Any(), "tool", models.ProjectUpdate{Status: &status}).Return(models.Project{Slug: "tool", Status: status}, nil)
	mocks.projects.EXPECT().DeleteProject(gomock.Any(), "tool").Return(service.ErrNotFound)

	assert.Equal(t, http.StatusCreated, doRequest(router, http.MethodPost, "/projects", `{"title":"Tool","slug":"tool"}`, true).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/projects", "", false).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/projects/tool", "", false).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodPut, "/projects/tool", `{"status":"Private"}`, true).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodDelete, "/projects/tool", "", true).Code)
}

// ─────────────────────────────────────────────
// Resume
// ─────────────────────────────────────────────

func TestResumeRoutes(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.resume.EXPECT().GetResume(gomock.Any()).Return(models.Resume{Slug: models.ResumeSlug, ResumeDocument: models.DefaultResume()}, nil)
	name := "Ada"
	mocks.resume.EXPECT().UpdateResume(gomock.Any(), models.ResumeUpdate{Name: &name}).Return(models.Resume{Slug: models.ResumeSlug}, nil)

	rec := doRequest(router, http.MethodGet, "/resume", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slug":"main-resume"`)

	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodPut, "/resume", `{"name":"Ada"}`, true).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(router, http.MethodPut, "/resume", `{"name":"Ada","age":3}`, true).Code)
}

// ─────────────────────────────────────────────
// Upload
// ─────────────────────────────────────────────

func newUploadRequest(t *testing.T, field string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, "photo.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+validToken)
	return req
}

func TestUploadImage(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.upload.EXPECT().UploadImage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, upload models.ImageUpload) (models.UploadResult, error) {
			assert.Equal(t, "photo.png", upload.Filename)
			data, err := io.ReadAll(upload.Data)
			require.NoError(t, err)
			assert.Equal(t, []byte("pixels"), data)
			return models.UploadResult{URL: "https://cdn.example/photo.png"}, nil
		},
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newUploadRequest(t, uploadFormField, []byte("pixels")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://cdn.example/photo.png"}`, rec.Body.String())
}

func TestUploadImage_Failures(t *testing.T) {
	t.Run("missing file field", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newUploadRequest(t, "image", []byte("pixels")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not multipart", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(router, http.MethodPost, "/upload", `{"file":"x"}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("body over the upload limit", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newUploadRequest(t, uploadFormField, bytes.Repeat([]byte("p"), testUploadLimit+multipartOverhead+1)))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, kindValidation, decodeError(t, rec).Error)
	})

	t.Run("image host down", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.upload.EXPECT().UploadImage(gomock.Any(), gomock.Any()).Return(models.UploadResult{}, fmt.Errorf("%w: timeout", service.ErrUpstreamFailure))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newUploadRequest(t, uploadFormField, []byte("pixels")))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, kindUpstreamFailure, decodeError(t, rec).Error)
	})
}

// ─────────────────────────────────────────────
// Version
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := doRequest(router, http.MethodGet, "/api/version", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}
