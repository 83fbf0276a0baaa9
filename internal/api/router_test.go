package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sp1r1tt/dashboard2025/internal/api"
	"github.com/sp1r1tt/dashboard2025/internal/auth"
	"github.com/sp1r1tt/dashboard2025/internal/group"
	"github.com/sp1r1tt/dashboard2025/internal/product"
	"github.com/sp1r1tt/dashboard2025/internal/user"
)

// --- Minimal fakes wired through the full router ---

type stubUserRepo struct{ stored *user.User }

func (s *stubUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (s *stubUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if s.stored != nil && s.stored.ID == id {
		return s.stored, nil
	}
	return nil, user.ErrUserNotFound
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if s.stored != nil && s.stored.Email == email {
		return s.stored, nil
	}
	return nil, user.ErrUserNotFound
}

func (s *stubUserRepo) List(ctx context.Context) ([]user.User, error) { return []user.User{}, nil }

func (s *stubUserRepo) Delete(ctx context.Context, id int64) error { return user.ErrUserNotFound }

func (s *stubUserRepo) UpdateProfile(ctx context.Context, id int64, name, email string, passwordHash *string) error {
	return nil
}

func (s *stubUserRepo) Count(ctx context.Context) (int, error) { return 1, nil }

type stubGroupRepo struct{}

func (stubGroupRepo) ListJoined(ctx context.Context) ([]group.Row, error) {
	return []group.Row{{ID: 1, TitleEn: "only", TitleRu: "только"}}, nil
}

func (stubGroupRepo) Delete(ctx context.Context, id int64) error { return group.ErrGroupNotFound }

func (stubGroupRepo) Count(ctx context.Context) (int, error) { return 1, nil }

type stubProductRepo struct{}

func (stubProductRepo) List(ctx context.Context) ([]product.Product, error) {
	return []product.Product{}, nil
}

func (stubProductRepo) Delete(ctx context.Context, id int64) error {
	return product.ErrProductNotFound
}

func (stubProductRepo) Count(ctx context.Context) (int, error) { return 0, nil }

type okPinger struct{}

func (okPinger) Ping(ctx context.Context) error { return nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &stubUserRepo{stored: &user.User{
		ID: 1, Name: "Admin", Email: "admin@localhost", PasswordHash: string(hash),
	}}
	codec := auth.NewCodec([]byte("router-test-secret"), time.Hour)

	return api.NewRouter(api.RouterDeps{
		AuthService:        auth.NewService(users, codec, bcrypt.MinCost),
		Codec:              codec,
		Users:              users,
		Groups:             stubGroupRepo{},
		Products:           stubProductRepo{},
		DBPinger:           okPinger{},
		Version:            "test",
		SecureCookies:      false,
		TokenTTL:           time.Hour,
		LoginRatePerMinute: 100,
	})
}

func TestRouter_ProtectedAPIRejectsAnonymous(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	for _, path := range []string{
		"/api/groups", "/api/products", "/api/inventory",
		"/api/users", "/api/user/profile", "/api/dashboard",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "path %s", path)
	}
}

func TestRouter_LoginThenBrowseWithCookie(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	body, err := json.Marshal(map[string]string{"email": "admin@localhost", "password": "s3cret"})
	require.NoError(t, err)

	loginReq := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	loginW := httptest.NewRecorder()
	router.ServeHTTP(loginW, loginReq)
	require.Equal(t, http.StatusOK, loginW.Code)

	var cookie *http.Cookie
	for _, c := range loginW.Result().Cookies() {
		if c.Name == auth.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	groupsReq := httptest.NewRequest(http.MethodGet, "/api/groups", nil)
	groupsReq.AddCookie(cookie)
	groupsW := httptest.NewRecorder()
	router.ServeHTTP(groupsW, groupsReq)

	require.Equal(t, http.StatusOK, groupsW.Code)
	var groups []map[string]any
	require.NoError(t, json.Unmarshal(groupsW.Body.Bytes(), &groups))
	require.Len(t, groups, 1)
	assert.Equal(t, "only", groups[0]["titleEn"])
}

func TestRouter_PagesRedirectWithoutCookie(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	for _, path := range []string{"/", "/dashboard", "/products", "/groups", "/users", "/settings"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code, "path %s", path)
		assert.Equal(t, "/login", w.Header().Get("Location"), "path %s", path)
	}
}

func TestRouter_LoginPageIsUnguarded(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_GarbageCookiePassesGuardButNotAPI(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	garbage := &http.Cookie{Name: auth.CookieName, Value: "garbage"}

	pageReq := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	pageReq.AddCookie(garbage)
	pageW := httptest.NewRecorder()
	router.ServeHTTP(pageW, pageReq)
	assert.Equal(t, http.StatusOK, pageW.Code)

	apiReq := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	apiReq.AddCookie(garbage)
	apiW := httptest.NewRecorder()
	router.ServeHTTP(apiW, apiReq)
	assert.Equal(t, http.StatusUnauthorized, apiW.Code)
}

func TestRouter_HealthIsPublic(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
