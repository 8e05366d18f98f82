package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
	infraRepo "github.com/gamebook/gamebook-api/internal/infrastructure/repository"
	"github.com/gamebook/gamebook-api/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSystemRepo struct {
	status *entity.SystemStatus
	err    error
}

func (r *fakeSystemRepo) Get(ctx context.Context) (*entity.SystemStatus, error) {
	return r.status, r.err
}

func (r *fakeSystemRepo) Update(ctx context.Context, enabled bool, reason string) (*entity.SystemStatus, error) {
	r.status = &entity.SystemStatus{Enabled: enabled, Reason: reason}
	return r.status, nil
}

type fakeIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (r *fakeIdempotencyRepo) GetByKey(ctx context.Context, key string, vendorID uuid.UUID) (*entity.IdempotencyKey, error) {
	ikey, ok := r.keys[key]
	if !ok || ikey.VendorID != vendorID {
		return nil, nil
	}
	return ikey, nil
}

func (r *fakeIdempotencyRepo) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	r.keys[ikey.Key] = ikey
	return nil
}

func (r *fakeIdempotencyRepo) DeleteExpired(ctx context.Context) error {
	for key, ikey := range r.keys {
		if ikey.IsExpired() {
			delete(r.keys, key)
		}
	}
	return nil
}

func perform(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsBadHeaders(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	router := gin.New()
	router.GET("/ping", AuthMiddleware(jwtManager), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			w := perform(router, http.MethodGet, "/ping", headers)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestAuthMiddlewareScopesVendorContext(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	vendorID := uuid.New()
	token, err := jwtManager.GenerateAccessToken(vendorID, utils.RoleVendor, "Test Vendor")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	router := gin.New()
	router.GET("/ping", AuthMiddleware(jwtManager), func(c *gin.Context) {
		if got := GetSubjectID(c); got != vendorID {
			t.Errorf("subject id = %v, want %v", got, vendorID)
		}
		if got := GetRole(c); got != utils.RoleVendor {
			t.Errorf("role = %q, want %q", got, utils.RoleVendor)
		}
		if got := GetSubjectName(c); got != "Test Vendor" {
			t.Errorf("name = %q, want %q", got, "Test Vendor")
		}
		scoped, ok := infraRepo.GetVendorID(c.Request.Context())
		if !ok || scoped != vendorID {
			t.Errorf("request context vendor = %v/%v, want %v", scoped, ok, vendorID)
		}
		c.Status(http.StatusOK)
	})

	w := perform(router, http.MethodGet, "/ping", map[string]string{"Authorization": "Bearer " + token})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestAuthMiddlewareAdminHasNoVendorScope(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	adminID := uuid.New()
	token, err := jwtManager.GenerateAccessToken(adminID, utils.RoleAdmin, "Admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	router := gin.New()
	router.GET("/ping", AuthMiddleware(jwtManager), func(c *gin.Context) {
		if _, ok := infraRepo.GetVendorID(c.Request.Context()); ok {
			t.Error("admin request must not carry a vendor scope")
		}
		c.Status(http.StatusOK)
	})

	w := perform(router, http.MethodGet, "/ping", map[string]string{"Authorization": "Bearer " + token})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	router := gin.New()
	router.GET("/admin-only", func(c *gin.Context) {
		c.Set("role", utils.RoleVendor)
	}, RequireRole(utils.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/vendor-only", func(c *gin.Context) {
		c.Set("role", utils.RoleVendor)
	}, RequireRole(utils.RoleVendor), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	if w := perform(router, http.MethodGet, "/admin-only", nil); w.Code != http.StatusForbidden {
		t.Errorf("admin-only status = %d, want 403", w.Code)
	}
	if w := perform(router, http.MethodGet, "/vendor-only", nil); w.Code != http.StatusOK {
		t.Errorf("vendor-only status = %d, want 200", w.Code)
	}
}

func TestMaintenanceGate(t *testing.T) {
	tests := []struct {
		name       string
		repo       *fakeSystemRepo
		wantStatus int
		wantBody   string
	}{
		{
			name:       "enabled passes",
			repo:       &fakeSystemRepo{status: &entity.SystemStatus{Enabled: true}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "disabled returns reason",
			repo:       &fakeSystemRepo{status: &entity.SystemStatus{Enabled: false, Reason: "Down for settlement"}},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "Down for settlement",
		},
		{
			name:       "disabled without reason uses default",
			repo:       &fakeSystemRepo{status: &entity.SystemStatus{Enabled: false}},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "temporarily unavailable",
		},
		{
			name:       "lookup error fails open",
			repo:       &fakeSystemRepo{err: errors.New("db down")},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/ping", Maintenance(tt.repo), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := perform(router, http.MethodGet, "/ping", nil)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestIdempotencyRequired(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	vendorID := uuid.New()
	calls := 0

	router := gin.New()
	router.POST("/receipts", func(c *gin.Context) {
		c.Set("subject_id", vendorID)
	}, IdempotencyRequired(IdempotencyConfig{Repo: repo}), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"success": true, "call": calls})
	})

	if w := perform(router, http.MethodPost, "/receipts", nil); w.Code != http.StatusBadRequest {
		t.Errorf("missing key status = %d, want 400", w.Code)
	}

	headers := map[string]string{IdempotencyKeyHeader: "key-1"}
	first := perform(router, http.MethodPost, "/receipts", headers)
	if first.Code != http.StatusCreated {
		t.Fatalf("first status = %d, want 201", first.Code)
	}

	second := perform(router, http.MethodPost, "/receipts", headers)
	if second.Code != http.StatusCreated {
		t.Fatalf("replay status = %d, want 201", second.Code)
	}
	if second.Header().Get("X-Idempotency-Replayed") != "true" {
		t.Error("replay must set X-Idempotency-Replayed")
	}
	if calls != 1 {
		t.Errorf("handler calls = %d, want 1", calls)
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("replay body = %q, want %q", second.Body.String(), first.Body.String())
	}
}

func TestIdempotencyOptional(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	vendorID := uuid.New()
	calls := 0

	router := gin.New()
	router.POST("/customers", func(c *gin.Context) {
		c.Set("subject_id", vendorID)
	}, Idempotency(IdempotencyConfig{Repo: repo}), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})

	// Requests without a key pass through, nothing is cached
	for i := 0; i < 2; i++ {
		if w := perform(router, http.MethodPost, "/customers", nil); w.Code != http.StatusCreated {
			t.Fatalf("keyless status = %d, want 201", w.Code)
		}
	}
	if calls != 2 {
		t.Errorf("keyless handler calls = %d, want 2", calls)
	}

	// With a key the second submission replays the first response
	headers := map[string]string{IdempotencyKeyHeader: "key-2"}
	if w := perform(router, http.MethodPost, "/customers", headers); w.Code != http.StatusCreated {
		t.Fatalf("keyed status = %d, want 201", w.Code)
	}
	replay := perform(router, http.MethodPost, "/customers", headers)
	if replay.Header().Get("X-Idempotency-Replayed") != "true" {
		t.Error("replay must set X-Idempotency-Replayed")
	}
	if calls != 3 {
		t.Errorf("handler calls = %d, want 3", calls)
	}
}

func TestIdempotencyRequiredRejectsUnauthenticated(t *testing.T) {
	router := gin.New()
	router.POST("/receipts", IdempotencyRequired(IdempotencyConfig{Repo: newFakeIdempotencyRepo()}), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := perform(router, http.MethodPost, "/receipts", map[string]string{IdempotencyKeyHeader: "key-1"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
