package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"takecost/internal/config"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t, defaultTestConfig())

	token := env.loginAs(t, "manager", "password")
	if token == "" {
		t.Fatal("empty token")
	}

	assertErrorCode(t,
		env.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"username":"manager","password":"nope"}`),
		http.StatusUnauthorized, "INVALID_CREDENTIALS")
	assertErrorCode(t,
		env.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"username":"ghost","password":"password"}`),
		http.StatusUnauthorized, "INVALID_CREDENTIALS")
	assertErrorCode(t,
		env.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"username":"manager"}`),
		http.StatusBadRequest, "INVALID_REQUEST")
}

func TestLoginRateLimit(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.LoginRateLimitAttempts = 2
	env := newTestEnv(t, cfg)

	body := `{"username":"manager","password":"wrong"}`
	for i := 0; i < 2; i++ {
		assertErrorCode(t, env.do(t, http.MethodPost, "/api/v1/auth/login", "", body),
			http.StatusUnauthorized, "INVALID_CREDENTIALS")
	}
	// The window counts attempts, not failures, so even correct
	// credentials are throttled now.
	w := env.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"username":"manager","password":"password"}`)
	assertErrorCode(t, w, http.StatusTooManyRequests, "RATE_LIMITED")

	// A different username is an independent key.
	env.loginAs(t, "admin", "password")

	// The same user can log in again once the window rolls over.
	env.advance(61 * time.Second)
	env.loginAs(t, "manager", "password")
}

func TestProjectCRUD(t *testing.T) {
	env := newTestEnv(t, defaultTestConfig())
	token := env.loginAs(t, "manager", "password")

	body := `{"name":"Riverside Bridge","description":"two-lane bridge","location":"Riverside",` +
		`"startDate":"2026-09-01","endDate":"2027-06-30","status":"PLANNED"}`
	w := env.do(t, http.MethodPost, "/api/v1/projects", token, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d, body %s", w.Code, w.Body.String())
	}
	var created projectResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == 0 || created.Name != "Riverside Bridge" || created.StartDate != "2026-09-01" {
		t.Errorf("created = %+v", created)
	}

	assertErrorCode(t, env.do(t, http.MethodPost, "/api/v1/projects", token, body),
		http.StatusConflict, "DUPLICATE_NAME")

	w = env.do(t, http.MethodGet, "/api/v1/projects/1", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: status %d", w.Code)
	}

	update := `{"name":"Riverside Bridge","description":"two-lane bridge","location":"Riverside",` +
		`"startDate":"2026-09-01","endDate":"2027-08-31","status":"IN_PROGRESS"}`
	w = env.do(t, http.MethodPut, "/api/v1/projects/1", token, update)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d, body %s", w.Code, w.Body.String())
	}
	var updated projectResponse
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Status != "IN_PROGRESS" || updated.EndDate != "2027-08-31" {
		t.Errorf("updated = %+v", updated)
	}

	if w := env.do(t, http.MethodDelete, "/api/v1/projects/1", token, ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", w.Code)
	}
	assertErrorCode(t, env.do(t, http.MethodGet, "/api/v1/projects/1", token, ""),
		http.StatusNotFound, "NOT_FOUND")
}

func TestProjectValidation(t *testing.T) {
	env := newTestEnv(t, defaultTestConfig())
	token := env.loginAs(t, "manager", "password")

	cases := map[string]string{
		"missing name": `{"startDate":"2026-09-01","endDate":"2027-06-30","status":"PLANNED"}`,
		"bad date":     `{"name":"X","startDate":"September 1st","endDate":"2027-06-30","status":"PLANNED"}`,
		"bad status":   `{"name":"X","startDate":"2026-09-01","endDate":"2027-06-30","status":"DONE"}`,
		"not json":     `"name"`,
	}
	for name, body := range cases {
		w := env.do(t, http.MethodPost, "/api/v1/projects", token, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", name, w.Code)
		}
	}

	assertErrorCode(t, env.do(t, http.MethodGet, "/api/v1/projects/abc", token, ""),
		http.StatusBadRequest, "INVALID_ID")
	assertErrorCode(t, env.do(t, http.MethodGet, "/api/v1/projects/999", token, ""),
		http.StatusNotFound, "NOT_FOUND")
}

func TestProjectListAndSummary(t *testing.T) {
	env := newTestEnv(t, defaultTestConfig())
	token := env.loginAs(t, "member", "password")

	for _, name := range []string{"Alpha", "Beta"} {
		body := `{"name":"` + name + `","startDate":"2026-09-01","endDate":"2027-06-30","status":"PLANNED"}`
		if w := env.do(t, http.MethodPost, "/api/v1/projects", token, body); w.Code != http.StatusCreated {
			t.Fatalf("create %s: status %d", name, w.Code)
		}
	}

	w := env.do(t, http.MethodGet, "/api/v1/projects?page=0&size=10", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var page struct {
		Content       []projectResponse `json:"content"`
		TotalElements int64             `json:"totalElements"`
		TotalPages    int               `json:"totalPages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.TotalElements != 2 || len(page.Content) != 2 || page.TotalPages != 1 {
		t.Errorf("page = %+v", page)
	}

	w = env.do(t, http.MethodGet, "/api/v1/projects/summary", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("summary: status %d", w.Code)
	}
	var sum summaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.ProjectCount != 2 {
		t.Errorf("projectCount = %d, want 2", sum.ProjectCount)
	}
}

func TestRunRefusesToStartWithBadSecret(t *testing.T) {
	cfg := config.Config{HTTPAddr: ":0", JWTTokenValidityMS: 3_600_000}

	srv := NewServer(cfg, nil)
	if err := srv.Run(); err == nil {
		t.Fatal("expected startup failure with missing JWT secret")
	}

	cfg.JWTSecret = "%%%not-base64%%%"
	srv = NewServer(cfg, nil)
	if err := srv.Run(); err == nil {
		t.Fatal("expected startup failure with undecodable JWT secret")
	}
}
