package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/scienceol/labprofile/pkg/middleware/db"
	"github.com/scienceol/labprofile/pkg/middleware/db/dbtest"
	"github.com/scienceol/labprofile/pkg/web"
)

type errResp struct {
	Code   int    `json:"code"`
	Msg    string `json:"msg"`
	Detail []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"detail"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *db.Datastore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ds := dbtest.New(t)
	r := gin.New()
	web.NewRouter(context.Background(), r, ds)
	return r, ds
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

const labProfileBody = `{
	"title": "Python Basics",
	"category": "python",
	"descriptive_title": "Learn the basics of Python",
	"course_level": "Beginner",
	"lab_type": "Type 1",
	"learning_objectives": [{"header": "Variables", "content": "Assign values"}],
	"learning_outcomes": [
		{"header": "Write scripts", "content": "Small programs"},
		{"header": "Debug", "content": "Read tracebacks"}
	]
}`

func TestRoot(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET / = %d", w.Code)
	}
	var body map[string]string
	decode(t, w, &body)
	if !strings.Contains(body["message"], "Welcome to root page") {
		t.Fatalf("message = %q", body["message"])
	}
}

func TestCreateLabProfile(t *testing.T) {
	r, ds := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/create_lab_profile/", labProfileBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /create_lab_profile/ = %d %s", w.Code, w.Body.String())
	}
	var created struct {
		ID                 int64   `json:"id"`
		Category           string  `json:"category"`
		LabType            string  `json:"lab_type"`
		AdditionalImage    *string `json:"additional_image"`
		LearningObjectives []struct {
			ID           int64 `json:"id"`
			LabProfileID int64 `json:"lab_profile_id"`
		} `json:"learning_objectives"`
		LearningOutcomes []struct {
			ID           int64 `json:"id"`
			LabProfileID int64 `json:"lab_profile_id"`
		} `json:"learning_outcomes"`
	}
	decode(t, w, &created)
	if created.ID == 0 || created.Category != "python" || created.LabType != "Type 1" || created.AdditionalImage != nil {
		t.Fatalf("created = %+v", created)
	}
	if len(created.LearningObjectives) != 1 || len(created.LearningOutcomes) != 2 {
		t.Fatalf("children = %+v", created)
	}
	if created.LearningOutcomes[1].LabProfileID != created.ID {
		t.Fatalf("outcome not linked: %+v", created.LearningOutcomes[1])
	}
	if n := dbtest.Count(t, ds, "learning_outcomes"); n != 2 {
		t.Fatalf("learning_outcomes rows = %d", n)
	}

	w = do(t, r, http.MethodGet, "/lab_profiles/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /lab_profiles/ = %d", w.Code)
	}
	var list []map[string]any
	decode(t, w, &list)
	if len(list) != 1 || list[0]["title"] != "Python Basics" {
		t.Fatalf("list = %+v", list)
	}
	if outcomes, _ := list[0]["learning_outcomes"].([]any); len(outcomes) != 2 {
		t.Fatalf("listed outcomes = %+v", list[0]["learning_outcomes"])
	}
}

func TestCreateLabProfileInvalidCategory(t *testing.T) {
	r, ds := newTestRouter(t)

	body := strings.Replace(labProfileBody, `"category": "python"`, `"category": "java"`, 1)
	w := do(t, r, http.MethodPost, "/create_lab_profile/", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	var resp errResp
	decode(t, w, &resp)
	if len(resp.Detail) != 1 || resp.Detail[0].Field != "category" {
		t.Fatalf("detail = %+v", resp.Detail)
	}
	for _, want := range []string{`"java"`, "python", "c++", "cloud"} {
		if !strings.Contains(resp.Msg, want) {
			t.Errorf("msg %q missing %s", resp.Msg, want)
		}
	}
	for _, table := range []string{"lab_profiles", "learning_objectives", "learning_outcomes"} {
		if n := dbtest.Count(t, ds, table); n != 0 {
			t.Errorf("%s rows = %d, want 0", table, n)
		}
	}
}

func TestCreateLabProfileMissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/create_lab_profile/", `{"title": "t", "learning_objectives": [{"header": "h"}]}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	var resp errResp
	decode(t, w, &resp)
	fields := map[string]bool{}
	for _, d := range resp.Detail {
		fields[d.Field] = true
	}
	for _, want := range []string{"category", "descriptive_title", "course_level", "lab_type", "learning_outcomes", "learning_objectives[0].content"} {
		if !fields[want] {
			t.Errorf("field %s not reported: %+v", want, resp.Detail)
		}
	}
}

func TestCreateLabProfileStorageFailure(t *testing.T) {
	r, ds := newTestRouter(t)
	dbtest.FailInserts(t, ds, "learning_outcomes", errors.New("secret table layout"))

	w := do(t, r, http.MethodPost, "/create_lab_profile/", labProfileBody)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "secret") {
		t.Fatalf("storage error leaked: %s", w.Body.String())
	}
	var resp errResp
	decode(t, w, &resp)
	if resp.Msg != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("msg = %q", resp.Msg)
	}
	if n := dbtest.Count(t, ds, "lab_profiles"); n != 0 {
		t.Fatalf("lab_profiles rows = %d after failed create", n)
	}
}

func TestConfigure(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{"validity_days": 30, "credit_limit": "100", "hour_limit": 5, "snooze_lab_start": "22:00", "snooze_lab_end": "06:00"}`
	w := do(t, r, http.MethodPost, "/create_configure/", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /create_configure/ = %d %s", w.Code, w.Body.String())
	}
	var created map[string]any
	decode(t, w, &created)
	if created["id"] == nil || created["validity_days"] != float64(30) || created["snooze_lab_end"] != "06:00" {
		t.Fatalf("created = %+v", created)
	}

	w = do(t, r, http.MethodGet, "/configures/", "")
	var list []map[string]any
	decode(t, w, &list)
	if w.Code != http.StatusOK || len(list) != 1 || list[0]["id"] != created["id"] {
		t.Fatalf("GET /configures/ = %d %+v", w.Code, list)
	}
}

func TestConfigureValidation(t *testing.T) {
	r, ds := newTestRouter(t)

	cases := map[string]struct {
		body  string
		field string
		msg   string
	}{
		"zero validity": {
			body:  `{"validity_days": 0, "credit_limit": "100", "hour_limit": 5, "snooze_lab_start": "22:00", "snooze_lab_end": "06:00"}`,
			field: "validity_days",
			msg:   "validity_days must be greater than 0",
		},
		"negative hours": {
			body:  `{"validity_days": 1, "credit_limit": "100", "hour_limit": -1, "snooze_lab_start": "22:00", "snooze_lab_end": "06:00"}`,
			field: "hour_limit",
			msg:   "hour_limit must be 0 or greater",
		},
		"string days": {
			body:  `{"validity_days": "30", "credit_limit": "100", "hour_limit": 5, "snooze_lab_start": "22:00", "snooze_lab_end": "06:00"}`,
			field: "validity_days",
			msg:   "validity_days must be of type integer, got string",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/create_configure/", tc.body)
			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422", w.Code)
			}
			var resp errResp
			decode(t, w, &resp)
			if len(resp.Detail) == 0 || resp.Detail[0].Field != tc.field || !strings.Contains(resp.Msg, tc.msg) {
				t.Fatalf("resp = %+v", resp)
			}
		})
	}
	if n := dbtest.Count(t, ds, "configures"); n != 0 {
		t.Fatalf("configures rows = %d, want 0", n)
	}
}

func TestPermissionPolicy(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/create_permission_policy/", `{"skill_tag": "python", "permission_policy": "read-only", "allow_programmatic_signup": false}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /create_permission_policy/ = %d %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPost, "/create_permission_policy/", `{"skill_tag": "python", "permission_policy": "read-only"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("missing bool: status = %d, want 422", w.Code)
	}

	w = do(t, r, http.MethodGet, "/permission_policies/", "")
	var list []map[string]any
	decode(t, w, &list)
	if len(list) != 1 || list[0]["allow_programmatic_signup"] != false {
		t.Fatalf("list = %+v", list)
	}
}

func TestEmptyListsAreArrays(t *testing.T) {
	r, _ := newTestRouter(t)
	for _, path := range []string{"/lab_profiles/", "/configures/", "/permission_policies/"} {
		w := do(t, r, http.MethodGet, path, "")
		if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
			t.Errorf("GET %s = %d %q", path, w.Code, w.Body.String())
		}
	}
}

func TestConfigureReportsEveryViolation(t *testing.T) {
	r, ds := newTestRouter(t)

	body := `{"validity_days": "30", "credit_limit": "100", "hour_limit": -1, "snooze_lab_start": "22:00"}`
	w := do(t, r, http.MethodPost, "/create_configure/", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	var resp errResp
	decode(t, w, &resp)
	fields := map[string]string{}
	for _, d := range resp.Detail {
		fields[d.Field] = d.Message
	}
	want := map[string]string{
		"validity_days":  "validity_days must be of type integer, got string",
		"hour_limit":     "hour_limit must be 0 or greater",
		"snooze_lab_end": "snooze_lab_end is required",
	}
	for field, msg := range want {
		if fields[field] != msg {
			t.Errorf("%s = %q, want %q", field, fields[field], msg)
		}
	}
	if len(fields) != len(want) {
		t.Errorf("detail = %+v", resp.Detail)
	}
	if n := dbtest.Count(t, ds, "configures"); n != 0 {
		t.Fatalf("configures rows = %d, want 0", n)
	}
}

func TestCreateLabProfileTypeAndEnumErrors(t *testing.T) {
	r, _ := newTestRouter(t)

	body := strings.Replace(labProfileBody, `"title": "Python Basics"`, `"title": 7`, 1)
	body = strings.Replace(body, `"category": "python"`, `"category": "java"`, 1)
	body = strings.Replace(body, `{"header": "Debug", "content": "Read tracebacks"}`, `{"header": 1, "content": "Read tracebacks"}`, 1)
	w := do(t, r, http.MethodPost, "/create_lab_profile/", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	var resp errResp
	decode(t, w, &resp)
	fields := map[string]bool{}
	for _, d := range resp.Detail {
		fields[d.Field] = true
	}
	for _, want := range []string{"title", "category", "learning_outcomes[1].header"} {
		if !fields[want] {
			t.Errorf("field %s not reported: %+v", want, resp.Detail)
		}
	}
}

func TestListStorageFailure(t *testing.T) {
	r, ds := newTestRouter(t)
	ds.Close(context.Background())

	for _, path := range []string{"/lab_profiles/", "/configures/", "/permission_policies/"} {
		w := do(t, r, http.MethodGet, path, "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("GET %s = %d, want 500", path, w.Code)
		}
		var body map[string]any
		decode(t, w, &body)
		if body["msg"] != http.StatusText(http.StatusInternalServerError) {
			t.Errorf("GET %s msg = %v", path, body["msg"])
		}
		if _, ok := body["detail"]; ok {
			t.Errorf("GET %s leaked detail: %v", path, body["detail"])
		}
	}
}

func TestListsAreIdempotent(t *testing.T) {
	r, _ := newTestRouter(t)

	creates := map[string]string{
		"/create_lab_profile/":       labProfileBody,
		"/create_configure/":         `{"validity_days": 30, "credit_limit": "100", "hour_limit": 5, "snooze_lab_start": "22:00", "snooze_lab_end": "06:00"}`,
		"/create_permission_policy/": `{"skill_tag": "python", "permission_policy": "read-only", "allow_programmatic_signup": true}`,
	}
	for path, body := range creates {
		if w := do(t, r, http.MethodPost, path, body); w.Code != http.StatusCreated {
			t.Fatalf("POST %s = %d %s", path, w.Code, w.Body.String())
		}
	}

	for _, path := range []string{"/lab_profiles/", "/configures/", "/permission_policies/"} {
		first := do(t, r, http.MethodGet, path, "")
		second := do(t, r, http.MethodGet, path, "")
		if first.Code != http.StatusOK || second.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, %d", path, first.Code, second.Code)
		}
		if first.Body.String() != second.Body.String() {
			t.Errorf("GET %s changed between calls:\n%s\n%s", path, first.Body.String(), second.Body.String())
		}
	}
}

func TestHealth(t *testing.T) {
	r, ds := newTestRouter(t)

	for _, path := range []string{"/api/health", "/api/health/live", "/api/health/ready"} {
		if w := do(t, r, http.MethodGet, path, ""); w.Code != http.StatusOK {
			t.Errorf("GET %s = %d", path, w.Code)
		}
	}

	ds.Close(context.Background())
	w := do(t, r, http.MethodGet, "/api/health/ready", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("ready after close = %d, want 503", w.Code)
	}
}

func TestSwaggerDocs(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/docs/index.html", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /docs/index.html = %d", w.Code)
	}
}
