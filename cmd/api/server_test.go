package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/scienceol/labprofile/pkg/common"
	"github.com/scienceol/labprofile/pkg/core/configure"
	"github.com/scienceol/labprofile/pkg/core/policy"
	"github.com/scienceol/labprofile/pkg/middleware/db/dbtest"
)

func ptr[T any](v T) *T {
	return &v
}

func newClient(t *testing.T) *resty.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(newEngine(context.Background(), dbtest.New(t)))
	t.Cleanup(srv.Close)
	return resty.New().SetBaseURL(srv.URL)
}

func TestServerConfigureFlow(t *testing.T) {
	client := newClient(t)

	created := &configure.ConfigureResp{}
	resp, err := client.R().
		SetBody(&configure.CreateConfigureReq{
			ValidityDays:   ptr(30),
			CreditLimit:    ptr("100"),
			HourLimit:      ptr(5),
			SnoozeLabStart: ptr("22:00"),
			SnoozeLabEnd:   ptr("06:00"),
		}).
		SetResult(created).
		Post("/create_configure/")
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	if resp.StatusCode() != http.StatusCreated || created.ID == 0 || created.ValidityDays != 30 {
		t.Fatalf("POST /create_configure/ = %d %s", resp.StatusCode(), resp.String())
	}

	var list []*configure.ConfigureResp
	resp, err = client.R().SetResult(&list).Get("/configures/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if resp.StatusCode() != http.StatusOK || len(list) != 1 || *list[0] != *created {
		t.Fatalf("GET /configures/ = %d %s", resp.StatusCode(), resp.String())
	}
}

func TestServerRejectsInvalidPolicy(t *testing.T) {
	client := newClient(t)

	failure := &common.Resp{}
	resp, err := client.R().
		SetBody(&policy.CreatePermissionPolicyReq{SkillTag: ptr("python")}).
		SetError(failure).
		Post("/create_permission_policy/")
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	if resp.StatusCode() != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode())
	}
	if failure.Msg == "" || failure.Detail == nil {
		t.Fatalf("error body = %+v", failure)
	}
}
