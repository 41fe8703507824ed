package policy_test

import (
	"context"
	"testing"

	"github.com/scienceol/labprofile/pkg/core/policy"
	impl "github.com/scienceol/labprofile/pkg/core/policy/policy"
	"github.com/scienceol/labprofile/pkg/middleware/db/dbtest"
	pStore "github.com/scienceol/labprofile/pkg/repo/policy"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCreatePermissionPolicyAndList(t *testing.T) {
	ds := dbtest.New(t)
	svc := impl.New(pStore.New(ds))
	ctx := context.Background()

	resp, err := svc.CreatePermissionPolicy(ctx, &policy.CreatePermissionPolicyReq{
		SkillTag:                ptr("python"),
		PermissionPolicy:        ptr("read-only"),
		AllowProgrammaticSignup: ptr(true),
	})
	if err != nil {
		t.Fatalf("CreatePermissionPolicy: %v", err)
	}
	if resp.ID == 0 || !resp.AllowProgrammaticSignup {
		t.Fatalf("CreatePermissionPolicy = %+v", resp)
	}

	got, err := svc.PermissionPolicies(ctx)
	if err != nil {
		t.Fatalf("PermissionPolicies: %v", err)
	}
	if len(got) != 1 || *got[0] != *resp {
		t.Fatalf("PermissionPolicies = %+v, want [%+v]", got, resp)
	}
}
