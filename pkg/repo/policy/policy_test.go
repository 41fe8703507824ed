package policy_test

import (
	"context"
	"testing"

	"github.com/scienceol/labprofile/pkg/middleware/db/dbtest"
	"github.com/scienceol/labprofile/pkg/repo/model"
	"github.com/scienceol/labprofile/pkg/repo/policy"
)

func TestCreateAndGetPermissionPolicies(t *testing.T) {
	ds := dbtest.New(t)
	store := policy.New(ds)
	ctx := context.Background()

	data := &model.PermissionPolicy{SkillTag: "python", PermissionPolicy: "read-only", AllowProgrammaticSignup: false}
	if err := store.CreatePermissionPolicy(ctx, data); err != nil {
		t.Fatalf("CreatePermissionPolicy: %v", err)
	}
	if data.ID == 0 {
		t.Fatalf("CreatePermissionPolicy: id not assigned")
	}

	for i := 0; i < 2; i++ {
		got, err := store.GetPermissionPolicies(ctx)
		if err != nil {
			t.Fatalf("GetPermissionPolicies: %v", err)
		}
		if len(got) != 1 || got[0].ID != data.ID || got[0].SkillTag != "python" || got[0].AllowProgrammaticSignup {
			t.Fatalf("GetPermissionPolicies = %+v", got)
		}
	}
}
