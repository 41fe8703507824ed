package repo

import (
	"context"

	"github.com/scienceol/labprofile/pkg/repo/model"
)

type PermissionPolicyRepo interface {
	CreatePermissionPolicy(ctx context.Context, data *model.PermissionPolicy) error
	GetPermissionPolicies(ctx context.Context) ([]*model.PermissionPolicy, error)
}
