package policy

import "context"

type Service interface {
	CreatePermissionPolicy(ctx context.Context, req *CreatePermissionPolicyReq) (*PermissionPolicyResp, error)
	PermissionPolicies(ctx context.Context) ([]*PermissionPolicyResp, error)
}
