package policy

import (
	"context"

	"github.com/scienceol/labprofile/pkg/core/policy"
	"github.com/scienceol/labprofile/pkg/repo"
	"github.com/scienceol/labprofile/pkg/repo/model"
	"github.com/scienceol/labprofile/pkg/utils"
)

type policyImpl struct {
	policyStore repo.PermissionPolicyRepo
}

func New(policyStore repo.PermissionPolicyRepo) policy.Service {
	return &policyImpl{policyStore: policyStore}
}

func (p *policyImpl) CreatePermissionPolicy(ctx context.Context, req *policy.CreatePermissionPolicyReq) (*policy.PermissionPolicyResp, error) {
	data := req.ToModel()
	if err := p.policyStore.CreatePermissionPolicy(ctx, data); err != nil {
		return nil, err
	}
	return policy.NewPermissionPolicyResp(data), nil
}

func (p *policyImpl) PermissionPolicies(ctx context.Context) ([]*policy.PermissionPolicyResp, error) {
	datas, err := p.policyStore.GetPermissionPolicies(ctx)
	if err != nil {
		return nil, err
	}
	return utils.FilterSlice(datas, func(d *model.PermissionPolicy) (*policy.PermissionPolicyResp, bool) {
		return policy.NewPermissionPolicyResp(d), true
	}), nil
}
