package policy

import (
	"context"

	"github.com/scienceol/labprofile/pkg/common/code"
	"github.com/scienceol/labprofile/pkg/middleware/db"
	"github.com/scienceol/labprofile/pkg/repo"
	"github.com/scienceol/labprofile/pkg/repo/model"
)

type policyImpl struct {
	*db.Datastore
}

func New(ds *db.Datastore) repo.PermissionPolicyRepo {
	return &policyImpl{Datastore: ds}
}

func (p *policyImpl) CreatePermissionPolicy(ctx context.Context, data *model.PermissionPolicy) error {
	if err := p.DBWithContext(ctx).Create(data).Error; err != nil {
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (p *policyImpl) GetPermissionPolicies(ctx context.Context) ([]*model.PermissionPolicy, error) {
	datas := make([]*model.PermissionPolicy, 0)
	if err := p.DBWithContext(ctx).Order("id").Find(&datas).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return datas, nil
}
