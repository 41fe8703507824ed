package configure

import (
	"context"

	"github.com/scienceol/labprofile/pkg/common/code"
	"github.com/scienceol/labprofile/pkg/middleware/db"
	"github.com/scienceol/labprofile/pkg/repo"
	"github.com/scienceol/labprofile/pkg/repo/model"
)

type configureImpl struct {
	*db.Datastore
}

func New(ds *db.Datastore) repo.ConfigureRepo {
	return &configureImpl{Datastore: ds}
}

func (c *configureImpl) CreateConfigure(ctx context.Context, data *model.Configure) error {
	if err := c.DBWithContext(ctx).Create(data).Error; err != nil {
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (c *configureImpl) GetConfigures(ctx context.Context) ([]*model.Configure, error) {
	datas := make([]*model.Configure, 0)
	if err := c.DBWithContext(ctx).Order("id").Find(&datas).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return datas, nil
}
