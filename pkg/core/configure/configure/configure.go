package configure

import (
	"context"

	"github.com/scienceol/labprofile/pkg/core/configure"
	"github.com/scienceol/labprofile/pkg/repo"
	"github.com/scienceol/labprofile/pkg/repo/model"
	"github.com/scienceol/labprofile/pkg/utils"
)

type configureImpl struct {
	configureStore repo.ConfigureRepo
}

func New(configureStore repo.ConfigureRepo) configure.Service {
	return &configureImpl{configureStore: configureStore}
}

func (c *configureImpl) CreateConfigure(ctx context.Context, req *configure.CreateConfigureReq) (*configure.ConfigureResp, error) {
	data := req.ToModel()
	if err := c.configureStore.CreateConfigure(ctx, data); err != nil {
		return nil, err
	}
	return configure.NewConfigureResp(data), nil
}

func (c *configureImpl) Configures(ctx context.Context) ([]*configure.ConfigureResp, error) {
	datas, err := c.configureStore.GetConfigures(ctx)
	if err != nil {
		return nil, err
	}
	return utils.FilterSlice(datas, func(d *model.Configure) (*configure.ConfigureResp, bool) {
		return configure.NewConfigureResp(d), true
	}), nil
}
