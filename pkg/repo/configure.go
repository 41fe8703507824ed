package repo

import (
	"context"

	"github.com/scienceol/labprofile/pkg/repo/model"
)

type ConfigureRepo interface {
	CreateConfigure(ctx context.Context, data *model.Configure) error
	GetConfigures(ctx context.Context) ([]*model.Configure, error)
}
