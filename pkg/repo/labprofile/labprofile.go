package labprofile

import (
	"context"

	"github.com/scienceol/labprofile/pkg/common/code"
	"github.com/scienceol/labprofile/pkg/middleware/db"
	"github.com/scienceol/labprofile/pkg/repo"
	"github.com/scienceol/labprofile/pkg/repo/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type labProfileImpl struct {
	*db.Datastore
}

func New(ds *db.Datastore) repo.LabProfileRepo {
	return &labProfileImpl{Datastore: ds}
}

// CreateLabProfile inserts the parent row only; children go through their own calls.
func (l *labProfileImpl) CreateLabProfile(ctx context.Context, data *model.LabProfile) error {
	if err := l.DBWithContext(ctx).Omit(clause.Associations).Create(data).Error; err != nil {
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (l *labProfileImpl) CreateLearningObjectives(ctx context.Context, datas []*model.LearningObjective) error {
	if len(datas) == 0 {
		return nil
	}
	if err := l.DBWithContext(ctx).Create(&datas).Error; err != nil {
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (l *labProfileImpl) CreateLearningOutcomes(ctx context.Context, datas []*model.LearningOutcome) error {
	if len(datas) == 0 {
		return nil
	}
	if err := l.DBWithContext(ctx).Create(&datas).Error; err != nil {
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (l *labProfileImpl) GetLabProfiles(ctx context.Context) ([]*model.LabProfile, error) {
	datas := make([]*model.LabProfile, 0)
	if err := l.DBWithContext(ctx).
		Preload("LearningObjectives", orderByID).
		Preload("LearningOutcomes", orderByID).
		Order("id").
		Find(&datas).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return datas, nil
}

func orderByID(d *gorm.DB) *gorm.DB {
	return d.Order("id")
}
