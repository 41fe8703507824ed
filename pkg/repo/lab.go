package repo

import (
	"context"

	"github.com/scienceol/labprofile/pkg/repo/model"
)

type LabProfileRepo interface {
	Transactor
	CreateLabProfile(ctx context.Context, data *model.LabProfile) error
	CreateLearningObjectives(ctx context.Context, datas []*model.LearningObjective) error
	CreateLearningOutcomes(ctx context.Context, datas []*model.LearningOutcome) error
	GetLabProfiles(ctx context.Context) ([]*model.LabProfile, error)
}
