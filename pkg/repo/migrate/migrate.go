package migrate

import (
	"context"

	"github.com/scienceol/labprofile/pkg/middleware/db"
	"github.com/scienceol/labprofile/pkg/middleware/logger"
	"github.com/scienceol/labprofile/pkg/repo/model"
)

// Table creates missing tables, columns, indexes and constraints.
// Parents are listed before the children holding their foreign keys.
func Table(ctx context.Context, ds *db.Datastore) error {
	d := ds.DBWithContext(ctx)
	models := []any{
		&model.LabProfile{},
		&model.LearningObjective{},
		&model.LearningOutcome{},
		&model.Configure{},
		&model.PermissionPolicy{},
	}
	for _, m := range models {
		if err := d.AutoMigrate(m); err != nil {
			logger.Errorf(ctx, "migrate table err: %+v", err)
			return err
		}
	}
	return nil
}
