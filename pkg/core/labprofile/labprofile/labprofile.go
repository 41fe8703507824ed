package labprofile

import (
	"context"

	"github.com/scienceol/labprofile/pkg/core/labprofile"
	"github.com/scienceol/labprofile/pkg/repo"
	"github.com/scienceol/labprofile/pkg/repo/model"
	"github.com/scienceol/labprofile/pkg/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentation = "github.com/scienceol/labprofile/pkg/core/labprofile"

type labProfileImpl struct {
	labStore repo.LabProfileRepo
	tracer   trace.Tracer
	created  metric.Int64Counter
}

func New(labStore repo.LabProfileRepo) labprofile.Service {
	created, _ := otel.Meter(instrumentation).Int64Counter("labprofile.created",
		metric.WithDescription("lab profiles committed together with their learning items"))
	return &labProfileImpl{
		labStore: labStore,
		tracer:   otel.Tracer(instrumentation),
		created:  created,
	}
}

// CreateLabProfile writes the profile and all of its objectives and outcomes in one
// transaction, so a failed child insert leaves no trace of the profile.
func (l *labProfileImpl) CreateLabProfile(ctx context.Context, req *labprofile.CreateLabProfileReq) (*labprofile.LabProfileResp, error) {
	ctx, span := l.tracer.Start(ctx, "CreateLabProfile", trace.WithAttributes(
		attribute.Int("labprofile.learning_objectives", len(req.LearningObjectives)),
		attribute.Int("labprofile.learning_outcomes", len(req.LearningOutcomes)),
	))
	defer span.End()

	data := req.ToModel()
	err := l.labStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := l.labStore.CreateLabProfile(txCtx, data); err != nil {
			return err
		}

		data.LearningObjectives = req.Objectives(data.ID)
		if err := l.labStore.CreateLearningObjectives(txCtx, data.LearningObjectives); err != nil {
			return err
		}

		data.LearningOutcomes = req.Outcomes(data.ID)
		return l.labStore.CreateLearningOutcomes(txCtx, data.LearningOutcomes)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "create lab profile failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int64("labprofile.id", data.ID))
	if l.created != nil {
		l.created.Add(ctx, 1, metric.WithAttributes(attribute.String("category", string(data.Category))))
	}
	return labprofile.NewLabProfileResp(data), nil
}

func (l *labProfileImpl) LabProfiles(ctx context.Context) ([]*labprofile.LabProfileResp, error) {
	datas, err := l.labStore.GetLabProfiles(ctx)
	if err != nil {
		return nil, err
	}

	return utils.FilterSlice(datas, func(d *model.LabProfile) (*labprofile.LabProfileResp, bool) {
		return labprofile.NewLabProfileResp(d), true
	}), nil
}
