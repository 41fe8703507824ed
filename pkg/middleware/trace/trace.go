package trace

import (
	"context"
	"errors"
	"time"

	"github.com/scienceol/labprofile/pkg/middleware/logger"
	"go.opentelemetry.io/contrib/instrumentation/host"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type InitConfig struct {
	ServiceName    string
	Version        string
	TraceEndpoint  string
	MetricEndpoint string
	Insecure       bool
	// Stdout exports to stdout when no collector endpoint is set.
	Stdout bool
}

var shutdowns []func(context.Context) error

// InitTrace installs the global tracer and meter providers. With no endpoint
// and Stdout off the otel no-op providers stay in place.
func InitTrace(ctx context.Context, conf *InitConfig) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", conf.ServiceName),
			attribute.String("service.version", conf.Version),
		),
	)
	if err != nil {
		logger.Warnf(ctx, "init trace resource err: %+v", err)
		res = resource.Default()
	}

	spanExporter, err := newSpanExporter(ctx, conf)
	if err != nil {
		logger.Errorf(ctx, "init span exporter err: %+v", err)
	} else if spanExporter != nil {
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(spanExporter, sdktrace.WithBatchTimeout(5*time.Second)),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(tp)
		shutdowns = append(shutdowns, tp.Shutdown)
	}

	metricExporter, err := newMetricExporter(ctx, conf)
	if err != nil {
		logger.Errorf(ctx, "init metric exporter err: %+v", err)
		return
	}
	if metricExporter == nil {
		return
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(30*time.Second))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	shutdowns = append(shutdowns, mp.Shutdown)

	if err := host.Start(host.WithMeterProvider(mp)); err != nil {
		logger.Warnf(ctx, "start host metrics err: %+v", err)
	}
	if err := runtime.Start(runtime.WithMeterProvider(mp)); err != nil {
		logger.Warnf(ctx, "start runtime metrics err: %+v", err)
	}
}

func newSpanExporter(ctx context.Context, conf *InitConfig) (sdktrace.SpanExporter, error) {
	if conf.TraceEndpoint != "" {
		opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(conf.TraceEndpoint)}
		if conf.Insecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		}
		return otlptrace.New(ctx, otlptracegrpc.NewClient(opts...))
	}
	if conf.Stdout {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	return nil, nil
}

func newMetricExporter(ctx context.Context, conf *InitConfig) (sdkmetric.Exporter, error) {
	if conf.MetricEndpoint != "" {
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(conf.MetricEndpoint)}
		if conf.Insecure {
			opts = append(opts, otlpmetricgrpc.WithInsecure())
		}
		return otlpmetricgrpc.New(ctx, opts...)
	}
	if conf.Stdout {
		return stdoutmetric.New()
	}
	return nil, nil
}

// CloseTrace flushes and stops every provider installed by InitTrace.
func CloseTrace() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var errs []error
	for i := len(shutdowns) - 1; i >= 0; i-- {
		errs = append(errs, shutdowns[i](ctx))
	}
	shutdowns = nil
	if err := errors.Join(errs...); err != nil {
		logger.Errorf(ctx, "close trace err: %+v", err)
	}
}
