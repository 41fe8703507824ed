package trace

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
)

func TestInitTraceStdout(t *testing.T) {
	InitTrace(context.Background(), &InitConfig{ServiceName: "labprofile-test", Version: "test", Stdout: true})
	if len(shutdowns) != 2 {
		t.Fatalf("installed providers = %d, want 2", len(shutdowns))
	}

	_, span := otel.Tracer("test").Start(context.Background(), "span")
	if !span.SpanContext().IsValid() {
		t.Fatalf("span from installed provider has no valid context")
	}
	span.End()

	CloseTrace()
	if len(shutdowns) != 0 {
		t.Fatalf("CloseTrace left %d providers", len(shutdowns))
	}
}

func TestInitTraceDisabled(t *testing.T) {
	InitTrace(context.Background(), &InitConfig{ServiceName: "labprofile-test"})
	if len(shutdowns) != 0 {
		t.Fatalf("installed providers = %d, want 0", len(shutdowns))
	}
}
