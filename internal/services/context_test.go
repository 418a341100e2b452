package services_test

import (
	"context"
	"testing"

	"introscan/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithSeries(ctx, "Example Show")
	ctx = services.WithSeasonNumber(ctx, 2)
	ctx = services.WithRequestID(ctx, "req-123")

	if series, ok := services.SeriesFromContext(ctx); !ok || series != "Example Show" {
		t.Fatalf("unexpected series: %v %v", series, ok)
	}
	if number, ok := services.SeasonNumberFromContext(ctx); !ok || number != 2 {
		t.Fatalf("unexpected season number: %v %v", number, ok)
	}
	if rid, ok := services.RequestIDFromContext(ctx); !ok || rid != "req-123" {
		t.Fatalf("unexpected request id: %v %v", rid, ok)
	}
}

func TestSeriesBlankPreservesContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithSeries(ctx, "")
	if _, ok := services.SeriesFromContext(ctx); ok {
		t.Fatal("expected no series value")
	}
}
