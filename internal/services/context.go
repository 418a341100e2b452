package services

import "context"

type contextKey string

const (
	seriesKey    contextKey = "series"
	seasonKey    contextKey = "season_number"
	requestIDKey contextKey = "request_id"
)

// WithSeries annotates context with the series name currently being
// analyzed.
func WithSeries(ctx context.Context, series string) context.Context {
	if series == "" {
		return ctx
	}
	return context.WithValue(ctx, seriesKey, series)
}

// SeriesFromContext returns the series name if present.
func SeriesFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(seriesKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithSeasonNumber annotates context with the season number currently
// being analyzed.
func WithSeasonNumber(ctx context.Context, number int) context.Context {
	return context.WithValue(ctx, seasonKey, number)
}

// SeasonNumberFromContext returns the season number if present.
func SeasonNumberFromContext(ctx context.Context) (int, bool) {
	v := ctx.Value(seasonKey)
	if v == nil {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

// WithRequestID annotates context with a correlation identifier for one
// scan run.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
