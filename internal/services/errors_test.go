package services_test

import (
	"errors"
	"strings"
	"testing"

	"introscan/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalTool, "silence", "detect", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"silence", "detect", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestClassifyMapping(t *testing.T) {
	configErr := services.Wrap(services.ErrConfiguration, "config", "load", "missing field", nil)
	if outcome := services.Classify(configErr); outcome != services.OutcomeFatal {
		t.Fatalf("expected fatal for configuration error, got %s", outcome)
	}

	notFoundErr := services.Wrap(services.ErrNotFound, "fingerprint", "decode", "no audio track", nil)
	if outcome := services.Classify(notFoundErr); outcome != services.OutcomeEpisodeSkipped {
		t.Fatalf("expected episode_skipped for not-found error, got %s", outcome)
	}

	transientErr := services.Wrap(services.ErrTransient, "matcher", "compare", "panic recovered", errors.New("boom"))
	if outcome := services.Classify(transientErr); outcome != services.OutcomeSeasonAbandoned {
		t.Fatalf("expected season_abandoned for transient error, got %s", outcome)
	}
}
