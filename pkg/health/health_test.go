package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRunAggregatesWorstStatus(t *testing.T) {
	checker := NewChecker()
	checker.Register("up", func(ctx context.Context) ComponentHealth {
		return ComponentHealth{Status: StatusUp}
	})

	if report := checker.Run(context.Background()); report.Status != StatusUp {
		t.Errorf("all-up report status = %q", report.Status)
	}

	checker.Register("degraded", func(ctx context.Context) ComponentHealth {
		return ComponentHealth{Status: StatusDegraded, Message: "cache offline"}
	})
	if report := checker.Run(context.Background()); report.Status != StatusDegraded {
		t.Errorf("degraded report status = %q", report.Status)
	}

	checker.Register("down", func(ctx context.Context) ComponentHealth {
		return ComponentHealth{Status: StatusDown}
	})
	if report := checker.Run(context.Background()); report.Status != StatusDown {
		t.Errorf("down report status = %q", report.Status)
	}
}

func TestReadyHandlerStatusCodes(t *testing.T) {
	checker := NewChecker()
	checker.Register("ok", func(ctx context.Context) ComponentHealth {
		return ComponentHealth{Status: StatusUp}
	})
	rec := httptest.NewRecorder()
	checker.ReadyHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("ready status = %d, want 200", rec.Code)
	}

	checker.Register("bad", func(ctx context.Context) ComponentHealth {
		return ComponentHealth{Status: StatusDown}
	})
	rec = httptest.NewRecorder()
	checker.ReadyHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("ready status = %d, want 503", rec.Code)
	}
}
