package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveUpstream(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("test", "op", "error"))
	ObserveUpstream("test", "op", time.Now(), errors.New("boom"))
	after := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("test", "op", "error"))
	if after != before+1 {
		t.Fatalf("expected counter to increase by 1, got %v -> %v", before, after)
	}
}

func TestStatusClass(t *testing.T) {
	cases := map[int]string{101: "1xx", 200: "2xx", 304: "3xx", 404: "4xx", 502: "5xx", 0: "5xx"}
	for code, want := range cases {
		if got := StatusClass(code); got != want {
			t.Fatalf("StatusClass(%d)=%q want %q", code, got, want)
		}
	}
}

func TestHandler_ExposesCollectors(t *testing.T) {
	ObserveUpstream("test", "expose", time.Now(), nil)
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "upstream_requests_total") {
		t.Fatalf("metrics output missing upstream_requests_total")
	}
}
