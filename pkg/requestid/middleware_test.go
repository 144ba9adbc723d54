package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrymomot/localekit/pkg/requestid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveWithID runs one request through the middleware and returns the ID
// the handler saw in its context plus the recorded response.
func serveWithID(t *testing.T, inbound string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var seen string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if inbound != "" {
		req.Header.Set(requestid.Header, inbound)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return seen, rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("mints an ID when none arrives", func(t *testing.T) {
		t.Parallel()

		seen, rec := serveWithID(t, "")
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(requestid.Header), "context and response header must agree")
	})

	t.Run("reuses a plain inbound ID", func(t *testing.T) {
		t.Parallel()

		seen, rec := serveWithID(t, "gateway-7f3a_01")
		assert.Equal(t, "gateway-7f3a_01", seen)
		assert.Equal(t, "gateway-7f3a_01", rec.Header().Get(requestid.Header))
	})

	t.Run("replaces malformed inbound IDs", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			inbound string
		}{
			{"special characters", "trace@42#7"},
			{"embedded spaces", "trace 42"},
			{"path separators", "trace/42/7"},
			{"markup", "<script>alert(1)</script>"},
			{"oversized", strings.Repeat("a", 129)},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				seen, rec := serveWithID(t, tt.inbound)
				assert.NotEmpty(t, seen)
				assert.NotEqual(t, tt.inbound, seen)
				assert.Equal(t, seen, rec.Header().Get(requestid.Header))
			})
		}
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := requestid.WithContext(context.Background(), "corr-1")
	assert.Equal(t, "corr-1", requestid.FromContext(ctx))
	assert.Empty(t, requestid.FromContext(context.Background()))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	t.Run("emits attribute when the ID is present", func(t *testing.T) {
		t.Parallel()

		attr, ok := extract(requestid.WithContext(context.Background(), "corr-2"))
		require.True(t, ok)
		assert.Equal(t, "request_id", attr.Key)
		assert.Equal(t, "corr-2", attr.Value.String())
	})

	t.Run("stays silent without an ID", func(t *testing.T) {
		t.Parallel()

		_, ok := extract(context.Background())
		assert.False(t, ok)
	})
}
