package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the canonical request ID header.
const Header = "X-Request-ID"

// Inbound IDs are reused only when short and plain; everything else is
// replaced. The length check runs before the pattern so oversized
// headers never reach the regexp.
const maxInboundLength = 128

var plainIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Middleware ensures every request carries a usable request ID. A valid
// inbound X-Request-ID survives, so IDs minted by upstream proxies stay
// intact; a missing, oversized or otherwise malformed one is replaced
// with a fresh UUIDv4. The final ID lands in the request context and is
// echoed in the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !acceptableID(id) {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

func acceptableID(id string) bool {
	if id == "" || len(id) > maxInboundLength {
		return false
	}
	return plainIDPattern.MatchString(id)
}
