// Package requestid provides HTTP middleware and helpers for request
// correlation identifiers.
//
// A request ID is a short opaque string identifying one inbound HTTP
// request. Carrying the same ID through headers, context and structured
// logs lets log records from one interaction be correlated during
// troubleshooting.
//
// # Overview
//
// The package offers:
//
//   - Middleware that attaches a request ID to every request. A client
//     supplied "X-Request-ID" header is validated and reused; anything
//     missing or malformed is replaced with a fresh UUIDv4. The chosen ID
//     goes into the request context and is echoed in the response header.
//
//   - Context helpers WithContext and FromContext.
//
//   - LoggerExtractor, a context extractor for the logger factory that
//     injects the request ID into log attributes automatically.
//
// # Usage
//
//	mux := http.NewServeMux()
//	mux.Handle("/hello", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		id := requestid.FromContext(r.Context())
//		w.Write([]byte("hello, your request id is " + id))
//	}))
//
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
//
// # Error Handling
//
// Nothing here returns an error. A malformed or absent inbound ID is
// quietly swapped for a generated UUID.
package requestid
