package httperr

import (
	"net/http"
	"strings"
)

// Error represents an HTTP error with a status code and a translation key.
// The Key field doubles as the response message: the handler looks it up in
// the translation catalog and falls back to the key itself when no entry
// exists. Keys holds an ordered list of translation keys for errors that
// carry several messages at once, such as per-field validation failures;
// when set it takes precedence over Key.
type Error struct {
	Code int      // HTTP status code
	Key  string   // Translation key (e.g., "not_found", "unauthorized")
	Keys []string // Translation keys for multi-message errors
}

// Error implements the error interface.
func (e Error) Error() string {
	if len(e.Keys) > 0 {
		return strings.Join(e.Keys, "; ")
	}
	return e.Key
}

// 4xx Client Errors
var (
	ErrBadRequest                   = Error{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnauthorized                 = Error{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrPaymentRequired              = Error{Code: http.StatusPaymentRequired, Key: "payment_required"}
	ErrForbidden                    = Error{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound                     = Error{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed             = Error{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrNotAcceptable                = Error{Code: http.StatusNotAcceptable, Key: "not_acceptable"}
	ErrProxyAuthRequired            = Error{Code: http.StatusProxyAuthRequired, Key: "proxy_auth_required"}
	ErrRequestTimeout               = Error{Code: http.StatusRequestTimeout, Key: "request_timeout"}
	ErrConflict                     = Error{Code: http.StatusConflict, Key: "conflict"}
	ErrGone                         = Error{Code: http.StatusGone, Key: "gone"}
	ErrLengthRequired               = Error{Code: http.StatusLengthRequired, Key: "length_required"}
	ErrPreconditionFailed           = Error{Code: http.StatusPreconditionFailed, Key: "precondition_failed"}
	ErrRequestEntityTooLarge        = Error{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrRequestURITooLong            = Error{Code: http.StatusRequestURITooLong, Key: "request_uri_too_long"}
	ErrUnsupportedMediaType         = Error{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrRequestedRangeNotSatisfiable = Error{Code: http.StatusRequestedRangeNotSatisfiable, Key: "requested_range_not_satisfiable"}
	ErrExpectationFailed            = Error{Code: http.StatusExpectationFailed, Key: "expectation_failed"}
	ErrTeapot                       = Error{Code: http.StatusTeapot, Key: "teapot"}
	ErrMisdirectedRequest           = Error{Code: http.StatusMisdirectedRequest, Key: "misdirected_request"}
	ErrUnprocessableEntity          = Error{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrLocked                       = Error{Code: http.StatusLocked, Key: "locked"}
	ErrFailedDependency             = Error{Code: http.StatusFailedDependency, Key: "failed_dependency"}
	ErrTooEarly                     = Error{Code: http.StatusTooEarly, Key: "too_early"}
	ErrUpgradeRequired              = Error{Code: http.StatusUpgradeRequired, Key: "upgrade_required"}
	ErrPreconditionRequired         = Error{Code: http.StatusPreconditionRequired, Key: "precondition_required"}
	ErrTooManyRequests              = Error{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
	ErrRequestHeaderFieldsTooLarge  = Error{Code: http.StatusRequestHeaderFieldsTooLarge, Key: "request_header_fields_too_large"}
	ErrUnavailableForLegalReasons   = Error{Code: http.StatusUnavailableForLegalReasons, Key: "unavailable_for_legal_reasons"}
)

// 5xx Server Errors
var (
	ErrInternalServerError           = Error{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrNotImplemented                = Error{Code: http.StatusNotImplemented, Key: "not_implemented"}
	ErrBadGateway                    = Error{Code: http.StatusBadGateway, Key: "bad_gateway"}
	ErrServiceUnavailable            = Error{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
	ErrGatewayTimeout                = Error{Code: http.StatusGatewayTimeout, Key: "gateway_timeout"}
	ErrHTTPVersionNotSupported       = Error{Code: http.StatusHTTPVersionNotSupported, Key: "http_version_not_supported"}
	ErrVariantAlsoNegotiates         = Error{Code: http.StatusVariantAlsoNegotiates, Key: "variant_also_negotiates"}
	ErrInsufficientStorage           = Error{Code: http.StatusInsufficientStorage, Key: "insufficient_storage"}
	ErrLoopDetected                  = Error{Code: http.StatusLoopDetected, Key: "loop_detected"}
	ErrNotExtended                   = Error{Code: http.StatusNotExtended, Key: "not_extended"}
	ErrNetworkAuthenticationRequired = Error{Code: http.StatusNetworkAuthenticationRequired, Key: "network_authentication_required"}
)

// New creates a custom HTTP error with the given status code and translation key.
//
// Example:
//
//	err := httperr.New(http.StatusForbidden, "insufficient_permissions")
func New(code int, key string) Error {
	return Error{Code: code, Key: key}
}

// NewMulti creates an HTTP error carrying several translation keys, one per
// message. The handler translates each key independently and emits the
// results as a JSON array, which is the conventional shape for validation
// errors.
func NewMulti(code int, keys ...string) Error {
	return Error{Code: code, Keys: keys}
}
