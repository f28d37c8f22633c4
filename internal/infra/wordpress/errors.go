package wordpress

import "errors"

// Failure taxonomy for the content upstream. Callers branch with errors.Is;
// none of these is ever retried automatically, a user-initiated reload is
// the recovery path.
var (
	// ErrUpstreamUnavailable covers transport failures and non-2xx
	// responses.
	ErrUpstreamUnavailable = errors.New("content upstream unavailable")

	// ErrMalformedResponse covers bodies that are not the expected JSON
	// envelope, including the hosting provider serving an HTML error page
	// where GraphQL JSON was expected.
	ErrMalformedResponse = errors.New("malformed content response")

	// ErrQueryRejected covers a well-formed envelope carrying a GraphQL
	// errors list.
	ErrQueryRejected = errors.New("content query rejected")
)
