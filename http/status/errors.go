package status

import "errors"

// Error is a protocol-level failure, carrying the response code it maps to.
type Error struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return Error{
		Code:    code,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

var (
	// ErrConnectionClosed signals that the peer shut the connection down in
	// an orderly way before the message was complete. This is a normal
	// teardown condition, not a fault.
	ErrConnectionClosed = NewError(Teardown, "connection closed by peer")

	// ErrShutdown is reported by the accept loop once the server was asked
	// to stop.
	ErrShutdown = NewError(Teardown, "server is shutting down")

	ErrBadRequest           = NewError(BadRequest, "bad request")
	ErrBadHeader            = NewError(BadRequest, "malformed header line")
	ErrInvalidContentLength = NewError(BadRequest, "invalid content-length literal")
	ErrBadChunk             = NewError(BadRequest, "malformed chunked framing")

	ErrUnsupportedMediaType = NewError(UnsupportedMediaType, "unsupported media type")

	// ErrUncleanReuse is returned on an attempt to parse into a message
	// which already finished a cycle and wasn't cleared since.
	ErrUncleanReuse = NewError(InternalServerError, "message reused without being cleared")
)

// IsProtocolViolation tells whether the error describes malformed input, as
// opposed to a transport failure or a teardown signal. Violations warrant an
// error response before the connection is dropped.
func IsProtocolViolation(err error) bool {
	var e Error
	if !errors.As(err, &e) {
		return false
	}

	return e.Code == BadRequest
}
