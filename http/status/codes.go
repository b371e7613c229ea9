package status

type Code uint16

const (
	// Teardown is a pseudo-code carried by errors which describe connection
	// lifecycle events rather than responses to be written.
	Teardown Code = 0

	OK                    Code = 200
	BadRequest            Code = 400
	NotFound              Code = 404
	RequestTimeout        Code = 408
	RequestEntityTooLarge Code = 413
	UnsupportedMediaType  Code = 415
	InternalServerError   Code = 500
	NotImplemented        Code = 501
	ServiceUnavailable    Code = 503
)

// Text returns the reason phrase of the code. Unknown codes resolve to an
// empty string.
func Text(code Code) string {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case NotFound:
		return "Not Found"
	case RequestTimeout:
		return "Request Timeout"
	case RequestEntityTooLarge:
		return "Request Entity Too Large"
	case UnsupportedMediaType:
		return "Unsupported Media Type"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	case ServiceUnavailable:
		return "Service Unavailable"
	default:
		return ""
	}
}
