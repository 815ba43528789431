package apperr

import "errors"

// serviceError is implemented by errors that carry the document
// service's own code and message.
type serviceError interface {
	ErrorCode() string
	ErrorMessage() string
}

var serviceCodes = map[string]Code{
	"unauthorized":                    ExternalServiceError,
	"restricted_resource":             ExternalServiceError,
	"object_not_found":                NotFound,
	"rate_limited":                    RateLimited,
	"invalid_json":                    InvalidRequest,
	"invalid_request":                 InvalidRequest,
	"invalid_request_url":             InvalidRequest,
	"validation_error":                InvalidRequest,
	"missing_version":                 InvalidRequest,
	"conflict_error":                  InternalError,
	"internal_server_error":           InternalError,
	"service_unavailable":             InternalError,
	"database_connection_unavailable": InternalError,
}

// Classifier maps arbitrary failure values to classified errors.
// In development mode the service's original message is appended to the
// user-facing message.
type Classifier struct {
	Development bool
}

// Classify never panics and never returns nil.
func (c Classifier) Classify(v any) (out *Error) {
	defer func() {
		if r := recover(); r != nil {
			out = &Error{Code: InternalError, Message: unexpectedMessage}
		}
	}()

	switch x := v.(type) {
	case nil:
		return &Error{Code: InternalError, Message: unexpectedMessage}
	case *Error:
		if x != nil {
			return x
		}
		return &Error{Code: InternalError, Message: unexpectedMessage}
	case map[string]any:
		code, okCode := x["code"].(string)
		msg, okMsg := x["message"].(string)
		if okCode && okMsg {
			return c.fromService(code, msg, nil)
		}
		return &Error{Code: InternalError, Message: unexpectedMessage}
	case error:
		return c.classifyError(x)
	default:
		return &Error{Code: InternalError, Message: unexpectedMessage}
	}
}

func (c Classifier) classifyError(err error) *Error {
	var classified *Error
	if errors.As(err, &classified) && classified != nil {
		return classified
	}

	var svc serviceError
	if errors.As(err, &svc) && svc != nil {
		return c.fromService(svc.ErrorCode(), svc.ErrorMessage(), err)
	}

	msg := err.Error()
	if msg == "" {
		msg = fallbackMessage
	}
	return &Error{Code: InternalError, Message: msg, Err: err}
}

func (c Classifier) fromService(serviceCode, serviceMessage string, err error) *Error {
	code, ok := serviceCodes[serviceCode]
	if !ok {
		code = InternalError
	}

	msg := Message(code)
	if c.Development {
		msg += " (" + serviceMessage + ")"
	}

	return &Error{
		Code:    code,
		Message: msg,
		Details: map[string]any{
			"originalCode":    serviceCode,
			"originalMessage": serviceMessage,
		},
		Err: err,
	}
}

var defaultClassifier Classifier

// Classify uses a production-mode classifier.
func Classify(v any) *Error {
	return defaultClassifier.Classify(v)
}
