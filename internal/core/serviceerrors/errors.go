package serviceerrors

import "errors"

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindConflict
	KindUnprocessableEntity
	KindInvalidRequest
	KindInvalidOperation
	KindDataIntegrity
	KindTransport
)

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Message: message}
}

func NewUnprocessableEntityError(message string) *ServiceError {
	return &ServiceError{Kind: KindUnprocessableEntity, Message: message}
}

func NewInvalidRequestError(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidRequest, Message: message}
}

func NewInvalidOperationError(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidOperation, Message: message}
}

func NewDataIntegrityError(message string) *ServiceError {
	return &ServiceError{Kind: KindDataIntegrity, Message: message}
}

// NewTransportError reports a failed outbound delivery. The cause is kept
// for errors.Is/As.
func NewTransportError(message string, err error) *ServiceError {
	return &ServiceError{Kind: KindTransport, Message: message, Err: err}
}
