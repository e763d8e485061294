package auth

// ErrValidation indicates a required credential field was missing. It is
// detected locally, before any request is sent.
type ErrValidation struct {
	Reason string
}

func (e *ErrValidation) Error() string {
	return e.Reason
}

// ErrRejected indicates the remote service refused the operation for
// domain reasons (e.g. a wrong password) and said why in a structured
// error detail.
type ErrRejected struct {
	Reason string
}

func (e *ErrRejected) Error() string {
	return e.Reason
}

// ErrFailed indicates the remote service refused the operation without any
// usable structured detail; it carries the response's top-level message.
type ErrFailed struct {
	Reason string
}

func (e *ErrFailed) Error() string {
	return e.Reason
}
