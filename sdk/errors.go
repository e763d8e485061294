package sdk

// ErrTransport represents a failure to complete a request or to parse its
// response body-- i.e. any failure that occurs before a structured result
// could be obtained from the remote service.
type ErrTransport struct {
	Cause error
}

func (e *ErrTransport) Error() string {
	return e.Cause.Error()
}

// Unwrap supports errors.Is/As inspection of the underlying cause.
func (e *ErrTransport) Unwrap() error {
	return e.Cause
}
