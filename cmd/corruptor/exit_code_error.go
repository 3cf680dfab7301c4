package main

// ExitCodeError wraps an error with a specific process exit code. Only
// `run --strict` uses it, so scripts can tell "names survived" (2) apart
// from usage and configuration errors (1).
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
