package responder

import "fmt"

// CallError is a failed call to the model service.
type CallError struct {
	Provider string
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("Error calling %s API: %v", e.Provider, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// Result is the outcome of Answer: the model's text, or the call error.
type Result struct {
	Text string
	Err  *CallError
}

func (r Result) OK() bool { return r.Err == nil }

// String renders the result for display: the answer verbatim, or
// "Error calling <Provider> API: <message>".
func (r Result) String() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return r.Text
}
