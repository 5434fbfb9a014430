package apiclient

// Status is the closed set of outcomes a storefront API call can have. The
// server speaks a loose string vocabulary ("success", "exists", "error", ad
// hoc messages); it is translated into this variant exactly once, here, so
// nothing downstream ever re-parses strings.
type Status string

const (
	// StatusOK is the plain success outcome.
	StatusOK Status = "ok"
	// StatusExists is the idempotent-success alias the cart-add endpoint
	// uses when the product is already in the cart.
	StatusExists Status = "exists"
	// StatusError covers every other server-reported outcome.
	StatusError Status = "error"
)

const (
	wireStatusSuccess = "success"
	wireStatusExists  = "exists"
)

func statusFromWire(value string) Status {
	switch value {
	case wireStatusSuccess:
		return StatusOK
	case wireStatusExists:
		return StatusExists
	default:
		return StatusError
	}
}

// Result is the typed outcome of one API call. Payload is only meaningful
// when Succeeded reports true; Message carries the server's human-readable
// text either way.
type Result[T any] struct {
	Status  Status
	Payload T
	Message string
}

// Succeeded reports whether the call reached a success outcome, counting the
// documented "exists" alias.
func (r Result[T]) Succeeded() bool {
	return r.Status == StatusOK || r.Status == StatusExists
}

func ok[T any](payload T, message string) Result[T] {
	return Result[T]{Status: StatusOK, Payload: payload, Message: message}
}

func failed[T any](status Status, message string) Result[T] {
	if message == "" {
		message = "request was rejected by the server"
	}
	return Result[T]{Status: status, Message: message}
}
