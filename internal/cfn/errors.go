// File: internal/cfn/errors.go
// Brief: Remote error taxonomy derived from service error codes.

package cfn

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

// RemoteKind classifies a failed remote call.
type RemoteKind int

const (
	ServiceFailure RemoteKind = iota
	NotFound
	Throttled
)

func (k RemoteKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case Throttled:
		return "throttled"
	default:
		return "service failure"
	}
}

// RemoteError wraps a CloudFormation call failure with the operation and
// stack it concerned. Remote errors are surfaced immediately and never
// retried here; the service enforces its own idempotency and locking.
type RemoteError struct {
	Kind  RemoteKind
	Op    string
	Stack string
	Err   error
}

func (e *RemoteError) Error() string {
	if e.Stack == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Stack, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// IsNotFound reports whether err means the stack is unknown to the service.
func IsNotFound(err error) bool {
	var remote *RemoteError
	return errors.As(err, &remote) && remote.Kind == NotFound
}

// wrapRemote classifies an SDK error. CloudFormation reports a missing stack
// as a ValidationError whose message ends in "does not exist".
func wrapRemote(op, stack string, err error) error {
	if err == nil {
		return nil
	}
	kind := ServiceFailure
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		switch {
		case code == "ValidationError" && strings.Contains(apiErr.ErrorMessage(), "does not exist"):
			kind = NotFound
		case code == "Throttling" || code == "ThrottlingException" || code == "RequestLimitExceeded":
			kind = Throttled
		}
	}
	return &RemoteError{Kind: kind, Op: op, Stack: stack, Err: err}
}
