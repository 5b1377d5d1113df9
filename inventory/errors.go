package inventory

import errorspkg "github.com/pkg/errors"

// TransportErr is a registry call that did not complete.
type TransportErr struct {
	error
}

// ProtocolErr is a registry response that breaks the inventory's data
// model, such as a manifest list nested in another list.
type ProtocolErr struct {
	error
}

type ParseErr struct {
	error
}

func (e *TransportErr) Unwrap() error { return e.error }
func (e *ProtocolErr) Unwrap() error  { return e.error }
func (e *ParseErr) Unwrap() error     { return e.error }

func NewTransportErr(err error) error {
	return &TransportErr{err}
}

func NewProtocolErr(err error) error {
	return &ProtocolErr{err}
}

func NewParseErr(err error) error {
	return &ParseErr{err}
}

// transportErr marks a failed client call as a TransportErr unless the client
// already classified it.
func transportErr(err error) error {
	switch errorspkg.Cause(err).(type) {
	case *TransportErr, *ProtocolErr, *ParseErr:
		return err
	default:
		return NewTransportErr(err)
	}
}
