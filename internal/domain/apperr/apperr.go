// Package apperr classifies failures so the HTTP layer can pick a status
// code without knowing which upstream produced them.
package apperr

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	KindConfiguration
	KindUpstreamTransport
	KindUpstreamAPI
	KindClientInput
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindUpstreamTransport:
		return "upstream_transport"
	case KindUpstreamAPI:
		return "upstream_api"
	case KindClientInput:
		return "client_input"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, &Error{Kind: k}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Msg == "" && t.Err == nil
}

func Configuration(op, msg string) error {
	return &Error{Kind: KindConfiguration, Op: op, Msg: msg}
}

func Transport(op string, err error) error {
	return &Error{Kind: KindUpstreamTransport, Op: op, Err: err}
}

func API(op, msg string) error {
	return &Error{Kind: KindUpstreamAPI, Op: op, Msg: msg}
}

func Input(op, msg string) error {
	return &Error{Kind: KindClientInput, Op: op, Msg: msg}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
