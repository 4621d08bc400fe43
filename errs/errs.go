// Package errs holds the sentinel errors the core surfaces at the tool API
// boundary. A flat set distinguishable via errors.Is, matching the teacher's
// own preference for plain sentinel errors over a custom error-code type.
package errs

import "errors"

var (
	ErrNotImplemented   = errors.New("not implemented")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrDeviceNotFound   = errors.New("device not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrGpu              = errors.New("gpu error")
	ErrCpu              = errors.New("cpu error")
	ErrMemory           = errors.New("memory error")
	ErrDisk             = errors.New("disk error")
	ErrNetwork          = errors.New("network error")
	ErrProcess          = errors.New("process error")
	ErrHardware         = errors.New("hardware error")
	ErrIo               = errors.New("io error")
	ErrParse            = errors.New("parse error")
	ErrOther            = errors.New("other error")
)
