package request

import (
	"fmt"
	"io/fs"
	"os"
)

// State is the position of a request in its validation lifecycle.
type State int

const (
	StateUnvalidated State = iota
	StateValid
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateValid:
		return "valid"
	case StateRejected:
		return "rejected"
	default:
		return "unvalidated"
	}
}

// Kind classifies why a request was rejected.
type Kind int

const (
	KindNone Kind = iota
	KindInvalidRequest
	KindSourceReadFailure
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindSourceReadFailure:
		return "source_read_failure"
	default:
		return "none"
	}
}

// Result is the outcome of Validate. Request is set only when State is
// StateValid; Kind and Err are set only when State is StateRejected.
type Result struct {
	State   State
	Kind    Kind
	Request *CipherRequest
	Err     error
}

// Valid reports whether the request passed every check.
func (r Result) Valid() bool {
	return r.State == StateValid
}

// Unwrap converts the result into the usual Go (value, error) pair.
func (r Result) Unwrap() (*CipherRequest, error) {
	switch r.State {
	case StateValid:
		return r.Request, nil
	case StateRejected:
		return nil, r.Err
	default:
		return nil, fmt.Errorf("%w: request has not been validated", ErrInvalidRequest)
	}
}

func rejected(kind Kind, err error) Result {
	return Result{State: StateRejected, Kind: kind, Err: err}
}

// Validator applies the semantic preconditions. The filesystem hooks exist
// so tests can observe whether a read was attempted.
type Validator struct {
	Stat     func(name string) (fs.FileInfo, error)
	ReadFile func(name string) ([]byte, error)
}

// NewValidator returns a Validator backed by the os package.
func NewValidator() *Validator {
	return &Validator{
		Stat:     os.Stat,
		ReadFile: os.ReadFile,
	}
}

// Validate checks fields with a default Validator.
func Validate(fields Fields) Result {
	return NewValidator().Validate(fields)
}

// Validate runs the checks in a fixed order and reports the first failure.
// The source file is read only once all of them pass.
func (v *Validator) Validate(fields Fields) Result {
	if err := v.checkSource(fields.SourceFile); err != nil {
		return rejected(KindInvalidRequest, err)
	}

	mode, err := checkMode(fields.Encrypt, fields.Decrypt)
	if err != nil {
		return rejected(KindInvalidRequest, err)
	}

	if err := CheckKey(fields.Key); err != nil {
		return rejected(KindInvalidRequest, err)
	}

	cipher, err := ParseCipher(fields.Cipher)
	if err != nil {
		return rejected(KindInvalidRequest, err)
	}

	message, err := v.ReadFile(fields.SourceFile)
	if err != nil {
		return rejected(KindSourceReadFailure, fmt.Errorf("%w: %s: %w", ErrSourceRead, fields.SourceFile, err))
	}

	return Result{
		State: StateValid,
		Request: &CipherRequest{
			BinaryOutput: fields.Binary,
			Mode:         mode,
			SourcePath:   fields.SourceFile,
			ResultPath:   fields.ResultFile,
			Key:          fields.Key,
			Cipher:       cipher,
			Message:      message,
		},
	}
}

// checkSource only asks whether the path exists; readability is left to
// the read step.
func (v *Validator) checkSource(path string) error {
	if path == "" {
		return fmt.Errorf("%w: source file must not be empty", ErrInvalidRequest)
	}
	if _, err := v.Stat(path); err != nil {
		return fmt.Errorf("%w: source file %q does not exist", ErrInvalidRequest, path)
	}
	return nil
}

func checkMode(encrypt, decrypt bool) (Mode, error) {
	switch {
	case encrypt && decrypt:
		return ModeUnset, fmt.Errorf("%w: -e and -d cannot be used together", ErrInvalidRequest)
	case encrypt:
		return ModeEncrypt, nil
	case decrypt:
		return ModeDecrypt, nil
	default:
		return ModeUnset, fmt.Errorf("%w: one of -e or -d must be specified", ErrInvalidRequest)
	}
}

// CheckKey enforces the key length rule on the UTF-8 byte length of key,
// not its rune count.
func CheckKey(key string) error {
	if n := len(key); n%8 != 0 {
		return fmt.Errorf("%w: key length must be a multiple of 8 bytes, got %d", ErrInvalidRequest, n)
	}
	return nil
}
