package request

import "fmt"

// Mode is the direction of the cryptographic operation.
type Mode int

const (
	ModeUnset Mode = iota
	ModeEncrypt
	ModeDecrypt
)

func (m Mode) String() string {
	switch m {
	case ModeEncrypt:
		return "encrypt"
	case ModeDecrypt:
		return "decrypt"
	default:
		return "unset"
	}
}

// Cipher names a symmetric algorithm from the closed set the tool supports.
type Cipher string

const (
	CipherAES Cipher = "AES"
	CipherDES Cipher = "DES"
)

// ParseCipher matches name exactly against the supported ciphers.
func ParseCipher(name string) (Cipher, error) {
	switch Cipher(name) {
	case CipherAES, CipherDES:
		return Cipher(name), nil
	case "":
		return "", fmt.Errorf("%w: cipher must not be empty", ErrInvalidRequest)
	default:
		return "", fmt.Errorf("%w: unsupported cipher %q, expected AES or DES", ErrInvalidRequest, name)
	}
}

// Fields are the raw option values bound by the argument parser. Nothing in
// here has been checked against the filesystem or the cipher rules yet.
type Fields struct {
	Binary     bool
	Encrypt    bool
	Decrypt    bool
	SourceFile string
	ResultFile string
	Key        string
	Cipher     string
}

// CipherRequest is the validated bundle handed to the transform. Key and
// Message are UTF-8; both are kept as the exact bytes the user supplied.
type CipherRequest struct {
	BinaryOutput bool
	Mode         Mode
	SourcePath   string
	// ResultPath is empty when the caller should pick the default sink.
	ResultPath string
	Key        string
	Cipher     Cipher
	Message    []byte
}
