package transform

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"errors"
	"fmt"

	"github.com/specialistvlad/symcrypt/internal/ctxlog"
	"github.com/specialistvlad/symcrypt/internal/request"
)

var (
	// ErrKeySize is returned when the key does not fit the selected cipher.
	ErrKeySize = errors.New("invalid key size")

	// ErrCiphertextLength is returned when decryption input is not a whole
	// number of blocks.
	ErrCiphertextLength = errors.New("invalid cipher text length")

	// ErrCiphertextFormat is returned when text-mode input is not hex.
	ErrCiphertextFormat = errors.New("invalid cipher text format")
)

// padding fills the last block on encryption and is trimmed on decryption.
const padding = ' '

// NewBlock returns the block cipher named by c keyed with key.
func NewBlock(c request.Cipher, key []byte) (cipher.Block, error) {
	switch c {
	case request.CipherAES:
		switch len(key) {
		case 16, 24, 32:
			return aes.NewCipher(key)
		}
		return nil, fmt.Errorf("%w: the key length for AES must be 128/192/256 bits, the current key length: %d", ErrKeySize, len(key)*8)
	case request.CipherDES:
		if len(key) != des.BlockSize {
			return nil, fmt.Errorf("%w: the key length for DES must be 64 bits, the current key length: %d", ErrKeySize, len(key)*8)
		}
		return des.NewCipher(key)
	default:
		return nil, fmt.Errorf("unsupported cipher %q", c)
	}
}

// Run encrypts or decrypts req.Message and returns the bytes to write to
// the result sink.
func Run(ctx context.Context, req *request.CipherRequest) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)

	block, err := NewBlock(req.Cipher, []byte(req.Key))
	if err != nil {
		return nil, err
	}
	logger.Debug("Block cipher ready.", "cipher", req.Cipher, "block_size", block.BlockSize(), "mode", req.Mode)

	switch req.Mode {
	case request.ModeEncrypt:
		return encrypt(ctx, block, req.Message, req.BinaryOutput)
	case request.ModeDecrypt:
		return decrypt(ctx, block, req.Cipher, req.Message, req.BinaryOutput)
	default:
		return nil, fmt.Errorf("%w: mode %s", request.ErrInvalidRequest, req.Mode)
	}
}

func encrypt(ctx context.Context, block cipher.Block, message []byte, binary bool) ([]byte, error) {
	plain := pad(message, block.BlockSize())
	out := make([]byte, len(plain))
	if err := eachBlock(ctx, block.BlockSize(), plain, out, block.Encrypt); err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Message encrypted.", "plain_bytes", len(message), "blocks", len(out)/block.BlockSize())

	if binary {
		return out, nil
	}
	return encodeText(out), nil
}

func decrypt(ctx context.Context, block cipher.Block, c request.Cipher, message []byte, binary bool) ([]byte, error) {
	data := message
	if !binary {
		decoded, err := decodeText(message)
		if err != nil {
			return nil, err
		}
		data = decoded
	}

	size := block.BlockSize()
	if len(data) == 0 || len(data)%size != 0 {
		return nil, fmt.Errorf("%w: the cipher text length for %s must be a multiple of %d, the current length: %d",
			ErrCiphertextLength, c, size, len(data))
	}

	out := make([]byte, len(data))
	if err := eachBlock(ctx, size, data, out, block.Decrypt); err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Message decrypted.", "cipher_bytes", len(data), "blocks", len(data)/size)

	return bytes.TrimRight(out, string(padding)), nil
}

func pad(message []byte, size int) []byte {
	n := len(message)
	if rem := n % size; rem != 0 || n == 0 {
		n += size - rem
	}
	out := make([]byte, n)
	copy(out, message)
	for i := len(message); i < n; i++ {
		out[i] = padding
	}
	return out
}

// eachBlock applies fn to every size-byte block of src, stopping early if
// ctx is cancelled.
func eachBlock(ctx context.Context, size int, src, dst []byte, fn func(dst, src []byte)) error {
	for i := 0; i < len(src); i += size {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(dst[i:i+size], src[i:i+size])
	}
	return nil
}
