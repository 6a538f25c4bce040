// Package encoding implements the wire encoding for persisted component
// state. Values are marshaled with msgpack and then either HMAC-signed
// (visible but tamper-proof) or AES-256-GCM encrypted (fully opaque).
package encoding

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Sentinel errors surfaced to callers. The root package wraps these with
// its own sentinels so applications never import this package directly.
var (
	ErrInvalidFormat    = errors.New("encoding: invalid format")
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
	ErrDecryptFailed    = errors.New("encoding: decryption failed")
)

// sigLen is the truncated HMAC-SHA256 length appended to signed blobs.
// 128 bits keeps URLs short while staying far beyond forgery reach.
const sigLen = 16

// Encoder encodes and decodes state blobs in one of two modes:
//   - Signed (default): base64 msgpack + truncated HMAC-SHA256
//   - Encrypted: AES-256-GCM with a random nonce prefix
type Encoder struct {
	key []byte
	gcm cipher.AEAD
}

// NewEncoder creates an encoder from a secret key. Keys shorter than 32
// bytes are stretched through SHA-256 so any application secret works.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key[:32])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Encoder{key: key[:32], gcm: gcm}, nil
}

// Encode marshals v with msgpack and encodes it, encrypted when sensitive
// is true, signed otherwise.
func (e *Encoder) Encode(v any, sensitive bool) (string, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding: marshal: %w", err)
	}
	if sensitive {
		return e.encrypt(packed)
	}
	return e.sign(packed), nil
}

// Decode reverses Encode into v. The sensitive flag must match the one
// used at encode time.
func (e *Encoder) Decode(encoded string, sensitive bool, v any) error {
	var packed []byte
	var err error
	if sensitive {
		packed, err = e.decrypt(encoded)
	} else {
		packed, err = e.verify(encoded)
	}
	if err != nil {
		return err
	}

	if err := msgpack.Unmarshal(packed, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

// sign produces "payload.signature", both segments base64url.
func (e *Encoder) sign(data []byte) string {
	mac := hmac.New(sha256.New, e.key)
	mac.Write(data)
	sig := mac.Sum(nil)[:sigLen]

	return base64.RawURLEncoding.EncodeToString(data) +
		"." + base64.RawURLEncoding.EncodeToString(sig)
}

func (e *Encoder) verify(encoded string) ([]byte, error) {
	payload, sigPart, ok := strings.Cut(encoded, ".")
	if !ok {
		return nil, fmt.Errorf("%w: missing signature", ErrInvalidFormat)
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	sig, err := base64.RawURLEncoding.DecodeString(sigPart)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	mac := hmac.New(sha256.New, e.key)
	mac.Write(data)
	if !hmac.Equal(sig, mac.Sum(nil)[:sigLen]) {
		return nil, ErrSignatureInvalid
	}
	return data, nil
}

func (e *Encoder) encrypt(data []byte) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := e.gcm.Seal(nonce, nonce, data, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (e *Encoder) decrypt(encoded string) ([]byte, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(sealed) < e.gcm.NonceSize() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrInvalidFormat)
	}

	nonce, ciphertext := sealed[:e.gcm.NonceSize()], sealed[e.gcm.NonceSize():]
	data, err := e.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return data, nil
}
