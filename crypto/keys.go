// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crypto

import (
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
)

// PrivateKey is the raw big-endian scalar of a NIST P-192 signing key, hex
// encoded on the wire and on disk exactly as the reference node's signing
// key files carry it.
type PrivateKey [ScalarSize]byte

// PublicKey is the raw, uncompressed X||Y point encoding of a NIST P-192
// verifying key: 48 bytes, 96 hex characters. This is also the format of
// a transaction's sender/receiver fields and a header's coinbase field.
type PublicKey [PublicKeySize]byte

// ZeroPublicKey is used as the genesis block's placeholder coinbase.
var ZeroPublicKey = PublicKey{}

// GenerateKey creates a new random P-192 key pair.
func GenerateKey() (PrivateKey, PublicKey, error) {
	priv, err := ecdsa.GenerateKey(P192(), rand.Reader)
	if err != nil {
		return PrivateKey{}, PublicKey{}, err
	}
	return encodePrivate(priv.D), encodePublic(priv.X, priv.Y), nil
}

// PublicKeyFromString parses a 96-character hex-encoded public key.
func PublicKeyFromString(s string) (PublicKey, error) {
	var pk PublicKey
	b, err := hex.DecodeString(s)
	if err != nil {
		return pk, err
	}
	if len(b) != PublicKeySize {
		return pk, fmt.Errorf("crypto: public key must be %d bytes, got %d", PublicKeySize, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

// String renders the public key as lowercase hex.
func (pk PublicKey) String() string {
	return hex.EncodeToString(pk[:])
}

// MarshalText implements encoding.TextMarshaler.
func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := PublicKeyFromString(string(text))
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}

// PrivateKeyFromString parses a 48-character hex-encoded private scalar.
func PrivateKeyFromString(s string) (PrivateKey, error) {
	var sk PrivateKey
	b, err := hex.DecodeString(s)
	if err != nil {
		return sk, err
	}
	if len(b) != ScalarSize {
		return sk, fmt.Errorf("crypto: private key must be %d bytes, got %d", ScalarSize, len(b))
	}
	copy(sk[:], b)
	return sk, nil
}

// String renders the private key as lowercase hex. Callers should avoid
// logging this.
func (sk PrivateKey) String() string {
	return hex.EncodeToString(sk[:])
}

// Public derives the public key matching sk.
func (sk PrivateKey) Public() PublicKey {
	priv := sk.toECDSA()
	return encodePublic(priv.X, priv.Y)
}

func (sk PrivateKey) toECDSA() *ecdsa.PrivateKey {
	curve := P192()
	d := new(big.Int).SetBytes(sk[:])
	x, y := curve.ScalarBaseMult(sk[:])
	return &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: curve, X: x, Y: y},
		D:         d,
	}
}

func encodePrivate(d *big.Int) PrivateKey {
	var sk PrivateKey
	b := d.Bytes()
	copy(sk[ScalarSize-len(b):], b)
	return sk
}

func encodePublic(x, y *big.Int) PublicKey {
	var pk PublicKey
	xb, yb := x.Bytes(), y.Bytes()
	copy(pk[ScalarSize-len(xb):ScalarSize], xb)
	copy(pk[PublicKeySize-len(yb):], yb)
	return pk
}

func (pk PublicKey) toECDSA() *ecdsa.PublicKey {
	return &ecdsa.PublicKey{
		Curve: P192(),
		X:     new(big.Int).SetBytes(pk[:ScalarSize]),
		Y:     new(big.Int).SetBytes(pk[ScalarSize:]),
	}
}

// Sign produces a raw r||s signature (48 bytes, 96 hex characters) over
// msg, the way the reference client signs a transaction's hex-encoded
// identifier string.
func Sign(sk PrivateKey, msg []byte) ([]byte, error) {
	priv := sk.toECDSA()
	r, s, err := ecdsa.Sign(rand.Reader, priv, msg)
	if err != nil {
		return nil, err
	}
	sig := make([]byte, PublicKeySize)
	rb, sb := r.Bytes(), s.Bytes()
	copy(sig[ScalarSize-len(rb):ScalarSize], rb)
	copy(sig[PublicKeySize-len(sb):], sb)
	return sig, nil
}

// Verify checks a raw r||s signature produced by Sign against pub and msg.
func Verify(pub PublicKey, sig, msg []byte) bool {
	if len(sig) != PublicKeySize {
		return false
	}
	r := new(big.Int).SetBytes(sig[:ScalarSize])
	s := new(big.Int).SetBytes(sig[ScalarSize:])
	return ecdsa.Verify(pub.toECDSA(), msg, r, s)
}

// ErrBadSignature is the error value for a signature that fails
// verification. Verify itself reports the outcome as a bool and does not
// return it.
var ErrBadSignature = errors.New("crypto: signature verification failed")
