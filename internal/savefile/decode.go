// Package savefile reads Hollow Knight: Silksong save files: the
// byte-level container decode and a defensive accessor layer over the
// decoded JSON document.
package savefile

import (
	"bytes"
	"crypto/aes"
	"encoding/base64"
	"unicode/utf8"
)

// The game stores saves through C#'s BinaryFormatter as a single string
// record. The stream is always: a 17-byte serialization header, a
// 5-byte BinaryObjectString record prefix, a 7-bit-encoded length, the
// base64 payload, and a 0x0B MessageEnd byte.
var csharpHeader = []byte{
	0, 1, 0, 0, 0,
	255, 255, 255, 255,
	1, 0, 0, 0,
	0, 0, 0, 0,
	6, 1, 0, 0, 0,
}

const messageEnd = 0x0B

// aesKey is the fixed key Team Cherry ships for EncryptedSavedData.
// AES-256, ECB, PKCS#7 padding.
var aesKey = []byte("UKu52ePUBwetZ9wNX88o54dnfKRu0T1l")

// Decode reverses the save container and returns the embedded JSON text.
// It is a pure transform; any mismatch with the expected framing yields
// a *DecodeError.
func Decode(data []byte) (string, error) {
	if len(data) < len(csharpHeader)+2 {
		return "", &DecodeError{Reason: "file too short"}
	}
	if !bytes.HasPrefix(data, csharpHeader) {
		return "", &DecodeError{Reason: "missing serialization header"}
	}
	if data[len(data)-1] != messageEnd {
		return "", &DecodeError{Reason: "missing stream terminator"}
	}

	body := data[len(csharpHeader) : len(data)-1]
	strLen, n, ok := read7BitLength(body)
	if !ok {
		return "", &DecodeError{Reason: "bad string length prefix"}
	}
	body = body[n:]
	if strLen != len(body) {
		return "", &DecodeError{Reason: "string length does not match payload"}
	}

	cipherText := make([]byte, base64.StdEncoding.DecodedLen(len(body)))
	cn, err := base64.StdEncoding.Decode(cipherText, body)
	if err != nil {
		return "", &DecodeError{Reason: "payload is not base64", Err: err}
	}
	cipherText = cipherText[:cn]

	plain, err := decryptECB(cipherText)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", &DecodeError{Reason: "decrypted text is not UTF-8"}
	}
	return string(plain), nil
}

// Encode is the forward transform, the exact inverse of Decode. The
// analyzer never writes saves; this exists so tests (and anyone
// re-packing a save) can produce files the game itself accepts.
func Encode(text string) []byte {
	plain := pkcs7Pad([]byte(text), aes.BlockSize)
	block, err := aes.NewCipher(aesKey)
	if err != nil {
		panic(err) // fixed 32-byte key, cannot fail
	}
	for i := 0; i < len(plain); i += aes.BlockSize {
		block.Encrypt(plain[i:i+aes.BlockSize], plain[i:i+aes.BlockSize])
	}

	b64 := make([]byte, base64.StdEncoding.EncodedLen(len(plain)))
	base64.StdEncoding.Encode(b64, plain)

	out := make([]byte, 0, len(csharpHeader)+5+len(b64)+1)
	out = append(out, csharpHeader...)
	out = append(out, write7BitLength(len(b64))...)
	out = append(out, b64...)
	out = append(out, messageEnd)
	return out
}

func decryptECB(cipherText []byte) ([]byte, error) {
	if len(cipherText) == 0 || len(cipherText)%aes.BlockSize != 0 {
		return nil, &DecodeError{Reason: "cipher text is not block aligned"}
	}
	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, &DecodeError{Reason: "cipher init failed", Err: err}
	}
	plain := make([]byte, len(cipherText))
	for i := 0; i < len(cipherText); i += aes.BlockSize {
		block.Decrypt(plain[i:i+aes.BlockSize], cipherText[i:i+aes.BlockSize])
	}
	return pkcs7Unpad(plain)
}

func pkcs7Unpad(plain []byte) ([]byte, error) {
	if len(plain) == 0 {
		return nil, &DecodeError{Reason: "empty plaintext"}
	}
	pad := int(plain[len(plain)-1])
	if pad < 1 || pad > aes.BlockSize || pad > len(plain) {
		return nil, &DecodeError{Reason: "bad padding"}
	}
	for _, b := range plain[len(plain)-pad:] {
		if int(b) != pad {
			return nil, &DecodeError{Reason: "bad padding"}
		}
	}
	return plain[:len(plain)-pad], nil
}

func pkcs7Pad(plain []byte, size int) []byte {
	pad := size - len(plain)%size
	out := make([]byte, len(plain)+pad)
	copy(out, plain)
	for i := len(plain); i < len(out); i++ {
		out[i] = byte(pad)
	}
	return out
}

// read7BitLength reads C#'s 7-bits-per-byte little-endian length prefix.
// At most 5 bytes; the high bit marks continuation.
func read7BitLength(b []byte) (length, n int, ok bool) {
	var v uint32
	for i := 0; i < 5 && i < len(b); i++ {
		v |= uint32(b[i]&0x7F) << (7 * i)
		if b[i]&0x80 == 0 {
			return int(v), i + 1, true
		}
	}
	return 0, 0, false
}

func write7BitLength(v int) []byte {
	var out []byte
	u := uint32(v)
	for u >= 0x80 {
		out = append(out, byte(u)|0x80)
		u >>= 7
	}
	return append(out, byte(u))
}
