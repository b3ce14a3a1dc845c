package savefile

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "Small Object", text: `{"playerData":{"hasDash":true}}`},
		{name: "Empty Object", text: `{}`},
		{
			// Long enough that the 7-bit length prefix needs two bytes.
			name: "Long Payload",
			text: `{"playerData":{"notes":"` + strings.Repeat("x", 4000) + `"}}`,
		},
		{name: "Non ASCII", text: `{"name":"Größenwahn ♪"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := Encode(tt.text)
			got, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got != tt.text {
				t.Errorf("Decode() = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	valid := Encode(`{"playerData":{}}`)

	corrupt := func(mutate func([]byte) []byte) []byte {
		data := append([]byte(nil), valid...)
		return mutate(data)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{name: "Empty", data: nil},
		{name: "Truncated", data: valid[:10]},
		{name: "Not A Save", data: []byte("definitely not a save file")},
		{
			name: "Bad Header",
			data: corrupt(func(d []byte) []byte { d[3] ^= 0xFF; return d }),
		},
		{
			name: "Missing Terminator",
			data: corrupt(func(d []byte) []byte { d[len(d)-1] = 0x00; return d }),
		},
		{
			name: "Corrupt Payload",
			data: corrupt(func(d []byte) []byte { d[len(d)/2] = '~'; return d }),
		},
		{
			name: "Length Mismatch",
			data: corrupt(func(d []byte) []byte { return d[:len(d)-20] }),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			if err == nil {
				t.Fatal("Decode() expected an error")
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Errorf("Decode() error = %T, want *DecodeError", err)
			}
		})
	}
}

func Test7BitLength(t *testing.T) {
	tests := []struct {
		value int
		bytes int
	}{
		{value: 0, bytes: 1},
		{value: 127, bytes: 1},
		{value: 128, bytes: 2},
		{value: 16383, bytes: 2},
		{value: 16384, bytes: 3},
		{value: 1<<21 - 1, bytes: 3},
	}
	for _, tt := range tests {
		enc := write7BitLength(tt.value)
		if len(enc) != tt.bytes {
			t.Errorf("write7BitLength(%d) used %d bytes, want %d", tt.value, len(enc), tt.bytes)
		}
		got, n, ok := read7BitLength(enc)
		if !ok || got != tt.value || n != tt.bytes {
			t.Errorf("read7BitLength(%d) = (%d, %d, %v)", tt.value, got, n, ok)
		}
	}

	if _, _, ok := read7BitLength([]byte{0x80, 0x80, 0x80, 0x80, 0x80}); ok {
		t.Error("read7BitLength accepted an unterminated prefix")
	}
}
