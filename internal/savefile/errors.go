package savefile

import "fmt"

// DecodeError reports a failure in the byte-level reverse transform:
// wrong container framing, bad base64, bad cipher padding, or text that
// is not UTF-8. It means the input is not a save file this tool reads.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode save: %s: %v", e.Reason, e.Err)
	}
	return "decode save: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FormatError reports that the decrypted text is not well-formed JSON or
// that its root is not an object.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse save: %s: %v", e.Reason, e.Err)
	}
	return "parse save: " + e.Reason
}

func (e *FormatError) Unwrap() error { return e.Err }
