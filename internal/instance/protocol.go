// SPDX-License-Identifier: MPL-2.0

package instance

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MethodOpenPaths asks the running instance to open folders and files.
const MethodOpenPaths Method = "OpenPaths"

// ErrInvalidMethod is returned when a Method value is not recognized.
var ErrInvalidMethod = errors.New("invalid method")

type (
	// Method names a notification.
	Method string

	// InvalidMethodError is returned when a Method value is not recognized.
	// It wraps ErrInvalidMethod for errors.Is() compatibility.
	InvalidMethodError struct {
		Value Method
	}

	// Notification is a one-way message to a running instance. On the wire
	// it is a single JSON object terminated by a newline.
	Notification struct {
		Method Method          `json:"method"`
		Params OpenPathsParams `json:"params"`
	}

	// OpenPathsParams lists what to open. Paths are absolute unless the
	// sender was configured otherwise.
	OpenPathsParams struct {
		Folders []string `json:"folders"`
		Files   []string `json:"files"`
	}

	// Decoder reads notifications from a stream.
	Decoder struct {
		dec *json.Decoder
	}
)

// Error implements the error interface for InvalidMethodError.
func (e *InvalidMethodError) Error() string {
	return fmt.Sprintf("invalid method %q (valid: %s)", e.Value, MethodOpenPaths)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidMethodError) Unwrap() error {
	return ErrInvalidMethod
}

// Validate returns nil if the Method is known.
func (m Method) Validate() error {
	if m == MethodOpenPaths {
		return nil
	}
	return &InvalidMethodError{Value: m}
}

// NewOpenPaths builds an OpenPaths notification. Nil slices are encoded as
// empty arrays.
func NewOpenPaths(folders, files []string) Notification {
	if folders == nil {
		folders = []string{}
	}
	if files == nil {
		files = []string{}
	}
	return Notification{
		Method: MethodOpenPaths,
		Params: OpenPathsParams{Folders: folders, Files: files},
	}
}

// Encode writes n to w with a single Write call.
func Encode(w io.Writer, n Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return err
	}
	return nil
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: json.NewDecoder(r)}
}

// Next reads the next notification. It returns io.EOF at a clean end of
// stream and an error wrapping ErrInvalidMethod for unknown methods; the
// stream stays usable after the latter.
func (d *Decoder) Next() (Notification, error) {
	var n Notification
	if err := d.dec.Decode(&n); err != nil {
		if errors.Is(err, io.EOF) {
			return Notification{}, io.EOF
		}
		return Notification{}, fmt.Errorf("failed to decode notification: %w", err)
	}
	if err := n.Method.Validate(); err != nil {
		return n, err
	}
	return n, nil
}
