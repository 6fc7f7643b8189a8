package config

import (
	"bytes"
	"errors"
	"io"
)

func bytesReader(data []byte) io.Reader {
	return bytes.NewReader(data)
}

// isEmptyDocument reports the decoder error returned for empty input.
func isEmptyDocument(err error) bool {
	return errors.Is(err, io.EOF)
}
