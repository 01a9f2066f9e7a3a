package adapter

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeLines reads r as text and splits it into physical lines. A UTF-16 or
// UTF-8 byte order mark selects the encoding, otherwise UTF-8 is assumed;
// malformed bytes become U+FFFD instead of failing the read.
func DecodeLines(r io.Reader) ([]string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())

	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return nil, fmt.Errorf("failed to decode text: %w", err)
	}

	return SplitLines(string(data)), nil
}

// DecodeBytes is DecodeLines over an in-memory buffer.
func DecodeBytes(data []byte) ([]string, error) {
	return DecodeLines(bytes.NewReader(data))
}

// SplitLines splits text on \n, \r\n and \r. A trailing line break does not
// start an extra line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	return strings.Split(text, "\n")
}
