package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	errTrailingElement = errors.New("element after document root")

	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// newDecoder returns a decoder for an XML part in any encoding the part
// declares. UTF-16 parts are recognized by their byte order mark and
// transcoded up front, since encoding/xml only reads ASCII-compatible input.
func newDecoder(data []byte) (*xml.Decoder, error) {
	data = bytes.TrimPrefix(data, bomUTF8)

	transcoded := false
	if bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF16BE) {
		utf8Data, _, err := transform.Bytes(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("decode utf-16: %w", err)
		}
		data = utf8Data
		transcoded = true
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		if transcoded {
			return input, nil
		}
		return charset.NewReaderLabel(label, input)
	}
	return decoder, nil
}

// drainDocument consumes what follows the root element so that trailing
// garbage is reported the same way as a syntax error inside the root.
func drainDocument(decoder *xml.Decoder) error {
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if _, ok := token.(xml.StartElement); ok {
			return errTrailingElement
		}
	}
}

func attrValue(se xml.StartElement, local string) (string, bool) {
	for _, attr := range se.Attr {
		if attr.Name.Space == "" && attr.Name.Local == local {
			return attr.Value, true
		}
	}
	return "", false
}
