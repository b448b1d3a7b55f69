package blueprint

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Encode renders bp into the external string format:
// '0' + base64(zlib_deflate_max(json(bp))).
//
// Any failure returns ErrSerialize with the cause wrapped; no partial
// string is ever produced.
func Encode(bp *Blueprint) (string, error) {
	if bp == nil {
		return "", fmt.Errorf("%w: nil document", ErrSerialize)
	}

	raw, err := json.Marshal(bp)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	if _, err = zw.Write(raw); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	if err = zw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	return string(VersionChar) + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode is the exact inverse of Encode: strip the version character,
// base64-decode, inflate, parse.
func Decode(s string) (*Blueprint, error) {
	if len(s) == 0 || s[0] != VersionChar {
		return nil, ErrVersion
	}

	compressed, err := base64.StdEncoding.DecodeString(s[1:])
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrDecode, err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("%w: zlib: %v", ErrDecode, err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: inflate: %v", ErrDecode, err)
	}

	var bp Blueprint
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	if err = dec.Decode(&bp); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrDecode, err)
	}
	return &bp, nil
}
