package rrnacomp

import (
	"bytes"
	"compress/gzip"
	"io"
	"testing"
)

type nopCloser struct {
	io.Reader
	closed bool
}

func (n *nopCloser) Close() error {
	n.closed = true
	return nil
}

func TestDetectDataType(t *testing.T) {
	for _, v := range []struct {
		head     []byte
		expected DataType
	}{
		{[]byte{0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00}, DataTypeGzip},
		{[]byte{0x50, 0x4b, 0x03, 0x04, 0x14, 0x00}, DataTypeZip},
		{[]byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, DataTypeXZ},
		{[]byte{0x42, 0x5a, 0x68, 0x39}, DataTypeBZip2},
		{[]byte{0x1f, 0x9d}, DataTypeZ},
		{[]byte("E. coli\t562\t10\t7"), DataTypeNoCompression},
		{[]byte{0x1f}, DataTypeNoCompression},
		{nil, DataTypeNoCompression},
	} {
		if got := DetectDataType(v.head); got != v.expected {
			t.Errorf("DetectDataType(%x): got %s, expected %s", v.head, got, v.expected)
		}
	}
}

func TestMaybeDecompressGzip(t *testing.T) {
	payload := "# comment\nA\t1\t10\t1;2\n"

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(payload)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	src := &nopCloser{Reader: &buf}
	rc, dt, err := MaybeDecompressReadCloser(src)
	if err != nil {
		t.Fatal(err)
	}
	if dt != DataTypeGzip {
		t.Fatalf("Expected gzip, got %s", dt)
	}

	out, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != payload {
		t.Fatalf("Got %q, expected %q", out, payload)
	}

	if err := rc.Close(); err != nil {
		t.Fatal(err)
	}
	if !src.closed {
		t.Fatal("Underlying reader was not closed")
	}
}

func TestMaybeDecompressTinyPlainFile(t *testing.T) {
	rc, dt, err := MaybeDecompressReadCloser(&nopCloser{Reader: bytes.NewReader([]byte("A"))})
	if err != nil {
		t.Fatal(err)
	}
	if dt != DataTypeNoCompression {
		t.Fatalf("Expected no compression, got %s", dt)
	}
	out, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "A" {
		t.Fatalf("Got %q", out)
	}
}
