package service

import (
	"bytes"
	"testing"
)

func TestDecodeHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    []byte
		wantErr bool
	}{
		{"plain", "00ff", []byte{0x00, 0xff}, false},
		{"prefixed", "0xABcd", []byte{0xab, 0xcd}, false},
		{"empty", "", []byte{}, false},
		{"odd", "abc", nil, true},
		{"bad_digit", "zz", nil, true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeHex(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("DecodeHex(%q) expected error", tc.in)
				}
				return
			}
			if err != nil || !bytes.Equal(got, tc.want) {
				t.Fatalf("DecodeHex(%q) = % X, %v; want % X", tc.in, got, err, tc.want)
			}
		})
	}
}

func TestDecodeHex32_Length(t *testing.T) {
	t.Parallel()

	if _, err := DecodeHex32(EncodeHex(make([]byte, 31))); err == nil {
		t.Fatal("DecodeHex32(31 bytes) expected error")
	}
	b, err := DecodeHex32(EncodeHex(bytes.Repeat([]byte{7}, 32)))
	if err != nil || b[31] != 7 {
		t.Fatalf("DecodeHex32(32 bytes) = %v, %v", b, err)
	}
}

func TestBE64(t *testing.T) {
	t.Parallel()

	if got := EncodeHex(BE64(0x0102)); got != "0000000000000102" {
		t.Fatalf("BE64(0x0102) = %s", got)
	}
}
