package sniffer

import (
	"bytes"
	"errors"
	"testing"
)

func TestDetectHead(t *testing.T) {
	cases := []struct {
		name string
		head []byte
		want PhotoType
		err  bool
	}{
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0}, TypeJPEG, false},
		{"png", []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0}, TypePNG, false},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), TypeWEBP, false},
		{"gif rejected", []byte("GIF89a......"), "", true},
		{"svg rejected", []byte("<svg xmlns=\"http://www.w3.org/2000/svg\">"), "", true},
		{"empty", nil, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := DetectHead(tc.head)
			if tc.err {
				if !errors.Is(err, ErrUnsupportedType) {
					t.Fatalf("expected ErrUnsupportedType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Type != tc.want {
				t.Errorf("type = %q, want %q", result.Type, tc.want)
			}
		})
	}
}

func TestDetectReturnsConsumedHead(t *testing.T) {
	payload := append([]byte{0xff, 0xd8, 0xff, 0xe0}, bytes.Repeat([]byte{0xAB}, 600)...)
	result, head, err := Detect(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if result.Type != TypeJPEG {
		t.Errorf("type = %q, want jpeg", result.Type)
	}
	if len(head) != 512 {
		t.Errorf("head length = %d, want 512", len(head))
	}
	if !bytes.Equal(head, payload[:512]) {
		t.Error("head bytes do not match stream prefix")
	}
}
