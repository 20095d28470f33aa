package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cercovibrados/internal/usecase/interfaces"
)

var (
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
	pngHeader  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 13}
	webpHeader = append([]byte("RIFF\x24\x00\x00\x00"), []byte("WEBPVP8 ")...)
)

func TestDetectImageType(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
		ok   bool
	}{
		{"jpeg", jpegHeader, "image/jpeg", true},
		{"png", pngHeader, "image/png", true},
		{"webp", webpHeader, "image/webp", true},
		{"plain text", []byte("definitely not an image"), "", false},
		{"empty", nil, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DetectImageType(tc.data)
			if ok != tc.ok {
				t.Fatalf("DetectImageType ok = %v, want %v (type %q)", ok, tc.ok, got)
			}
			if tc.ok && got != tc.want {
				t.Fatalf("DetectImageType = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSaveAndRemove(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	publicPath, err := store.Save(context.Background(), "fence photo.jpg", jpegHeader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(publicPath, "/uploads/") {
		t.Fatalf("unexpected public path: %q", publicPath)
	}
	if strings.Contains(publicPath, " ") {
		t.Fatalf("expected sanitized filename, got %q", publicPath)
	}

	onDisk := filepath.Join(store.dir, filepath.Base(publicPath))
	if _, err := os.Stat(onDisk); err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}

	if err := store.Remove(context.Background(), publicPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, got %v", err)
	}
}

func TestSaveRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalImageStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = store.Save(context.Background(), "evil.jpg", []byte("#!/bin/sh\nrm -rf"))
	if !errors.Is(err, interfaces.ErrUnsupportedImageType) {
		t.Fatalf("expected ErrUnsupportedImageType, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files written, found %d", len(entries))
	}
}
