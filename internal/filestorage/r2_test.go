package filestorage

import (
	"mime/multipart"
	"testing"

	"github.com/papermapper/papermapper/internal/config"
	constant "github.com/papermapper/papermapper/internal/constant"
)

func newTestStorage() *R2Storage {
	return NewR2Storage(nil, &config.StorageConfig{
		BUCKET:          "papermapper",
		PUBLIC_URL_BASE: "https://pub-papermapper.r2.dev/",
	}, nil)
}

func TestExtractKeyFromURL(t *testing.T) {
	storage := newTestStorage()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"Attachment url", "https://pub-papermapper.r2.dev/questions/abc123.pdf", "questions/abc123.pdf"},
		{"Nested key", "https://pub-papermapper.r2.dev/source-materials/x/y.png", "source-materials/x/y.png"},
		{"Foreign host", "https://example.com/questions/abc123.pdf", ""},
		{"Base url only", "https://pub-papermapper.r2.dev/", ""},
		{"Empty url", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := storage.ExtractKeyFromURL(tt.url); got != tt.want {
				t.Errorf("ExtractKeyFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestPublicURLRoundTrip(t *testing.T) {
	storage := newTestStorage()

	key := "claims/note.txt"
	url := storage.PublicURL(key)
	if got := storage.ExtractKeyFromURL(url); got != key {
		t.Errorf("ExtractKeyFromURL(PublicURL(%q)) = %q, want %q", key, got, key)
	}
}

func fileHeaders(sizes ...int64) []*multipart.FileHeader {
	out := make([]*multipart.FileHeader, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, &multipart.FileHeader{Filename: "f.bin", Size: s})
	}
	return out
}

func TestValidateNewAttachments(t *testing.T) {
	tests := []struct {
		name     string
		existing int
		incoming []*multipart.FileHeader
		wantErr  bool
	}{
		{"Single small file", 0, fileHeaders(1 << 20), false},
		{"Five files total", 3, fileHeaders(1, 1), false},
		{"Too many files", 4, fileHeaders(1, 1), true},
		{"File at the per-file limit", 0, fileHeaders(constant.MaxAttachmentSize), false},
		{"File over the per-file limit", 0, fileHeaders(constant.MaxAttachmentSize + 1), true},
		{"Aggregate over the per-card limit", 0, fileHeaders(constant.MaxAttachmentSize, constant.MaxAttachmentSize, constant.MaxAttachmentSize, constant.MaxAttachmentSize, constant.MaxAttachmentSize), true},
		{"No incoming files", 5, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNewAttachments(tt.existing, tt.incoming)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNewAttachments() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
