package storage

import (
	"strings"
	"testing"
)

func TestObjectKeyKeepsExtension(t *testing.T) {
	cases := []struct {
		folder, filename, wantPrefix, wantExt string
	}{
		{"events", "photo.JPG", "events/", ".jpg"},
		{"resumes", "cv.pdf", "resumes/", ".pdf"},
		{"team", "noext", "team/", ""},
		{"", "photo.png", "", ".png"},
		{"/events/", "photo.png", "events/", ".png"},
	}
	for _, tc := range cases {
		key := objectKey(tc.folder, tc.filename)
		if tc.wantPrefix != "" && !strings.HasPrefix(key, tc.wantPrefix) {
			t.Errorf("objectKey(%q, %q) = %q, want prefix %q", tc.folder, tc.filename, key, tc.wantPrefix)
		}
		if tc.wantExt != "" && !strings.HasSuffix(key, tc.wantExt) {
			t.Errorf("objectKey(%q, %q) = %q, want suffix %q", tc.folder, tc.filename, key, tc.wantExt)
		}
		if tc.wantExt == "" && strings.Contains(strings.TrimPrefix(key, tc.wantPrefix), ".") {
			t.Errorf("objectKey(%q, %q) = %q, want no extension", tc.folder, tc.filename, key)
		}
	}
}

func TestObjectKeyIsCollisionFree(t *testing.T) {
	a := objectKey("events", "same.jpg")
	b := objectKey("events", "same.jpg")
	if a == b {
		t.Errorf("two keys for the same filename collided: %q", a)
	}
}

func TestKeyFromURL(t *testing.T) {
	s := &MediaStore{bucket: "media", baseURL: "https://cdn.example.com/media"}

	key, ok := s.keyFromURL("https://cdn.example.com/media/events/abc.jpg")
	if !ok || key != "events/abc.jpg" {
		t.Errorf("key = %q, ok = %v", key, ok)
	}

	for _, url := range []string{
		"https://other.example.com/media/events/abc.jpg",
		"https://cdn.example.com/media",
		"https://cdn.example.com/media/",
		"",
	} {
		if _, ok := s.keyFromURL(url); ok {
			t.Errorf("url %q: expected no key", url)
		}
	}
}
