package backend

import "testing"

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: baseURL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestImageURL_Empty(t *testing.T) {
	c := newTestClient(t, "http://localhost:4000/api")
	if got := c.ImageURL("", true); got != "" {
		t.Errorf("empty input: got %q, want \"\"", got)
	}
	if got := c.ImageURL("", false); got != "" {
		t.Errorf("empty input: got %q, want \"\"", got)
	}
}

func TestImageURL_AbsoluteUnchanged(t *testing.T) {
	c := newTestClient(t, "http://localhost:4000/api")
	for _, raw := range []string{
		"http://cdn.example.org/pic.jpg",
		"https://cdn.example.org/pic.jpg",
	} {
		if got := c.ImageURL(raw, true); got != raw {
			t.Errorf("absolute URL %q: got %q, want unchanged", raw, got)
		}
	}
}

func TestImageURL_UploadsPathPrefixedWithOrigin(t *testing.T) {
	c := newTestClient(t, "http://localhost:4000/api")
	got := c.ImageURL("/uploads/images/a.png", false)
	want := "http://localhost:4000/uploads/images/a.png"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestImageURL_NoDoublePrefixWithoutAPISuffix(t *testing.T) {
	// Base URL without a trailing /api: origin is the base URL itself.
	c := newTestClient(t, "http://localhost:4000")
	got := c.ImageURL("/uploads/x.png", false)
	want := "http://localhost:4000/uploads/x.png"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestImageURL_BareFilenameWithUpload(t *testing.T) {
	c := newTestClient(t, "http://localhost:4000/api")
	got := c.ImageURL("photo.jpg", true)
	want := "http://localhost:4000/uploads/images/photo.jpg"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestImageURL_BareValueWithoutUploadUnchanged(t *testing.T) {
	c := newTestClient(t, "http://localhost:4000/api")
	if got := c.ImageURL("photo.jpg", false); got != "photo.jpg" {
		t.Errorf("got %q, want literal value back", got)
	}
}
