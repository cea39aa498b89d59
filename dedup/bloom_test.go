package dedup

import "testing"

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"simple", "https://example.com/path", "https://example.com/path"},
		{"utm and fragment", "https://example.com/path?utm_source=feed#section", "https://example.com/path"},
		{"uppercase host", "HTTP://Example.COM/", "http://example.com"},
		{"tracking params", "https://example.com/?fbclid=XYZ&gclid=ABC&utm_medium=1", "https://example.com"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NormalizeURL(c.url); got != c.want {
				t.Fatalf("NormalizeURL(%q) = %q; want %q", c.url, got, c.want)
			}
		})
	}
}

func TestNormalizeAndHash(t *testing.T) {
	a := NormalizeAndHash("https://example.com/story?utm_source=x", "Graft  Probe ")
	b := NormalizeAndHash("https://example.com/story", "graft probe")
	if a != b {
		t.Fatalf("hashes differ for equivalent inputs: %q vs %q", a, b)
	}
	if a == "" {
		t.Fatal("hash must not be empty")
	}

	c := NormalizeAndHash("https://example.com/other", "graft probe")
	if a == c {
		t.Fatal("different URLs must hash differently")
	}
}
