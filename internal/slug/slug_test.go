package slug

import "testing"

func TestDerive(t *testing.T) {
	tests := []struct {
		namespace string
		want      string
	}{
		{"github.com/acme/BlogTools", "blog-tools"},
		{"github.com/acme/blog-tools", "blog-tools"},
		{"acme/Blog", "blog"},
		{"Blog", "blog"},
		{"blog_tools", "blog-tools"},
		{"MyHTTPPackage", "my-http-package"},
		{"HTTPServer", "http-server"},
		{"github.com/acme/BlogTools/", "blog-tools"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Derive(tt.namespace); got != tt.want {
			t.Errorf("Derive(%q) = %q, want %q", tt.namespace, got, tt.want)
		}
	}
}

func TestKebab(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BlogTools", "blog-tools"},
		{"blogTools", "blog-tools"},
		{"blog tools", "blog-tools"},
		{"blog.tools", "blog-tools"},
		{"already-kebab", "already-kebab"},
		{"__Blog__", "blog"},
		{"V2Migrations", "v2-migrations"},
	}

	for _, tt := range tests {
		if got := Kebab(tt.in); got != tt.want {
			t.Errorf("Kebab(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDeriveStable(t *testing.T) {
	first := Derive("github.com/acme/BlogTools")
	for i := 0; i < 3; i++ {
		if got := Derive("github.com/acme/BlogTools"); got != first {
			t.Fatalf("Derive not stable: %q vs %q", got, first)
		}
	}
}
