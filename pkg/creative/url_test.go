package creative

import "testing"

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		origin string
		want   string
	}{
		{
			name: "https passes through",
			raw:  "https://cdn.example.com/a.png",
			want: "https://cdn.example.com/a.png",
		},
		{
			name: "http passes through",
			raw:  "http://cdn.example.com/a.png",
			want: "http://cdn.example.com/a.png",
		},
		{
			name: "blob passes through",
			raw:  "blob:https://app.example.com/123",
			want: "blob:https://app.example.com/123",
		},
		{
			name: "data passes through",
			raw:  "data:image/png;base64,AAAA",
			want: "data:image/png;base64,AAAA",
		},
		{
			name:   "root-relative resolves against origin",
			raw:    "/assets/logo.png",
			origin: "https://app.example.com",
			want:   "https://app.example.com/assets/logo.png",
		},
		{
			name:   "origin trailing slash is collapsed",
			raw:    "/assets/logo.png",
			origin: "https://app.example.com/",
			want:   "https://app.example.com/assets/logo.png",
		},
		{
			name: "root-relative without origin is absent",
			raw:  "/assets/logo.png",
			want: "",
		},
		{
			name: "unknown scheme is absent",
			raw:  "ftp://files.example.com/a.png",
			want: "",
		},
		{
			name: "bare word is absent",
			raw:  "logo.png",
			want: "",
		},
		{
			name: "empty is absent",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.raw, tt.origin); got != tt.want {
				t.Errorf("NormalizeURL(%q, %q) = %q, want %q", tt.raw, tt.origin, got, tt.want)
			}
		})
	}
}

func TestHostnameFromURL(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{
			name:       "absolute URL with www",
			candidates: []string{"https://www.example.com/landing"},
			want:       "example.com",
		},
		{
			name:       "first well-formed wins",
			candidates: []string{"", "not a url", "https://shop.example.org/x?y=1"},
			want:       "shop.example.org",
		},
		{
			name:       "schemeless display URL heuristic",
			candidates: []string{"www.example.com/deals"},
			want:       "example.com",
		},
		{
			name:       "bare domain",
			candidates: []string{"example.io"},
			want:       "example.io",
		},
		{
			name:       "nothing usable",
			candidates: []string{"", "just words here"},
			want:       "",
		},
		{
			name:       "no candidates",
			candidates: nil,
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HostnameFromURL(tt.candidates...); got != tt.want {
				t.Errorf("HostnameFromURL(%v) = %q, want %q", tt.candidates, got, tt.want)
			}
		})
	}
}
