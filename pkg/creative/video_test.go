package creative

import "testing"

func TestYouTubeVideoID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "embed path",
			raw:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "watch parameter",
			raw:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "watch parameter after other params",
			raw:  "https://www.youtube.com/watch?list=PL123456&v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "short path",
			raw:  "https://youtu.be/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "unrelated URL yields no ID",
			raw:  "https://vimeo.com/123456789",
			want: "",
		},
		{
			name: "empty",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := YouTubeVideoID(tt.raw); got != tt.want {
				t.Errorf("YouTubeVideoID(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIsVideoID(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"abc123", true},
		{"dQw4w9WgXcQ", true},
		{"ab", false},
		{"", false},
		{"https://youtu.be/abc123", false},
		{"abc 123", false},
		{"file.mp4", false},
	}

	for _, tt := range tests {
		if got := IsVideoID(tt.s); got != tt.want {
			t.Errorf("IsVideoID(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestPlaybackURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare identifier rewritten to embed form",
			raw:  "abc123",
			want: "https://www.youtube.com/embed/abc123",
		},
		{
			name: "watch URL rewritten to embed form",
			raw:  "https://www.youtube.com/watch?v=abc123",
			want: "https://www.youtube.com/embed/abc123",
		},
		{
			name: "direct absolute URL passes through",
			raw:  "https://cdn.example.com/spot.mp4",
			want: "https://cdn.example.com/spot.mp4",
		},
		{
			name: "unrecognized opaque string is absent",
			raw:  "not-a!video",
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
			if got := PlaybackURL(tt.raw, ""); got != tt.want {
				t.Errorf("PlaybackURL(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestThumbnailConvention(t *testing.T) {
	want := "https://img.youtube.com/vi/abc123/hqdefault.jpg"
	if got := YouTubeThumbnailURL("abc123"); got != want {
		t.Errorf("YouTubeThumbnailURL() = %q, want %q", got, want)
	}
}
