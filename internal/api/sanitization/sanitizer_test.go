package sanitization

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"photo.jpg", "photo.jpg"},
		{"my photo (1).png", "my_photo__1_.png"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{"evil\r\nContent-Type: text/html.jpg", "evil__Content-Type__text_html.jpg"},
		{"", "screenshot.jpg"},
		{"   ", "screenshot.jpg"},
		{"???", "screenshot.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeFilename(tt.input, "screenshot.jpg"); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	got := EscapeHTML(`<script>alert("x")</script> & more`)
	want := "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt; &amp; more"
	if got != want {
		t.Errorf("EscapeHTML() = %q, want %q", got, want)
	}
}

func TestSanitizeHeader(t *testing.T) {
	got := SanitizeHeader("New Application: Eve\r\nBcc: victim@example.com")
	want := "New Application: Eve  Bcc: victim@example.com"
	if got != want {
		t.Errorf("SanitizeHeader() = %q, want %q", got, want)
	}
}
