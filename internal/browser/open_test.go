package browser

import (
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		link string
		ok   bool
	}{
		{"https://zohar.example/reel", true},
		{"http://localhost:4000/uploads/media/a.png", true},
		{"file:///etc/passwd", false},
		{"javascript:alert(1)", false},
		{"/uploads/media/a.png", false},
		{"", false},
	}
	for _, tc := range tests {
		err := Check(tc.link)
		if tc.ok && err != nil {
			t.Errorf("Check(%q) = %v, want nil", tc.link, err)
		}
		if !tc.ok && !errors.Is(err, ErrUnsupportedLink) {
			t.Errorf("Check(%q) = %v, want ErrUnsupportedLink", tc.link, err)
		}
	}
}

func TestCommandPerPlatform(t *testing.T) {
	tests := map[string]string{
		"darwin":  "open",
		"linux":   "xdg-open",
		"windows": "rundll32",
	}
	for goos, want := range tests {
		cmd, err := command(goos, "https://zohar.example")
		if err != nil {
			t.Fatalf("%s: %v", goos, err)
		}
		if cmd.Args[0] != want {
			t.Errorf("%s: opener = %q, want %q", goos, cmd.Args[0], want)
		}
		if last := cmd.Args[len(cmd.Args)-1]; last != "https://zohar.example" {
			t.Errorf("%s: link arg = %q", goos, last)
		}
	}

	if _, err := command("plan9", "https://zohar.example"); err == nil {
		t.Error("expected error for unsupported OS")
	}
}

func TestOpenRejectsBadLinkWithoutLaunching(t *testing.T) {
	if err := Open("ftp://zohar.example/file"); !errors.Is(err, ErrUnsupportedLink) {
		t.Fatalf("Open = %v, want ErrUnsupportedLink", err)
	}
}
