// Package browser hands links to the desktop's default browser.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// ErrUnsupportedLink is returned for links that are not absolute http(s) URLs.
var ErrUnsupportedLink = errors.New("browser: only http and https links can be opened")

// command builds the platform opener for link. Split out so it can be
// checked without launching anything.
func command(goos, link string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", link), nil
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", link), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", link), nil
	default:
		return nil, fmt.Errorf("browser: unsupported OS %s", goos)
	}
}

// Check reports whether link may be opened. Media and project links come
// from the API, so anything other than http(s) is refused.
func Check(link string) error {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrUnsupportedLink
	}
	return nil
}

// Open opens link in the user's default browser without waiting for it.
func Open(link string) error {
	if err := Check(link); err != nil {
		return err
	}
	cmd, err := command(runtime.GOOS, link)
	if err != nil {
		return err
	}
	return cmd.Start()
}
