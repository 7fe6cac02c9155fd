package urlutil

import (
	"errors"
	"fmt"
	neturl "net/url"
	"strings"

	"golang.org/x/net/idna"
)

const (
	// MaxURLLength is the RFC 2616 practical limit for URL length
	MaxURLLength = 2048
)

var (
	// ErrEmpty is returned for empty or whitespace-only input.
	ErrEmpty = errors.New("url cannot be empty")
	// ErrTooLong is returned for input longer than MaxURLLength.
	ErrTooLong = errors.New("url exceeds maximum length")
	// ErrNoScheme is returned when the input is not an absolute URL.
	ErrNoScheme = errors.New("url missing scheme")
)

// defaultPorts maps schemes to the port implied when none is given.
var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"ftp":   "21",
}

// hierarchicalSchemes always carry a path, so an empty path reads as "/".
var hierarchicalSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
	"file":  true,
}

// Parse parses a raw absolute URL after trimming surrounding whitespace.
// It rejects empty input, input longer than MaxURLLength, and relative
// references without a scheme.
//
// Example:
//
//	u, err := urlutil.Parse(" https://example.com/docs ")
//	if err != nil {
//		return err
//	}
//	fmt.Println(u.Host) // example.com
func Parse(rawURL string) (*neturl.URL, error) {
	rawURL = strings.TrimSpace(rawURL)

	if rawURL == "" {
		return nil, ErrEmpty
	}

	if len(rawURL) > MaxURLLength {
		return nil, fmt.Errorf("%w of %d characters", ErrTooLong, MaxURLLength)
	}

	parsed, err := neturl.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL format: %w", err)
	}

	if parsed.Scheme == "" {
		return nil, ErrNoScheme
	}

	return parsed, nil
}

// Hostname returns the URL host without its port, lowercased and converted to
// its ASCII form. IPv6 literals are returned in brackets. An empty string is
// returned when the URL has no host.
func Hostname(u *neturl.URL) (string, error) {
	host := u.Hostname()
	if host == "" {
		return "", nil
	}

	if strings.Contains(host, ":") {
		return "[" + strings.ToLower(host) + "]", nil
	}

	if !isASCII(host) {
		ascii, err := idna.Lookup.ToASCII(host)
		if err != nil {
			return "", fmt.Errorf("invalid internationalized host %q: %w", host, err)
		}
		host = ascii
	}

	return strings.ToLower(host), nil
}

// Port returns the URL's explicit port, or an empty string when the port is
// absent or equal to the default port of the URL's scheme.
func Port(u *neturl.URL) string {
	port := u.Port()
	if port == "" {
		return ""
	}
	if def, ok := defaultPorts[strings.ToLower(u.Scheme)]; ok && def == port {
		return ""
	}
	return port
}

// DefaultPort returns the well-known port for scheme, if there is one.
func DefaultPort(scheme string) (string, bool) {
	port, ok := defaultPorts[strings.ToLower(scheme)]
	return port, ok
}

// IsHierarchical reports whether URLs of the given scheme always have a path,
// in which case an empty path is equivalent to "/".
func IsHierarchical(scheme string) bool {
	return hierarchicalSchemes[strings.ToLower(scheme)]
}

// ToASCIILabel converts a single domain label to its ASCII form. Labels that
// are already ASCII are returned lowercased and unchanged otherwise.
func ToASCIILabel(label string) (string, error) {
	if isASCII(label) {
		return strings.ToLower(label), nil
	}
	ascii, err := idna.Lookup.ToASCII(label)
	if err != nil {
		return "", fmt.Errorf("invalid internationalized label %q: %w", label, err)
	}
	return strings.ToLower(ascii), nil
}

// isASCII checks if s contains only ASCII bytes
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
