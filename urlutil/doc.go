// Package urlutil provides URL parsing helpers used when matching links against
// URL rules.
//
// It wraps the standard library's net/url.Parse with the checks a link chooser
// needs before a URL can be evaluated: the input must be non-empty, bounded in
// length, and carry a scheme. It also exposes accessors that present the host
// and port of a parsed URL the way rule matching compares them.
//
// # Usage
//
// Use Parse for raw links handed over by the operating system:
//
//	u, err := urlutil.Parse(rawURL)
//	if err != nil {
//		return fmt.Errorf("cannot evaluate link: %w", err)
//	}
//
// Use Hostname and Port when comparing a parsed URL component-wise:
//
//	host := urlutil.Hostname(u) // "xn--bcher-kva.de" for "https://Bücher.de/"
//	port := urlutil.Port(u)     // "" for "https://example.com:443/"
//
// # Host Normalization
//
// Hostname lowercases the host and converts internationalized names to their
// ASCII (punycode) form using golang.org/x/net/idna. IPv6 literals keep their
// surrounding brackets so they can never be confused with a host:port pair.
//
// # Default Ports
//
// Port reports an empty string when the URL's port is the well-known default
// for its scheme (80 for http and ws, 443 for https and wss, 21 for ftp).
package urlutil
