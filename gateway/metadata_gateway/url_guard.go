package metadata_gateway

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"readlog/domain"
)

// validateTargetURL rejects anything that is not a plain, public, absolute
// HTTP(S) URL before the service fetches it on a user's behalf.
func validateTargetURL(raw string) (*url.URL, error) {
	parsed, err := validateShapeOnly(raw)
	if err != nil {
		return nil, err
	}
	if err := checkHostAllowed(parsed.Hostname()); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	return parsed, nil
}

// validateShapeOnly applies the syntactic checks without the host guard.
func validateShapeOnly(raw string) (*url.URL, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: malformed URL", domain.ErrInvalidInput)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("%w: URL must be absolute", domain.ErrInvalidInput)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: only HTTP and HTTPS schemes allowed", domain.ErrInvalidInput)
	}
	return parsed, nil
}

func checkHostAllowed(hostname string) error {
	hostname = strings.ToLower(hostname)

	if hostname == "localhost" || strings.HasPrefix(hostname, "127.") {
		return errors.New("access to localhost not allowed")
	}

	// Cloud metadata endpoints
	if hostname == "169.254.169.254" || hostname == "metadata.google.internal" {
		return errors.New("access to metadata endpoint not allowed")
	}

	for _, suffix := range []string{".local", ".internal", ".corp", ".lan"} {
		if strings.HasSuffix(hostname, suffix) {
			return errors.New("access to internal domains not allowed")
		}
	}

	if isPrivateHost(hostname) {
		return errors.New("access to private networks not allowed")
	}

	return nil
}

func isPrivateHost(hostname string) bool {
	if ip := net.ParseIP(hostname); ip != nil {
		return isPrivateIPAddress(ip)
	}

	ips, err := net.LookupIP(hostname)
	if err != nil {
		// Block on resolution failure rather than fetching blind.
		return true
	}
	for _, ip := range ips {
		if isPrivateIPAddress(ip) {
			return true
		}
	}
	return false
}

func isPrivateIPAddress(ip net.IP) bool {
	if ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
		return true
	}

	if ip4 := ip.To4(); ip4 != nil {
		switch {
		case ip4[0] == 10:
			return true
		case ip4[0] == 172 && ip4[1] >= 16 && ip4[1] <= 31:
			return true
		case ip4[0] == 192 && ip4[1] == 168:
			return true
		}
		return false
	}

	// IPv6 unique local addresses (fc00::/7)
	return ip[0] == 0xfc || ip[0] == 0xfd
}
