package request

import "strings"

const (
	ClientTypeWeb    = "web"
	ClientTypeMobile = "mobile"
)

// ResolveClientType prefers the explicit X-Client-Type header and falls
// back to sniffing the user agent. Browsers get cookie-based tokens,
// everything else gets tokens in the response body only.
func ResolveClientType(header, userAgent string) string {
	switch strings.ToLower(strings.TrimSpace(header)) {
	case ClientTypeWeb:
		return ClientTypeWeb
	case ClientTypeMobile:
		return ClientTypeMobile
	}

	if strings.Contains(userAgent, "Mozilla") {
		return ClientTypeWeb
	}
	return ClientTypeMobile
}

func IsWebClient(clientType string) bool {
	return clientType == ClientTypeWeb
}
