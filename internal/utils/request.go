package utils

import (
	"net"
	"net/http"
	"strings"
)

// GetClientIP isteğin gerçek istemci IP'sini döner; proxy header'larını
// sırasıyla dener, sonra RemoteAddr'a düşer
func GetClientIP(r *http.Request) string {
	// X-Forwarded-For: client, proxy1, proxy2
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
