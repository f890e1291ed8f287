package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// Class is the traffic class a request is billed against.
type Class string

const (
	ClassAuth    Class = "auth"
	ClassAdmin   Class = "admin"
	ClassGet     Class = "get"
	ClassDefault Class = "default"
)

const (
	authPathPrefix  = "/auth"
	adminPathPrefix = "/admin"
)

// Classify maps a request path and method to a traffic class.
// First match wins: auth prefix, then admin prefix or an "admin"
// path segment, then GET, then default.
func Classify(path, method string) Class {
	switch {
	case strings.HasPrefix(path, authPathPrefix):
		return ClassAuth
	case strings.HasPrefix(path, adminPathPrefix) || strings.Contains(path, "admin"):
		return ClassAdmin
	case method == http.MethodGet:
		return ClassGet
	default:
		return ClassDefault
	}
}

// ClientAddr resolves the client address used to partition rate limit
// state. The first X-Forwarded-For entry wins when present; otherwise the
// transport peer address is used, and "unknown" when neither is available.
// The header value is taken as-is; deployments without a trusted reverse
// proxy stripping inbound X-Forwarded-For should sit behind one.
func ClientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
		if first != "" {
			return first
		}
	}
	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			return host
		}
		return r.RemoteAddr
	}
	return "unknown"
}

// Key builds the ledger key partitioning state per class and client.
func Key(class Class, clientIP string) string {
	return string(class) + ":" + clientIP
}
