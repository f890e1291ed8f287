package ratelimit

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		method string
		want   Class
	}{
		{"auth prefix POST", "/auth/login", "POST", ClassAuth},
		{"auth prefix GET keeps auth class", "/auth/verify", "GET", ClassAuth},
		{"admin prefix", "/admin/users", "GET", ClassAdmin},
		{"admin substring mid-path", "/api/admin/reports", "POST", ClassAdmin},
		{"plain GET", "/parts", "GET", ClassGet},
		{"POST falls to default", "/api/cars", "POST", ClassDefault},
		{"DELETE falls to default", "/cars/42", "DELETE", ClassDefault},
		{"auth wins over admin substring", "/auth/admin-tools", "GET", ClassAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path, tt.method))
		})
	}
}

func TestClientAddr_ForwardedFor(t *testing.T) {
	req := httptest.NewRequest("GET", "/parts", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.9")
	req.RemoteAddr = "192.0.2.1:4444"

	assert.Equal(t, "203.0.113.5", ClientAddr(req))
}

func TestClientAddr_PeerFallback(t *testing.T) {
	req := httptest.NewRequest("GET", "/parts", nil)
	req.RemoteAddr = "192.0.2.1:4444"

	assert.Equal(t, "192.0.2.1", ClientAddr(req))
}

func TestClientAddr_Unknown(t *testing.T) {
	req := httptest.NewRequest("GET", "/parts", nil)
	req.RemoteAddr = ""

	assert.Equal(t, "unknown", ClientAddr(req))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "auth:1.2.3.4", Key(ClassAuth, "1.2.3.4"))
	assert.Equal(t, "default:unknown", Key(ClassDefault, "unknown"))
}
