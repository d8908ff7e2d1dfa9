package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSWildcard(t *testing.T) {
	p := corsPolicy{allowedOrigins: []string{"*"}}

	h := p.headers("https://evil.example.com")
	assert.Equal(t, "*", h["Access-Control-Allow-Origin"])
	assert.NotContains(t, h, "Access-Control-Allow-Credentials")
	assert.Equal(t, "application/json", h["Content-Type"])
}

func TestCORSAllowListMatch(t *testing.T) {
	p := corsPolicy{allowedOrigins: []string{"https://app.example.com", "https://staging.example.com"}}

	h := p.headers("https://staging.example.com")
	assert.Equal(t, "https://staging.example.com", h["Access-Control-Allow-Origin"])
	assert.Equal(t, "true", h["Access-Control-Allow-Credentials"])
}

func TestCORSAllowListMiss(t *testing.T) {
	p := corsPolicy{allowedOrigins: []string{"https://app.example.com"}}

	h := p.headers("https://evil.example.com")
	assert.NotContains(t, h, "Access-Control-Allow-Origin")
	assert.NotContains(t, h, "Access-Control-Allow-Credentials")
	assert.Equal(t, allowedMethods, h["Access-Control-Allow-Methods"])
}

func TestRespondSerializesBody(t *testing.T) {
	resp := respond(200, map[string]string{"ok": "yes"}, map[string]string{"Content-Type": "application/json"})
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"ok":"yes"}`, resp.Body)
}
