package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRedirect(t *testing.T) {
	const base = "https://app.test"

	tests := []struct {
		name      string
		requested string
		want      string
	}{
		{name: "relative path", requested: "/dashboard", want: "https://app.test/dashboard"},
		{name: "relative deep path", requested: "/settings/profile", want: "https://app.test/settings/profile"},
		{name: "same origin absolute", requested: "https://app.test/settings", want: "https://app.test/settings"},
		{name: "cross origin", requested: "https://evil.test/x", want: "https://app.test/dashboard"},
		{name: "unparseable", requested: "ht!tp://%%%", want: "https://app.test/dashboard"},
		{name: "empty", requested: "", want: "https://app.test/dashboard"},
		{name: "schemeless", requested: "app.test/settings", want: "https://app.test/dashboard"},
		{name: "same host different scheme", requested: "http://app.test/x", want: "https://app.test/dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRedirect(tt.requested, base))
		})
	}
}

func TestResolveRedirect_TrailingSlashOnBase(t *testing.T) {
	got := ResolveRedirect("/dashboard", "https://app.test/")
	assert.Equal(t, "https://app.test/dashboard", got)
}
