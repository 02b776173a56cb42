package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticAuthProvider(t *testing.T) {
	p := NewStaticAuthProvider(map[string]TokenClaims{
		"good": {UID: "u1", Name: "One"},
	})
	p.Add("later", TokenClaims{UID: "u2"})

	tests := []struct {
		name    string
		token   string
		wantUID string
	}{
		{name: "known token", token: "good", wantUID: "u1"},
		{name: "added token", token: "later", wantUID: "u2"},
		{name: "unknown token", token: "bad"},
		{name: "empty token", token: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := p.VerifyToken(context.Background(), tt.token)
			if tt.wantUID == "" {
				assert.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUID, claims.UID)
		})
	}
}
