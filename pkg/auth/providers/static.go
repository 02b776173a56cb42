package providers

import (
	"context"
	"sync"
)

var _ AuthProvider = &StaticAuthProvider{}

// StaticAuthProvider accepts a fixed set of tokens. It backs local servers
// that run without Firebase.
type StaticAuthProvider struct {
	lock   sync.RWMutex
	tokens map[string]TokenClaims
}

func NewStaticAuthProvider(tokens map[string]TokenClaims) *StaticAuthProvider {
	p := &StaticAuthProvider{tokens: make(map[string]TokenClaims, len(tokens))}
	for token, claims := range tokens {
		p.tokens[token] = claims
	}
	return p
}

// Add accepts token from now on.
func (p *StaticAuthProvider) Add(token string, claims TokenClaims) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.tokens[token] = claims
}

func (p *StaticAuthProvider) VerifyToken(_ context.Context, idToken string) (*TokenClaims, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	claims, ok := p.tokens[idToken]
	if !ok || idToken == "" {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
