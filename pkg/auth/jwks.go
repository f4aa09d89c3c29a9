package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	fetchTimeout    = 5 * time.Second
	minRefreshEvery = time.Minute
	maxJWKSBytes    = 1 << 20
)

var ErrUnknownKey = errors.New("jwks: signing key not found")

type JWKS struct {
	Keys []JSONWebKey `json:"keys"`
}

type JSONWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// Provider resolves Supabase RS256 verification keys. Keys are decoded once per
// refresh, and an unknown kid triggers at most one refresh per minute.
type Provider struct {
	url        string
	httpClient *http.Client

	mu        sync.Mutex
	keys      map[string]*rsa.PublicKey
	refreshed time.Time
}

func NewProvider(jwksURL string) *Provider {
	return &Provider{
		url:        jwksURL,
		httpClient: &http.Client{Timeout: fetchTimeout},
		keys:       make(map[string]*rsa.PublicKey),
	}
}

// KeyFunc binds key lookups to ctx so a refresh is abandoned with the request.
func (p *Provider) KeyFunc(ctx context.Context) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		kid, ok := token.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, errors.New("kid header not found")
		}
		return p.PublicKey(ctx, kid)
	}
}

func (p *Provider) PublicKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if key, ok := p.keys[kid]; ok {
		return key, nil
	}
	if time.Since(p.refreshed) < minRefreshEvery {
		return nil, ErrUnknownKey
	}
	if err := p.refresh(ctx); err != nil {
		return nil, err
	}
	if key, ok := p.keys[kid]; ok {
		return key, nil
	}
	return nil, ErrUnknownKey
}

// refresh replaces the key set. Callers hold p.mu.
func (p *Provider) refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return err
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("jwks fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks: unexpected status %d", resp.StatusCode)
	}

	var set JWKS
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxJWKSBytes)).Decode(&set); err != nil {
		return fmt.Errorf("jwks decode: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for i := range set.Keys {
		k := &set.Keys[i]
		if k.Kty != "RSA" || (k.Use != "" && k.Use != "sig") {
			continue
		}
		pub, err := k.PublicKey()
		if err != nil {
			continue
		}
		keys[k.Kid] = pub
	}
	p.keys = keys
	p.refreshed = time.Now()
	return nil
}

func (k *JSONWebKey) PublicKey() (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("jwk modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("jwk exponent: %w", err)
	}
	if len(nBytes) == 0 || len(eBytes) == 0 || len(eBytes) > 4 {
		return nil, errors.New("jwk: malformed RSA parameters")
	}

	var e int
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nBytes), E: e}, nil
}
