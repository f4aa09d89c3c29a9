package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwksServer(t *testing.T, kid string, pub *rsa.PublicKey) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_ = json.NewEncoder(w).Encode(JWKS{Keys: []JSONWebKey{{
			Kid: kid,
			Kty: "RSA",
			Alg: "RS256",
			Use: "sig",
			N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
		}}})
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestProvider_VerifiesRS256Token(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv, hits := jwksServer(t, "key-1", &priv.PublicKey)
	provider := NewProvider(srv.URL)

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token.Header["kid"] = "key-1"
	signed, err := token.SignedString(priv)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		parsed, err := jwt.Parse(signed, provider.KeyFunc(context.Background()))
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestProvider_UnknownKid(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv, _ := jwksServer(t, "key-1", &priv.PublicKey)
	provider := NewProvider(srv.URL)

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{"sub": "user-1"})
	token.Header["kid"] = "rotated-away"
	signed, err := token.SignedString(priv)
	require.NoError(t, err)

	_, err = jwt.Parse(signed, provider.KeyFunc(context.Background()))
	assert.Error(t, err)
}

func TestProvider_RejectsHMAC(t *testing.T) {
	provider := NewProvider("http://127.0.0.1:0/unused")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1"})
	_, err := provider.KeyFunc(context.Background())(token)
	assert.Error(t, err)
}

func TestProvider_UsesRequestContext(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv, hits := jwksServer(t, "key-1", &priv.PublicKey)
	provider := NewProvider(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = provider.PublicKey(ctx, "key-1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))

	key, err := provider.PublicKey(context.Background(), "key-1")
	require.NoError(t, err)
	assert.Equal(t, priv.PublicKey.N, key.N)
}

func TestProvider_ThrottlesRefreshOnUnknownKid(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv, hits := jwksServer(t, "key-1", &priv.PublicKey)
	provider := NewProvider(srv.URL)

	for i := 0; i < 3; i++ {
		_, err := provider.PublicKey(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrUnknownKey)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}
