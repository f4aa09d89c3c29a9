package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"reelskills-backend/config"
	"reelskills-backend/internal/delivery/http/response"
	"reelskills-backend/internal/domain"
	"reelskills-backend/pkg/auth"
	"reelskills-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// KeyFunc resolves RS256 verification keys within the request context.
type KeyFunc func(ctx context.Context) jwt.Keyfunc

var errHMACNotConfigured = errors.New("HS256 token received but SUPABASE_JWT_SECRET is not configured")

// AuthMiddleware verifies the Supabase access token and builds the request
// session. The session moves from uninitialized through initializing to ready,
// or to error when the profile cannot be loaded.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, profileUC domain.ProfileUsecase) gin.HandlerFunc {
	var rsaKeys KeyFunc
	if jwksProvider != nil {
		rsaKeys = jwksProvider.KeyFunc
	}
	return authMiddleware(rsaKeys, cfg.SupabaseJWTSecret, profileUC)
}

// verificationKey picks the key by algorithm: HS256 uses the shared secret,
// RS256 the JWKS keys.
func verificationKey(ctx context.Context, rsaKeys KeyFunc, hmacSecret string) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
			if hmacSecret == "" {
				return nil, errHMACNotConfigured
			}
			return []byte(hmacSecret), nil
		}
		if _, ok := token.Method.(*jwt.SigningMethodRSA); ok && rsaKeys != nil {
			return rsaKeys(ctx)(token)
		}
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
}

func authMiddleware(rsaKeys KeyFunc, hmacSecret string, profileUC domain.ProfileUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := &domain.Session{State: domain.SessionUninitialized}
		setSession(c, session)

		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, verificationKey(c.Request.Context(), rsaKeys, hmacSecret))
		if err != nil || !token.Valid {
			logger.Log.Debug("Token validation failed", "error", err)
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		if sub == "" {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		session.State = domain.SessionInitializing
		session.UserID = sub
		session.Email = email

		profile, err := profileUC.EnsureProfile(c.Request.Context(), sub, email)
		if err != nil || profile == nil {
			session.State = domain.SessionError
			session.Err = err
			logger.Log.Error("Session initialization failed", "user_id", sub, "error", err)
			response.Error(c, http.StatusUnauthorized, "Unable to initialize session", nil)
			c.Abort()
			return
		}

		session.State = domain.SessionReady
		session.ProfileID = profile.ID
		session.Role = profile.Role
		if session.Role == "" {
			session.Role = domain.RoleCandidate
		}

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), session.Role)

		c.Next()
	}
}

func setSession(c *gin.Context, s *domain.Session) {
	c.Set(string(domain.KeySession), s)
	c.Request = c.Request.WithContext(domain.WithSession(c.Request.Context(), s))
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}
