package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tcgurt/config"
	apperrors "tcgurt/pkg/app_errors"
	"tcgurt/pkg/logger"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// TokenVerifier 驗證 session token，回傳身分提供者的 user id
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

type JWTVerifier struct {
	keyfunc jwt.Keyfunc
	parser  *jwt.Parser
	jwks    *keyfunc.JWKS
}

// NewJWKSVerifier 從身分提供者的 JWKS 取得公鑰，背景定時刷新
func NewJWKSVerifier(ctx context.Context, cfg *config.IdentityConfig) (*JWTVerifier, error) {
	log := logger.WithComponent("identity")
	jwks, err := keyfunc.Get(cfg.JWKSURL, keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshTimeout:    cfg.Timeout,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			log.Warn("JWKS refresh failed", zap.Error(err))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("load jwks: %w", err)
	}

	v := NewJWTVerifier(jwks.Keyfunc, cfg.Issuer, "RS256")
	v.jwks = jwks
	return v, nil
}

// NewJWTVerifier issuer 為空時不檢查 iss
func NewJWTVerifier(kf jwt.Keyfunc, issuer string, methods ...string) *JWTVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(methods),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(5 * time.Second),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &JWTVerifier{
		keyfunc: kf,
		parser:  jwt.NewParser(opts...),
	}
}

func (v *JWTVerifier) Verify(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", apperrors.ErrUnauthenticated
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, v.keyfunc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUnauthenticated, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", apperrors.ErrUnauthenticated
	}
	return claims.Subject, nil
}

// Close 停止 JWKS 背景刷新
func (v *JWTVerifier) Close() {
	if v.jwks != nil {
		v.jwks.EndBackground()
	}
}
