package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken covers malformed, expired and badly signed tokens
	ErrInvalidToken = errors.New("invalid token")
	// ErrWrongTokenType is returned when an access token is used as a refresh token or vice versa
	ErrWrongTokenType = errors.New("wrong token type")
)

// Manager mints and parses HS256 session tokens
type Manager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewManager creates a token manager from config
func NewManager(cfg models.JWTConfig) *Manager {
	return &Manager{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}
}

// GeneratePair mints an access and a refresh token for user
func (m *Manager) GeneratePair(user *models.User) (models.TokenPair, error) {
	access, accessExp, err := m.generate(user, models.TokenTypeAccess, m.accessTTL)
	if err != nil {
		return models.TokenPair{}, err
	}
	refresh, refreshExp, err := m.generate(user, models.TokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return models.TokenPair{}, err
	}

	return models.TokenPair{
		Access:           access,
		Refresh:          refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (m *Manager) generate(user *models.User, typ models.TokenType, ttl time.Duration) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(ttl)

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    string(user.Role),
		"typ":     string(typ),
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
		"iss":     m.issuer,
	}
	if user.ClinicID != nil {
		claims["clinic_id"] = user.ClinicID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign %s token: %w", typ, err)
	}

	return signed, time.Unix(expiresAt.Unix(), 0), nil
}

// Parse validates tokenString and checks it is of the expected type
func (m *Manager) Parse(tokenString string, expected models.TokenType) (*models.TokenClaims, error) {
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	token, err := parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if m.issuer != "" && !mc.VerifyIssuer(m.issuer, true) {
		return nil, ErrInvalidToken
	}

	claims, err := toClaims(mc)
	if err != nil {
		return nil, err
	}
	if claims.Type != expected {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

func toClaims(mc jwt.MapClaims) (*models.TokenClaims, error) {
	userIDStr, _ := mc["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	jti, _ := mc["jti"].(string)
	if jti == "" {
		return nil, ErrInvalidToken
	}

	exp, ok := mc["exp"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	role, _ := mc["role"].(string)
	typ, _ := mc["typ"].(string)

	claims := &models.TokenClaims{
		UserID:    userID,
		Role:      models.Role(role),
		Type:      models.TokenType(typ),
		TokenID:   jti,
		ExpiresAt: time.Unix(int64(exp), 0),
	}

	if raw, ok := mc["clinic_id"].(string); ok && raw != "" {
		clinicID, err := uuid.Parse(raw)
		if err != nil {
			return nil, ErrInvalidToken
		}
		claims.ClinicID = &clinicID
	}
	return claims, nil
}
