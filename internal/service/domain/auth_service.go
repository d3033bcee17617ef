package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/movietracker/movietracker/internal/model"
	"github.com/movietracker/movietracker/internal/service"
)

// AuthService owns all credential work. The user directory only ever sees
// the opaque hash; plaintext passwords are never stored or logged.
type AuthService interface {
	HashPassword(plain string) (string, error)
	Authenticate(email, password string) (*model.User, error)
	IssueToken(user *model.User) (token string, exp time.Time, err error)
	ParseToken(token string) (userID string, err error)
}

type authService struct {
	users  UserService
	secret string
	ttl    time.Duration
	cost   int
}

var _ AuthService = (*authService)(nil)

func NewAuthService(users UserService, secret string, ttlMin int, bcryptCost int) *authService {
	return &authService{
		users:  users,
		secret: secret,
		ttl:    time.Duration(ttlMin) * time.Minute,
		cost:   bcryptCost,
	}
}

func (s *authService) HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *authService) Authenticate(email, password string) (*model.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, service.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return nil, service.ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) IssueToken(user *model.User) (string, time.Time, error) {
	exp := time.Now().UTC().Add(s.ttl)
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (s *authService) ParseToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", errors.New("invalid token")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token missing subject")
	}
	return sub, nil
}
