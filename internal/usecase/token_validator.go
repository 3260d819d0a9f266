package usecase

import (
	"table-booking/internal/domain/user"
	"table-booking/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the actor of a request
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Actor, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Actor, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Actor{}, "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, "", err
	}

	return user.NewActor(claims.UserID, role), role, nil
}
