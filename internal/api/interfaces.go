package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(acc *entity.Account) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string      `json:"user_id"`
	Name   string      `json:"name"`
	Role   entity.Role `json:"role"`
}
