package api

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/steppulse/steppulse/pkg/entity"
)

type DeviceClaims struct {
	EmployeeID string `json:"employee_id"`
	DeviceID   string `json:"device_id"`
	jwt.RegisteredClaims
}

type JwtServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*DeviceClaims, error)
}
