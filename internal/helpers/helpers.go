package helpers

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/denmor86/bet-bankroll/internal/logger"
)

// GetUserID - извлекает идентификатор пользователя из контекста JWT токена
func GetUserID(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	userID, ok := claims["sub"].(string)
	if !ok {
		logger.Warn("Undefined user id from token")
		return "", fmt.Errorf("undefined user id")
	}
	return userID, nil
}

// GetUsername - извлекает имя пользователя из контекста JWT токена
func GetUsername(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	username, ok := claims["username"].(string)
	if !ok {
		logger.Warn("Undefined username from token")
		return "", fmt.Errorf("undefined username")
	}
	return username, nil
}

// GetRole - извлекает роль пользователя из контекста JWT токена
func GetRole(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	role, ok := claims["role"].(string)
	if !ok {
		logger.Warn("Undefined role from token")
		return "", fmt.Errorf("undefined role")
	}
	return role, nil
}
