package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/steppulse/steppulse/internal/error_values"
	"github.com/steppulse/steppulse/pkg/httputil"
)

var (
	requestIDContextKey  = "Request-ID"
	loggerContextKey     = "Logger"
	employeeIDContextKey = "Employee-ID"
	deviceIDContextKey   = "Device-ID"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		ctx := context.WithValue(r.Context(), requestIDContextKey, reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: missing token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		tokenClaims, err := s.jwtService.ParseToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, errorvalues.ErrInvalidToken):
				logger.Error("auth failed: error parsing token")
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
				return
			default:
				logger.Error("auth failed: internal error while parsing token", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "error parsing token", nil)
				return
			}
		}
		now := time.Now()
		if tokenClaims.ExpiresAt.Time.Before(now) || tokenClaims.NotBefore.Time.After(now) {
			logger.Error("tried to auth with expired or not ready token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "token expired or not ready", nil)
			return
		}
		if tokenClaims.EmployeeID == "" || tokenClaims.DeviceID == "" {
			logger.Error("invalid identity in token claims")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid token payload", nil)
			return
		}
		logger = logger.With(slog.String("employee_id", tokenClaims.EmployeeID))
		ctx := context.WithValue(r.Context(), employeeIDContextKey, tokenClaims.EmployeeID)
		ctx = context.WithValue(ctx, deviceIDContextKey, tokenClaims.DeviceID)
		ctx = context.WithValue(ctx, loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetEmployeeIDFromContext(r *http.Request) (string, error) {
	employeeID, ok := r.Context().Value(employeeIDContextKey).(string)
	if !ok || employeeID == "" {
		return "", errors.New("employee id invalid or doesn't exist")
	}
	return employeeID, nil
}

func GetDeviceIDFromContext(r *http.Request) (string, error) {
	deviceID, ok := r.Context().Value(deviceIDContextKey).(string)
	if !ok || deviceID == "" {
		return "", errors.New("device id invalid or doesn't exist")
	}
	return deviceID, nil
}
