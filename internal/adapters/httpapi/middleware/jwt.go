package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// IdentityKey کلید شناسه کاربر احراز هویت شده در gin.Context
const IdentityKey = "userID"

const (
	msgNoToken      = "Unauthorized: No token provided"
	msgInvalidToken = "Unauthorized: Invalid token or user info"
)

// JWTAuthMiddleware توکن Bearer را با HS256 بررسی می‌کند و Subject را به عنوان userID قرار می‌دهد
func JWTAuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || raw == "" || raw == header {
			abortUnauthorized(c, msgNoToken)
			return
		}

		subject, err := VerifyToken(secret, raw)
		if err != nil {
			abortUnauthorized(c, msgInvalidToken)
			return
		}

		c.Set(IdentityKey, subject)
		c.Next()
	}
}

// VerifyToken امضا و انقضا را بررسی و Subject را برمی‌گرداند
func VerifyToken(secret []byte, raw string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Subject, nil
}

// SignToken توکن HS256 با Subject برابر شناسه کاربر؛ برای ابزار و تست
func SignToken(secret []byte, subject string, ttl time.Duration) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   subject,
		Issuer:    "postcms",
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Identity شناسه کاربر را از context می‌خواند؛ رشته خالی یعنی احراز هویت نشده
func Identity(c *gin.Context) string {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": false, "message": msg})
}
