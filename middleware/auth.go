package middleware

import (
	"net/http"
	"strings"

	"Agora/pkg/context"
	"Agora/pkg/jwt"
	"Agora/pkg/log"
	"Agora/pkg/permission"
	"Agora/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth 必须登录
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}
		claims, err := parseBearer(secret, authHeader)
		if err != nil {
			log.L.Debug("invalid token", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, "Authorization 无效")
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth 允许匿名，带了 token 但无效时按匿名处理
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			if claims, err := parseBearer(secret, authHeader); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

func parseBearer(secret []byte, header string) (*jwt.Claims, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errBadScheme
	}
	return jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
}

func setClaims(c *gin.Context, claims *jwt.Claims) {
	c.Set(context.CtxUserID, claims.UserID)
	c.Set(context.CtxRole, permission.ParseRole(claims.Role))
}
