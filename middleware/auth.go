package middleware

import (
	"net/http"
	"strings"

	"github.com/NMalikk/StayOpsApp/app/entities"
	"github.com/NMalikk/StayOpsApp/config"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// JWTAuth validates the bearer token and stores it in the request context
// for the handlers to read the staff identity from.
func JWTAuth(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid Authorization header"})
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWT.Secret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
			}

			c.Set("user", token)
			return next(c)
		}
	}
}

// ManagerOnly gates the pricing and manager report routes. It relies on
// JWTAuth having already stored the parsed token.
func ManagerOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if ExtractRole(c) != entities.RoleManager {
				return c.JSON(http.StatusForbidden, echo.Map{"error": entities.ErrAccessDenied.Error()})
			}
			return next(c)
		}
	}
}

// ExtractStaffID reads the staff id from the session token claims.
func ExtractStaffID(c echo.Context) int {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok || !token.Valid {
		return 0
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0
	}
	// JWT numbers decode as float64.
	if idFloat, ok := claims["id"].(float64); ok {
		return int(idFloat)
	}
	return 0
}

// ExtractRole reads the staff role from the session token claims.
func ExtractRole(c echo.Context) string {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok || !token.Valid {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	if role, ok := claims["role"].(string); ok {
		return role
	}
	return ""
}
