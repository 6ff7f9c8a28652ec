package middleware

import (
	"strings"

	"site-service/internal/apperr"
	"site-service/pkg/jwtutil"
	"site-service/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const ownerContextKey = "owner_id"

// ResolveOwner extracts the owning principal for the request: a bearer
// token when one is presented, otherwise the X-Owner-Id header. Requests
// without either pass through; handlers that need an owner reject them.
func ResolveOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		if token := bearerToken(c); token != "" {
			claims, err := jwtutil.ValidateToken(token)
			if err != nil {
				log.Warn("Invalid bearer token", zap.Error(err))
				return apperr.New(apperr.InvalidInput, "invalid bearer token")
			}
			ownerID, err := uuid.Parse(claims.OwnerID)
			if err != nil {
				log.Warn("Malformed owner ID in token", zap.String("owner_id", claims.OwnerID))
				return apperr.New(apperr.InvalidInput, "malformed owner ID in token")
			}
			c.Set(ownerContextKey, ownerID)
			c.Set("logger", log.With(zap.String("owner_id", ownerID.String())))
			return next(c)
		}

		if header := c.Request().Header.Get("X-Owner-Id"); header != "" {
			ownerID, err := uuid.Parse(header)
			if err != nil {
				log.Warn("Malformed X-Owner-Id header", zap.String("value", header))
				return apperr.New(apperr.InvalidInput, "malformed X-Owner-Id header")
			}
			c.Set(ownerContextKey, ownerID)
			c.Set("logger", log.With(zap.String("owner_id", ownerID.String())))
		}

		return next(c)
	}
}

// OwnerID returns the owner resolved for this request
func OwnerID(c echo.Context) (uuid.UUID, error) {
	ownerID, ok := c.Get(ownerContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, apperr.New(apperr.InvalidInput, "owner ID is required")
	}
	return ownerID, nil
}

func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return auth[7:]
	}
	return ""
}
