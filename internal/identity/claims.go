package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry reads the exp claim of an ID token without verifying the
// signature; verification is the API server's job. A token whose expiry
// cannot be read is treated as already expired.
func tokenExpiry(tokenString string) time.Time {
	claims := parseClaims(tokenString)
	if claims == nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// tokenUserID reads the subject (user id) claim of an ID token, unverified.
func tokenUserID(tokenString string) string {
	claims := parseClaims(tokenString)
	if claims == nil {
		return ""
	}

	if uid, ok := claims["user_id"].(string); ok && uid != "" {
		return uid
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

func parseClaims(tokenString string) jwt.MapClaims {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}
