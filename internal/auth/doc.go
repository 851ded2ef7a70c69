// Package auth provides registration, login and bearer token verification.
//
// Users register with an email and a password. The password is stored as a
// bcrypt hash and the minimum length is configurable (3 by default). Login
// returns an HS256 JWT whose subject is the user's email, carrying a unique
// token id and the user's id. Tokens are not stored and cannot be revoked;
// they expire after JWT_EXPIRY (3h by default).
//
// # Configuration
//
//	JWT_KEY=<shared secret>          # Required
//	JWT_ISSUER=shelf
//	JWT_AUDIENCE=shelf-clients
//	JWT_EXPIRY=3h
//	AUTH_BCRYPT_COST=12
//	AUTH_MIN_PASSWORD_LENGTH=3
//	AUTH_MAX_LOGIN_ATTEMPTS=5        # Per client IP and email
//	AUTH_RATE_LIMIT_WINDOW=15m
//	AUTH_LOCKOUT_DURATION=30m
//
// # Usage
//
//	issuer := auth.NewTokenIssuer(cfg.JWT)
//	service := auth.NewService(users.NewRepository(db), issuer, cfg.Auth)
//	auth.NewController(service, limiter).RegisterRoutes(api.Group("/auth"))
//	api.Group("/quotations", auth.NewBearerMiddleware(issuer).RequireBearer())
//
// Extract user in handlers:
//
//	userID := auth.GetUserID(c)
package auth
