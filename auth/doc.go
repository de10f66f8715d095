// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and signed session tokens.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(plaintext)
	err = auth.CheckPassword(hash, submitted)

CheckPassword returns ErrWrongPassword on mismatch so handlers can map it
straight to 401.

# Tokens

Login issues an HS256 JWT embedding {UserID, Email}:

	token, err := auth.GenerateToken(user.UserID, user.Email, secret, ttl)

The expiry is a relative TTL added to the issue time. Verification returns
the decoded claims, or ErrInvalidToken for any signature, format, or expiry
failure:

	claims, err := auth.VerifyToken(token, secret)

The middleware package builds the request gate on top of VerifyToken.
*/
package auth
