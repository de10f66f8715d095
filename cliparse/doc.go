// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration from CLI flags and
environment variables.

# Precedence

CLI flags win over environment variables. A .env file in the working
directory is loaded into the environment first (via godotenv), so local
development needs no exported variables.

# Settings

Required:

  - DATABASE_URL (-d): PostgreSQL connection string
  - JWT_SECRET (--jwt-secret): secret for signing session tokens

Optional:

  - PORT (-p): server port (default: 8843)
  - TOKEN_TTL (--token-ttl): token lifetime as a Go duration (default: 24h)

ParseFlags returns an error for any missing required setting; main treats
that as fatal.
*/
package cliparse
