// Package common contains shared constants and sentinel errors used across
// the storefront server components.
package common

// AuthorizationHeader carries the bearer credential on inbound HTTP requests.
const AuthorizationHeader = "Authorization"

// BearerScheme is the auth scheme expected in AuthorizationHeader. It is
// matched case-insensitively.
const BearerScheme = "Bearer"
