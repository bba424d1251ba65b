package common

// AuthorizationHeaderName is the HTTP header and gRPC metadata key that
// carries the access token.
const AuthorizationHeaderName = "authorization"

// BearerScheme is the only authorization scheme the server accepts.
const BearerScheme = "Bearer"
