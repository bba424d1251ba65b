// Package client talks to the bookshelf server over gRPC.
//
// GRPCClient keeps the access token obtained by Login and attaches it to
// every call as "authorization: Bearer <token>". Status codes are mapped
// back to the sentinel kinds of internal/common, so callers match errors
// with errors.Is exactly as the server does; ErrUnavailable covers
// transport failures.
package client
