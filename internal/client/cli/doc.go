// Package cli provides the interactive bookshelf command-line client.
//
// It wires configuration, the local session store, the gRPC client and a
// REPL. On start the CLI pings the server and restores the last saved login,
// so a token that has not expired yet is reused without a new prompt.
//
// Commands:
//   - register / login / logout
//   - review <isbn>   add or replace your review
//   - unreview <isbn> delete your review
//   - reviews <isbn>  show all reviews of a book
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
