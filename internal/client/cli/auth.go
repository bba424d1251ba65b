package cli

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/bookshelf/internal/client/session"
	"github.com/dmitrijs2005/bookshelf/internal/common"
)

// getSimpleText and getPassword can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) promptCredentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return "", nil, err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return "", nil, err
	}

	return userName, password, nil
}

// Register creates an account. It does not log the user in.
func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.promptCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.client.Register(ctx, userName, string(password)); err != nil {
		a.report(err)
		return err
	}

	printlnFn("User successfully registered. Now you can login")
	return nil
}

// Login authenticates and persists the token so the next start can reuse it.
// A failure to persist is logged; the in-memory login still holds.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.promptCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	reqCtx, cancel := a.requestContext(ctx)
	defer cancel()

	token, err := a.client.Login(reqCtx, userName, string(password))
	if err != nil {
		a.report(err)
		return err
	}

	a.userName = userName
	a.setMode(ModeOnline)

	if err := a.sessions.Save(ctx, session.Session{Username: userName, Token: token}); err != nil {
		log.Printf("error saving session: %s", err.Error())
	}

	printlnFn("Logged in as", userName)
	return nil
}

// Logout forgets the token locally. Tokens are stateless, so the server is
// not contacted.
func (a *App) Logout(ctx context.Context) error {
	if err := a.dropSession(ctx); err != nil {
		log.Printf("error clearing session: %s", err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}
