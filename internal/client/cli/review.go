package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"maps"
	"os"
	"slices"

	"github.com/dmitrijs2005/bookshelf/internal/client/client"
	"github.com/dmitrijs2005/bookshelf/internal/common"
)

var errNotLoggedIn = errors.New("not logged in")

func (a *App) Review(ctx context.Context, isbn string) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return errNotLoggedIn
	}

	text, err := getSimpleText(a.reader, "Enter review", os.Stdout)
	if err != nil {
		return err
	}

	reqCtx, cancel := a.requestContext(ctx)
	defer cancel()

	reviews, err := a.client.PutReview(reqCtx, isbn, text)
	if err != nil {
		a.handleAuthError(ctx, err)
		return err
	}

	printlnFn(fmt.Sprintf("Review for ISBN %s added/updated", isbn))
	printReviews(reviews)
	return nil
}

func (a *App) Unreview(ctx context.Context, isbn string) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return errNotLoggedIn
	}

	reqCtx, cancel := a.requestContext(ctx)
	defer cancel()

	reviews, err := a.client.DeleteReview(reqCtx, isbn)
	if err != nil {
		a.handleAuthError(ctx, err)
		return err
	}

	printlnFn(fmt.Sprintf("Review for ISBN %s deleted", isbn))
	printReviews(reviews)
	return nil
}

func (a *App) Reviews(ctx context.Context, isbn string) error {
	reqCtx, cancel := a.requestContext(ctx)
	defer cancel()

	reviews, err := a.client.GetReviews(reqCtx, isbn)
	if err != nil {
		a.report(err)
		return err
	}

	printReviews(reviews)
	return nil
}

// handleAuthError reports err and, when the server rejected the token,
// drops the saved session so the user is asked to log in again.
func (a *App) handleAuthError(ctx context.Context, err error) {
	a.report(err)
	if !errors.Is(err, common.ErrUnauthorized) {
		return
	}

	if errors.Is(err, common.ErrTokenExpired) {
		printlnFn("Session expired, please login again")
	} else {
		printlnFn("Session is no longer valid, please login again")
	}
	if err := a.dropSession(ctx); err != nil {
		log.Printf("error clearing session: %s", err.Error())
	}
}

func (a *App) report(err error) {
	if errors.Is(err, client.ErrUnavailable) {
		a.setMode(ModeOffline)
	}
	printlnFn("Error:", err.Error())
}

func printReviews(reviews map[string]string) {
	if len(reviews) == 0 {
		printlnFn("No reviews yet")
		return
	}
	for _, user := range slices.Sorted(maps.Keys(reviews)) {
		printlnFn(fmt.Sprintf("  %s: %s", user, reviews[user]))
	}
}
