package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/bookshelf/internal/client/session"
)

type fakeClient struct {
	token string

	registerErr error
	loginToken  string
	loginErr    error
	reviews     map[string]string
	reviewsErr  error
	pingErr     error

	calls  []string
	closed bool
}

func (f *fakeClient) Close() error { f.closed = true; return nil }
func (f *fakeClient) Register(ctx context.Context, username, password string) error {
	f.calls = append(f.calls, "register:"+username+":"+password)
	return f.registerErr
}
func (f *fakeClient) Login(ctx context.Context, username, password string) (string, error) {
	f.calls = append(f.calls, "login:"+username+":"+password)
	if f.loginErr != nil {
		return "", f.loginErr
	}
	f.token = f.loginToken
	return f.loginToken, nil
}
func (f *fakeClient) SetAccessToken(token string) { f.token = token }
func (f *fakeClient) PutReview(ctx context.Context, isbn, text string) (map[string]string, error) {
	f.calls = append(f.calls, "put:"+isbn+":"+text)
	return f.reviews, f.reviewsErr
}
func (f *fakeClient) DeleteReview(ctx context.Context, isbn string) (map[string]string, error) {
	f.calls = append(f.calls, "delete:"+isbn)
	return f.reviews, f.reviewsErr
}
func (f *fakeClient) GetReviews(ctx context.Context, isbn string) (map[string]string, error) {
	f.calls = append(f.calls, "get:"+isbn)
	return f.reviews, f.reviewsErr
}
func (f *fakeClient) Ping(ctx context.Context) error { return f.pingErr }

type fakeSessions struct {
	saved   *session.Session
	loadErr error
	saveErr error
	cleared bool
	closed  bool
}

func (f *fakeSessions) Save(ctx context.Context, s session.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = &s
	return nil
}
func (f *fakeSessions) Load(ctx context.Context) (*session.Session, error) {
	return f.saved, f.loadErr
}
func (f *fakeSessions) Clear(ctx context.Context) error {
	f.cleared = true
	f.saved = nil
	return nil
}
func (f *fakeSessions) Close() error { f.closed = true; return nil }

// captureOutput swaps printlnFn for the duration of the test.
func captureOutput(t *testing.T) *strings.Builder {
	t.Helper()
	var out strings.Builder
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&out, a...) }
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

// stubInputs feeds texts to getSimpleText in order and returns password for
// every getPassword call.
func stubInputs(t *testing.T, password string, texts ...string) {
	t.Helper()
	origText, origPw := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getPassword = func(io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })
}

func newTestApp(c *fakeClient, s *fakeSessions) *App {
	return &App{client: c, sessions: s}
}
