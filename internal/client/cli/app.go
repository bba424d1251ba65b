package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/bookshelf/internal/client/client"
	"github.com/dmitrijs2005/bookshelf/internal/client/config"
	"github.com/dmitrijs2005/bookshelf/internal/client/session"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// sessionStore is implemented by *session.Store.
type sessionStore interface {
	Save(ctx context.Context, s session.Session) error
	Load(ctx context.Context) (*session.Session, error)
	Clear(ctx context.Context) error
	Close() error
}

type App struct {
	config   *config.Config
	client   client.Client
	sessions sessionStore
	userName string
	Mode     Mode
	reader   *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	store, err := session.Open(ctx, c.SessionFile)
	if err != nil {
		log.Printf("error opening session store: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewBookshelfClientService(c.ServerEndpointAddr)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{config: c, client: apiClient, sessions: store, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.close()

	printlnFn("Welcome to bookshelf CLI (type 'help' for commands)")

	a.checkServer(ctx)
	a.restoreSession(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close() {
	if err := a.client.Close(); err != nil {
		log.Printf("error closing connection: %s", err.Error())
	}
	if err := a.sessions.Close(); err != nil {
		log.Printf("error closing session store: %s", err.Error())
	}
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) checkServer(ctx context.Context) {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// restoreSession picks up the last saved login. Expiry is left to the server.
func (a *App) restoreSession(ctx context.Context) {
	s, err := a.sessions.Load(ctx)
	if err != nil {
		log.Printf("error loading session: %s", err.Error())
		return
	}
	if s == nil {
		return
	}

	a.client.SetAccessToken(s.Token)
	a.userName = s.Username
	printlnFn("Restored session for", s.Username)
}

func (a *App) dropSession(ctx context.Context) error {
	a.client.SetAccessToken("")
	a.userName = ""
	return a.sessions.Clear(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	s := string(a.Mode)
	if a.userName != "" {
		s = a.userName + " " + s
	}
	return s
}

func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
