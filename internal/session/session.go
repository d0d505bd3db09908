// Package session owns the authentication lifecycle: restoring persisted
// credentials, logging in, bootstrapping a bare token into a hydrated
// session, and logging out. Bootstrap failure is the sole
// authentication-invalidation path: it forces a full local logout.
package session

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"opslog-cli/internal/api"
	"opslog-cli/internal/model"
	"opslog-cli/internal/store"
)

type Controller struct {
	Client *api.Client
	Store  store.Store
}

// Session is a fully hydrated authenticated context.
type Session struct {
	Token   string
	Profile model.Profile
	Meta    model.Meta
}

// Restore reads previously persisted credentials. The profile, if present,
// is only a transient placeholder until Bootstrap re-fetches it.
func (c *Controller) Restore(ctx context.Context) (store.Credentials, error) {
	return c.Store.Load(ctx)
}

// Login submits credentials and, on success, arms the client with the new
// token. Persistence happens in Bootstrap, not here, so a failed bootstrap
// never leaves a half-written session behind. Login failure is local and
// non-destructive.
func (c *Controller) Login(ctx context.Context, username, password string) (string, error) {
	res, err := c.Client.Login(ctx, username, password)
	if err != nil {
		return "", err
	}
	c.Client.SetToken(res.Token)
	return res.Token, nil
}

// Register submits new-account fields. It never authenticates: the account
// waits for manager role assignment.
func (c *Controller) Register(ctx context.Context, p api.RegisterPayload) error {
	return c.Client.Register(ctx, p)
}

// Bootstrap turns a token into a hydrated session. Profile and metadata are
// fetched concurrently; both must succeed. Any failure means the session
// cannot be trusted: credentials are cleared locally and persistently, and
// the error is returned for the caller to surface.
func (c *Controller) Bootstrap(ctx context.Context, token string) (Session, error) {
	c.Client.SetToken(token)

	var (
		profile model.Profile
		meta    model.Meta
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.Client.Me(gctx)
		if err == nil {
			profile = p
		}
		return err
	})
	g.Go(func() error {
		m, err := c.Client.Meta(gctx)
		if err == nil {
			meta = m
		}
		return err
	})
	if err := g.Wait(); err != nil {
		c.clearLocal(ctx)
		return Session{}, err
	}

	// Persist after both fetches succeed. A failed write is not
	// session-fatal; the session simply won't survive a restart.
	_ = c.Store.Save(ctx, store.Credentials{Token: token, Profile: &profile})

	return Session{Token: token, Profile: profile, Meta: meta}, nil
}

// Logout notifies the backend best-effort (failures are swallowed; logout
// must always succeed locally) and clears the session.
func (c *Controller) Logout(ctx context.Context) {
	if c.Client.Token() != "" {
		nctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		_ = c.Client.Logout(nctx)
		cancel()
	}
	c.clearLocal(ctx)
}

func (c *Controller) clearLocal(ctx context.Context) {
	c.Client.SetToken("")
	_ = c.Store.Clear(ctx)
}
