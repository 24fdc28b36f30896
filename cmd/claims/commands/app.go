// Package commands provides CLI command implementations.
package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Joud-BaniIssa/claims-go/internal/config"
	claimsapp "github.com/Joud-BaniIssa/claims-go/pkg/claims"
)

// commandTimeout bounds one CLI invocation end to end.
const commandTimeout = 60 * time.Second

// newApp assembles the application from environment configuration.
func newApp() (*claimsapp.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	return claimsapp.New(claimsapp.Config{
		APIBaseURL:  cfg.APIBaseURL,
		APITimeout:  cfg.APITimeout,
		DraftDBPath: filepath.Join(cfg.DataDir, "drafts.db"),
	})
}

// commandContext returns the context for one invocation.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

// settle blocks until the given busy flag clears, then surfaces the state
// error if one was recorded.
func settle(ctx context.Context, app *claimsapp.App, busy func(claimsapp.State) bool) (claimsapp.State, error) {
	s, err := app.WaitFor(ctx, func(s claimsapp.State) bool { return !busy(s) })
	if err != nil {
		return s, fmt.Errorf("timed out waiting for the API: %w", err)
	}
	if s.Error != "" {
		return s, fmt.Errorf("%s", s.Error)
	}
	return s, nil
}
