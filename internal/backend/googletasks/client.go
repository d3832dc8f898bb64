// Package googletasks pushes local tasks to the user's default Google
// Tasks list. The flat file stays the source of truth; this client only
// reads open remote titles and creates missing ones.
package googletasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"taskman/internal/config"
)

const (
	// defaultListID is the Google Tasks alias for the default list.
	defaultListID = "@default"

	// pageSize is the number of remote tasks fetched per page.
	pageSize = 100

	// apiTimeout is the timeout for a single API call.
	apiTimeout = 5 * time.Second

	// OAuth scope for Google Tasks
	tasksScope = "https://www.googleapis.com/auth/tasks"
)

// Client talks to the Google Tasks API for the push command.
type Client struct {
	svc *tasks.Service
}

// New creates a client from the stored OAuth client and token files.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.OAuthClientFile, err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, tasksScope)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.OAuthClientFile, err)
	}

	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.TokenFile, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.TokenFile, err)
	}

	// Token source auto-refreshes using the refresh token.
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, &token))

	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// OpenTitles returns the titles of all open tasks on the default list.
// Used to avoid pushing duplicates.
func (c *Client) OpenTitles(ctx context.Context) (map[string]bool, error) {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	titles := make(map[string]bool)
	err := c.svc.Tasks.List(defaultListID).
		MaxResults(pageSize).
		ShowCompleted(false).
		ShowDeleted(false).
		ShowHidden(false).
		Context(ctx).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, t := range resp.Items {
				titles[t.Title] = true
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	return titles, nil
}

// Create adds one open task with the given title to the default list.
func (c *Client) Create(ctx context.Context, title string) error {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	_, err := c.svc.Tasks.Insert(defaultListID, &tasks.Task{Title: title}).Context(ctx).Do()
	if err != nil {
		return wrapError(err)
	}
	return nil
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	if strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("token expired or revoked (run: taskman login)")
	}
	if strings.Contains(errStr, "404") {
		return fmt.Errorf("not found")
	}
	return err
}
