package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"asset-management-service/internal/config"
	ports "asset-management-service/internal/core/ports/output"
)

const (
	loginBaseURL = "https://login.microsoftonline.com"
	graphBaseURL = "https://graph.microsoft.com/v1.0"
)

type graphClient struct {
	tenantID     string
	clientID     string
	clientSecret string
	siteID       string
	driveID      string
	client       *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewGraphClient creates a Microsoft Graph client adapter authenticating with
// application (client credentials) permissions.
func NewGraphClient(cfg *config.GraphConfig) ports.GraphClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &graphClient{
		tenantID:     cfg.TenantID,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		siteID:       cfg.SiteID,
		driveID:      cfg.DriveID,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// ============================================================================
// Authentication
// ============================================================================

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

func (c *graphClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Refresh a minute early so in-flight requests never carry an expired token.
	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-time.Minute)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("scope", "https://graph.microsoft.com/.default")
	form.Set("grant_type", "client_credentials")

	tokenURL := fmt.Sprintf("%s/%s/oauth2/v2.0/token", loginBaseURL, c.tenantID)
	req, err := http.NewRequestWithContext(ctx, "POST", tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request graph token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("graph token request failed: %s: %s", resp.Status, body)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("decode graph token: %w", err)
	}

	c.accessToken = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

// ============================================================================
// Drive Items
// ============================================================================

type graphError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// EnsureFolder creates every missing segment of path under the drive root.
// Returns created=false when the full path already existed.
func (c *graphClient) EnsureFolder(ctx context.Context, path string) (bool, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return false, fmt.Errorf("empty folder path")
	}

	created := false
	parent := ""
	for _, segment := range segments {
		segmentCreated, err := c.createFolder(ctx, parent, segment)
		if err != nil {
			return false, err
		}
		created = segmentCreated
		if parent == "" {
			parent = segment
		} else {
			parent = parent + "/" + segment
		}
	}

	return created, nil
}

// createFolder issues the children create with conflictBehavior=fail so an
// existing folder comes back as a nameAlreadyExists conflict, not an overwrite.
func (c *graphClient) createFolder(ctx context.Context, parent, name string) (bool, error) {
	token, err := c.token(ctx)
	if err != nil {
		return false, err
	}

	var reqURL string
	if parent == "" {
		reqURL = fmt.Sprintf("%s/sites/%s/drives/%s/root/children", graphBaseURL, c.siteID, c.driveID)
	} else {
		reqURL = fmt.Sprintf("%s/sites/%s/drives/%s/root:/%s:/children",
			graphBaseURL, c.siteID, c.driveID, escapePath(parent))
	}

	body := map[string]interface{}{
		"name":                              name,
		"folder":                            map[string]interface{}{},
		"@microsoft.graph.conflictBehavior": "fail",
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, strings.NewReader(string(payload)))
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("create drive folder: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusOK:
		return true, nil
	case resp.StatusCode == http.StatusConflict:
		return false, nil
	default:
		var gerr graphError
		if err := json.NewDecoder(resp.Body).Decode(&gerr); err == nil {
			if gerr.Error.Code == "nameAlreadyExists" {
				return false, nil
			}
			return false, fmt.Errorf("create drive folder %q: %s: %s", name, resp.Status, gerr.Error.Message)
		}
		return false, fmt.Errorf("create drive folder %q: %s", name, resp.Status)
	}
}

// escapePath escapes each path segment for the drive-item path addressing form.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

// Ensure interface compliance
var _ ports.GraphClient = (*graphClient)(nil)
