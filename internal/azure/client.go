package azure

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/azdo-tools/adofetch/internal/logging"
)

// DefaultBaseURL is the root URL of the Azure DevOps REST API.
const DefaultBaseURL = "https://dev.azure.com"

// apiVersion is the work item API version requested on every call.
const apiVersion = "7.0"

// Client is a thin HTTP client for the Azure DevOps work item REST API.
// It performs one authenticated GET per call; there is no caching and no
// retrying.
type Client struct {
	baseURL    string
	pat        string
	httpClient *http.Client
}

// NewClient creates a new work item API client. The baseURL is normally
// DefaultBaseURL; tests inject a local server URL. The pat is a personal
// access token used as the password half of HTTP Basic authentication.
func NewClient(baseURL, pat string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		pat:     pat,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetWorkItem fetches a single work item. HTTP error statuses and transport
// faults (including timeouts) are both reported as a *FetchError; the two
// cases are distinguished by the error's fields, not by the caller's
// handling, since neither is retried.
func (c *Client) GetWorkItem(ctx context.Context, ref URLComponents) (*WorkItem, error) {
	apiURL := fmt.Sprintf("%s/%s/%s/_apis/wit/workitems/%d?api-version=%s",
		c.baseURL, ref.Organization, url.PathEscape(ref.Project),
		ref.WorkItemID, apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build work item request: %w", err)
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(":" + c.pat))
	req.Header.Set("Authorization", "Basic "+credentials)
	req.Header.Set("Content-Type", "application/json")

	logging.Debug("fetching work item",
		"organization", ref.Organization,
		"project", ref.Project,
		"work_item_id", ref.WorkItemID,
		"pat", logging.MaskSensitive(c.pat))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{WorkItemID: ref.WorkItemID, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{WorkItemID: ref.WorkItemID, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logging.Debug("work item request failed",
			"status_code", resp.StatusCode,
			"work_item_id", ref.WorkItemID)
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			WorkItemID: ref.WorkItemID,
		}
	}

	var item WorkItem
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("failed to parse work item response: %w", err)
	}

	return &item, nil
}
