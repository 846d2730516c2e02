// Package azure provides functionality for interacting with the Azure DevOps
// work item REST API.
package azure

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// workItemURLPattern matches the web URL of a work item, in both its edit
// and view forms.
var workItemURLPattern = regexp.MustCompile(
	`^https?://dev\.azure\.com/([^/]+)/([^/]+)/_workitems/(?:edit|view)/(\d+)`)

// URLComponents holds the coordinates of a work item decomposed from its
// web URL.
type URLComponents struct {
	// Organization is the Azure DevOps organization name
	Organization string

	// Project is the project name, percent-decoded
	Project string

	// WorkItemID is the numeric work item identifier
	WorkItemID int
}

// ParseWorkItemURL validates a work item web URL and decomposes it into its
// organization, project and numeric identifier. The project segment is
// percent-decoded. It returns an *InvalidURLError if the URL does not match
// the expected shape.
func ParseWorkItemURL(raw string) (URLComponents, error) {
	matches := workItemURLPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if matches == nil {
		return URLComponents{}, &InvalidURLError{URL: raw}
	}

	project := matches[2]
	if decoded, err := url.PathUnescape(project); err == nil {
		// Malformed escapes are kept as-is.
		project = decoded
	}

	id, err := strconv.Atoi(matches[3])
	if err != nil {
		return URLComponents{}, &InvalidURLError{URL: raw}
	}

	return URLComponents{
		Organization: matches[1],
		Project:      project,
		WorkItemID:   id,
	}, nil
}
