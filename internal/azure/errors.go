package azure

import (
	"fmt"
)

// InvalidURLError indicates that an input URL does not match the expected
// work item URL shape. It carries the offending input; the caller must
// correct it, there is nothing to retry.
type InvalidURLError struct {
	// URL is the input that failed to parse.
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("Invalid Azure DevOps URL: %s\n"+
		"Expected format: https://dev.azure.com/{org}/{project}/_workitems/edit/{id}",
		e.URL)
}

// FetchError indicates that the single work item request failed, either with
// an HTTP error status or with a transport fault. Exactly one of the two
// shapes is populated: StatusCode/Status for HTTP failures, Err for
// transport failures.
type FetchError struct {
	// StatusCode is the HTTP status code, zero for transport failures.
	StatusCode int

	// Status is the HTTP status text matching StatusCode.
	Status string

	// WorkItemID is the work item the request was for.
	WorkItemID int

	// Err is the underlying transport error, nil for HTTP failures.
	Err error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Network error: %v", e.Err)
	}
	return fmt.Sprintf("HTTP %d %s: failed to fetch work item %d. "+
		"Check that ADO_PAT is valid and has read access to this project.",
		e.StatusCode, e.Status, e.WorkItemID)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
