package azure

import (
	"encoding/json"
)

// WorkItem is the REST API representation of a work item, limited to the
// fields the tool consumes.
type WorkItem struct {
	ID     int            `json:"id"`
	Fields WorkItemFields `json:"fields"`
	Links  WorkItemLinks  `json:"_links"`
}

// WorkItemFields contains the work item fields keyed by their System.*
// reference names.
type WorkItemFields struct {
	Title        string       `json:"System.Title"`
	Description  string       `json:"System.Description"`
	State        string       `json:"System.State"`
	WorkItemType string       `json:"System.WorkItemType"`
	AssignedTo   *IdentityRef `json:"System.AssignedTo"`
}

// WorkItemLinks holds the hyperlinks attached to a work item response.
type WorkItemLinks struct {
	HTML Link `json:"html"`
}

// Link is a single hyperlink reference.
type Link struct {
	Href string `json:"href"`
}

// IdentityRef is the assignee field of a work item. Depending on the
// organization's process template the API serializes it either as a bare
// display-name string or as an identity object; UnmarshalJSON accepts both.
type IdentityRef struct {
	DisplayName string `json:"displayName"`
	UniqueName  string `json:"uniqueName"`
}

func (r *IdentityRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.DisplayName)
	}

	// Shadow type avoids recursing into this method.
	type identityRef IdentityRef
	var obj identityRef
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = IdentityRef(obj)
	return nil
}

// AssigneeDisplayName resolves the assignee to a display name. It returns
// an empty string when the work item is unassigned.
func (w *WorkItem) AssigneeDisplayName() string {
	if w.Fields.AssignedTo == nil {
		return ""
	}
	return w.Fields.AssignedTo.DisplayName
}
