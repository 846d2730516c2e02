// Package models defines data structures shared across the application.
package models

// TicketRecord is the normalized view of an Azure DevOps work item and the
// only output artifact of the tool. Field order here fixes the JSON key
// order of the serialized record.
type TicketRecord struct {
	// ID is the numeric work item identifier
	ID int `json:"id"`

	// Title is the work item's title field
	Title string `json:"title"`

	// Description is the plain-text rendering of the work item's
	// rich-text description
	Description string `json:"description"`

	// State is the current workflow state (e.g., "Active", "Closed")
	State string `json:"state"`

	// Type is the work item type (e.g., "Bug", "User Story")
	Type string `json:"type"`

	// AssignedTo is the assignee's display name. The key is omitted from
	// the serialized record when the item is unassigned.
	AssignedTo *string `json:"assignedTo,omitempty"`

	// URL is the canonical web URL of the work item
	URL string `json:"url"`

	// FigmaURL is the first Figma link found in the raw description, if
	// any. The key is omitted when no link is present.
	FigmaURL *string `json:"figmaUrl,omitempty"`
}
