// Package cmd provides the command-line interface for the adofetch tool.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/azdo-tools/adofetch/internal/azure"
	"github.com/azdo-tools/adofetch/internal/config"
	"github.com/azdo-tools/adofetch/internal/logging"
	"github.com/azdo-tools/adofetch/internal/text"
	"github.com/azdo-tools/adofetch/pkg/models"
)

var rootCmd = &cobra.Command{
	Use:   "adofetch <work-item-url>",
	Short: "Fetch an Azure DevOps work item and print its details as JSON",
	Long: `Fetch a single Azure DevOps work item by its web URL and print a
normalized JSON record to standard output.

The record contains the work item's id, title, plain-text description,
state, type, assignee, canonical URL, and the first Figma link found in
the description, if any.

Accepted URL formats:
  https://dev.azure.com/{org}/{project}/_workitems/edit/{id}
  https://dev.azure.com/{org}/{project}/_workitems/view/{id}

The ADO_PAT environment variable must hold an Azure DevOps Personal
Access Token with read access to the project.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().DurationP("timeout", "t", 30*time.Second, "timeout for the work item request")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// run is the whole pipeline: argument and credential checks, then
// parse -> fetch -> normalize/extract -> print.
//
// Output streams follow the observed contract: a missing URL argument
// reports usage on stderr, while a missing credential and every pipeline
// failure report a JSON error envelope on stdout. Nothing is written to
// stdout before the outcome is known.
func run(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		printUsage(cmd.ErrOrStderr())
		return fmt.Errorf("missing work item URL argument")
	}

	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return printError(cmd.OutOrStdout(), err)
	}

	record, err := fetchTicket(cmd.Context(), args[0], cfg, timeout)
	if err != nil {
		return printError(cmd.OutOrStdout(), err)
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return printError(cmd.OutOrStdout(), err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// fetchTicket resolves a work item URL into the final ticket record.
func fetchTicket(ctx context.Context, rawURL string, cfg *config.Config, timeout time.Duration) (*models.TicketRecord, error) {
	ref, err := azure.ParseWorkItemURL(rawURL)
	if err != nil {
		return nil, err
	}

	logging.Debug("parsed work item url",
		"organization", ref.Organization,
		"project", ref.Project,
		"work_item_id", ref.WorkItemID)

	client := azure.NewClient(azure.DefaultBaseURL, cfg.AzureDevOps.PAT, timeout)
	item, err := client.GetWorkItem(ctx, ref)
	if err != nil {
		return nil, err
	}

	return buildRecord(item), nil
}

// buildRecord assembles the output record from a raw work item. The Figma
// link is extracted from the raw description before normalization, since
// normalizing would decode and mangle URLs embedded in markup attributes.
func buildRecord(item *azure.WorkItem) *models.TicketRecord {
	raw := item.Fields.Description

	record := &models.TicketRecord{
		ID:          item.ID,
		Title:       item.Fields.Title,
		Description: text.Normalize(raw),
		State:       item.Fields.State,
		Type:        item.Fields.WorkItemType,
		URL:         item.Links.HTML.Href,
	}

	if name := item.AssigneeDisplayName(); name != "" {
		record.AssignedTo = &name
	}
	if link := text.FirstFigmaURL(raw); link != "" {
		record.FigmaURL = &link
	}

	return record
}

// printError writes a single-line JSON error envelope and passes the error
// back so the process exits non-zero.
func printError(w io.Writer, err error) error {
	envelope := struct {
		Error string `json:"error"`
	}{Error: err.Error()}

	out, merr := json.Marshal(envelope)
	if merr != nil {
		fmt.Fprintf(w, "{\"error\": %q}\n", err.Error())
		return err
	}

	fmt.Fprintln(w, string(out))
	return err
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: adofetch <work-item-url>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Required environment variable:")
	fmt.Fprintln(w, "  ADO_PAT  - Azure DevOps Personal Access Token")
}
