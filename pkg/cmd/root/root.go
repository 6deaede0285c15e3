/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package root

import (
	"context"
	"fmt"

	"github.com/ffalor/standup/pkg/util/auth"
	"github.com/ffalor/standup/pkg/util/csvwriter"
	"github.com/ffalor/standup/pkg/util/gh"
	"github.com/ffalor/standup/pkg/util/report"
	"github.com/ffalor/standup/pkg/util/tui"
	"github.com/spf13/cobra"
)

type RootOptions struct {
	gh      *gh.Gh
	Orgs    []string
	AutoOrg bool
	CSVPath string
}

// NewCmdRoot represents the base command when called without any subcommands
func NewCmdRoot() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "standup",
		Short:   "Show your pending github work in one place",
		Long:    "Show inbox notifications, open pull requests you authored, and issues and pull requests assigned to you, as terminal tables.",
		Example: "$ standup --org acme --auto-org",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := auth.Token()
			if err != nil {
				return err
			}

			opts.gh = gh.NewGh(token)

			return runRoot(opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Orgs, "org", nil, "Only show work under this organization (repeatable)")
	cmd.Flags().BoolVar(&opts.AutoOrg, "auto-org", false, "Also filter by the current repository's owner")
	cmd.Flags().StringVar(&opts.CSVPath, "csv", "", "Also write the tables to a csv file")

	return cmd
}

func runRoot(opts *RootOptions) error {
	ctx := context.Background()

	var owner string
	if opts.AutoOrg {
		// Best effort: outside a repository there is just nothing to add.
		if detected, err := auth.RepoOwner(ctx); err == nil {
			owner = detected
		}
	}

	orgs := orgFilters(opts.Orgs, owner)

	notifications, err := opts.gh.Notifications(ctx)
	if err != nil {
		return err
	}

	dashboard, err := opts.gh.Dashboard(ctx, orgs)
	if err != nil {
		return err
	}

	notificationRows := report.Notifications(notifications, orgs, dashboard.ViewerID)
	openPRRows := report.OpenPRs(dashboard.OpenPRs)
	assignedRows := report.Assigned(dashboard.Assigned)

	fmt.Println(tui.RenderNotifications(notificationRows))
	fmt.Println(tui.RenderOpenPRs(openPRRows))
	fmt.Println(tui.RenderAssigned(assignedRows))

	if opts.CSVPath != "" {
		return csvwriter.NewWriter().Write(opts.CSVPath, notificationRows, openPRRows, assignedRows)
	}

	return nil
}

// orgFilters combines the explicit org filters with the detected repo
// owner, if any. Always returns a fresh slice so the flag value is
// never written through.
func orgFilters(explicit []string, owner string) []string {
	orgs := append([]string(nil), explicit...)
	if owner != "" {
		orgs = append(orgs, owner)
	}

	return orgs
}
