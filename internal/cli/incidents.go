package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"opslog-cli/internal/model"
	"opslog-cli/internal/workspace"
)

func newIncidentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "incidents",
		Short: "Search, inspect, create and update incidents",
	}
	cmd.AddCommand(newIncidentsSearchCmd(app))
	cmd.AddCommand(newIncidentsShowCmd(app))
	cmd.AddCommand(newIncidentsCreateCmd(app))
	cmd.AddCommand(newIncidentsUpdateCmd(app))
	cmd.AddCommand(newIncidentsChangesCmd(app))
	return cmd
}

func newIncidentsSearchCmd(app *App) *cobra.Command {
	var keyword string
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search incidents (server-side pagination)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl, err := app.authed(ctx)
			if err != nil {
				return err
			}
			params := workspace.SearchParams{Keyword: keyword, Page: page, PageSize: pageSize}.Normalize()
			res, err := ctrl.Client.SearchIncidents(ctx, params.Keyword, params.Page, params.PageSize)
			if err != nil {
				return app.finish(ctx, ctrl, err)
			}
			if app.Format == "json" {
				return writeOut(cmd, app, res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total records: %d (page %d, page size %d)\n", res.Total, params.Page, params.PageSize)
			return writeOut(cmd, app, res.Rows)
		},
	}

	cmd.Flags().StringVar(&keyword, "keyword", "", "Keyword matched across all incident fields")
	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", workspace.DefaultPageSize, "Rows per page (1-100)")
	return cmd
}

func newIncidentsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <incident-id>",
		Short: "Show one incident",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl, err := app.authed(ctx)
			if err != nil {
				return err
			}
			inc, err := ctrl.Client.GetIncident(ctx, args[0])
			if err != nil {
				return app.finish(ctx, ctrl, err)
			}
			return writeOut(cmd, app, inc)
		},
	}
}

func newIncidentsCreateCmd(app *App) *cobra.Command {
	var inc model.Incident
	var startDate, endDate string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an incident",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(inc.Component) == "" {
				return errMissingFlag("component")
			}
			if strings.TrimSpace(inc.ErrorName) == "" {
				return errMissingFlag("error-name")
			}
			// Dates are entered as YYYY-MM-DD and transmitted in the
			// backend's display format.
			inc.StartDate = workspace.ISOToDisplay(startDate)
			inc.EndDate = workspace.ISOToDisplay(endDate)

			ctx := cmd.Context()
			ctrl, err := app.authed(ctx)
			if err != nil {
				return err
			}
			id, err := ctrl.Client.CreateIncident(ctx, inc)
			if err != nil {
				return app.finish(ctx, ctrl, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Incident %s was created successfully.\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&inc.IncidentID, "incident-id", "", "Incident ID (optional; backend assigns one)")
	cmd.Flags().StringVar(&inc.ErrorName, "error-name", "", "Error name")
	cmd.Flags().StringVar(&inc.Component, "component", "", "Affected component")
	cmd.Flags().StringVar(&inc.RootCause, "root-cause", "", "Root cause")
	cmd.Flags().StringVar(&inc.Remark, "remark", "", "Remark")
	cmd.Flags().StringVar(&inc.ActionTaken, "action-taken", "", "Action taken")
	cmd.Flags().StringVar(&startDate, "start-date", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&inc.StartTime, "start-time", "", "Start time (HH:MM AM/PM)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&inc.EndTime, "end-time", "", "End time (HH:MM AM/PM)")
	return cmd
}

func newIncidentsUpdateCmd(app *App) *cobra.Command {
	var rootCause, remark, actionTaken, startTime, endTime, status string

	cmd := &cobra.Command{
		Use:   "update <incident-id>",
		Short: "Partially update an incident (only provided flags are sent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd model.IncidentUpdate
			changed := false
			set := func(flag string, dst **string, val string) {
				if cmd.Flags().Changed(flag) {
					v := val
					*dst = &v
					changed = true
				}
			}
			set("root-cause", &upd.RootCause, rootCause)
			set("remark", &upd.Remark, remark)
			set("action-taken", &upd.ActionTaken, actionTaken)
			set("start-time", &upd.StartTime, startTime)
			set("end-time", &upd.EndTime, endTime)
			set("status", &upd.Status, status)
			if !changed {
				return fmt.Errorf("nothing to update: provide at least one field flag")
			}

			ctx := cmd.Context()
			ctrl, err := app.authed(ctx)
			if err != nil {
				return err
			}
			if err := ctrl.Client.UpdateIncident(ctx, args[0], upd); err != nil {
				return app.finish(ctx, ctrl, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Incident %s was updated successfully.\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&rootCause, "root-cause", "", "Root cause")
	cmd.Flags().StringVar(&remark, "remark", "", "Remark")
	cmd.Flags().StringVar(&actionTaken, "action-taken", "", "Action taken")
	cmd.Flags().StringVar(&startTime, "start-time", "", "Start time (HH:MM AM/PM)")
	cmd.Flags().StringVar(&endTime, "end-time", "", "End time (HH:MM AM/PM)")
	cmd.Flags().StringVar(&status, "status", "", "Incident status")
	return cmd
}

func newIncidentsChangesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "changes <incident-id>",
		Short: "Show the change log of an incident",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl, err := app.authed(ctx)
			if err != nil {
				return err
			}
			changes, err := ctrl.Client.IncidentChanges(ctx, args[0])
			if err != nil {
				return app.finish(ctx, ctrl, err)
			}
			return writeOut(cmd, app, changes)
		},
	}
}
