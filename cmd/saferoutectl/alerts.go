package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/screens"
)

func (a *app) newAlertsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List and manage alerts",
	}
	cmd.AddCommand(a.newAlertsListCmd())
	cmd.AddCommand(a.newAlertCreateCmd())
	cmd.AddCommand(a.newAlertDeleteCmd())
	cmd.AddCommand(a.newAlertsPurgeCmd())
	return cmd
}

func (a *app) alertsScreen(cmd *cobra.Command) (*screens.AlertsScreen, error) {
	s, err := a.login(cmd.Context())
	if err != nil {
		return nil, err
	}
	return screens.NewAlertsScreen(s, a.client.Alerts(), a.client.Events(), a.opts()...)
}

func (a *app) newAlertsListCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts, optionally only those sent on --date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.timeout(cmd)
			defer cancel()
			cmd.SetContext(ctx)

			s, err := a.alertsScreen(cmd)
			if err != nil {
				return err
			}
			if date != "" {
				if err := s.SetDateFilter(date); err != nil {
					return err
				}
			}
			if err := s.Load(ctx); err != nil {
				return report(cmd, s, err)
			}
			for _, al := range s.Visible() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", al.ID, al.SentAt.Display(), al.Event, al.Message)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Only alerts sent on this date (YYYY-MM-DD or DD/MM/YYYY)")
	return cmd
}

func (a *app) newAlertCreateCmd() *cobra.Command {
	var (
		eventID       int64
		message, sent string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Send an alert about an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.timeout(cmd)
			defer cancel()
			cmd.SetContext(ctx)

			s, err := a.alertsScreen(cmd)
			if err != nil {
				return err
			}
			if err := s.OpenForm(ctx); err != nil {
				return report(cmd, s, err)
			}
			if findByID(s.EventOptions(), eventID, func(o screens.EventOption) int64 { return o.ID }) == nil {
				return fmt.Errorf("event %d not found", eventID)
			}

			f, _ := s.Form()
			f.EventID = eventID
			f.Message = message
			setIfChanged(cmd.Flags(), "sent-at", &f.SentAt, sent)
			return report(cmd, s, s.Submit(ctx))
		},
	}
	fl := cmd.Flags()
	fl.Int64Var(&eventID, "event-id", 0, "Event ID (required)")
	fl.StringVar(&message, "message", "", "Alert message (required)")
	fl.StringVar(&sent, "sent-at", "", "Send time, YYYY-MM-DDTHH:mm (default now)")
	_ = cmd.MarkFlagRequired("event-id")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func (a *app) newAlertDeleteCmd() *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete one alert",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.timeout(cmd)
			defer cancel()
			cmd.SetContext(ctx)

			s, err := a.alertsScreen(cmd)
			if err != nil {
				return err
			}
			_, err = s.Delete(ctx, id, a.confirm(cmd))
			return report(cmd, s, err)
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "Alert ID (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func (a *app) newAlertsPurgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete every alert older than 7 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.timeout(cmd)
			defer cancel()
			cmd.SetContext(ctx)

			s, err := a.alertsScreen(cmd)
			if err != nil {
				return err
			}
			ok, err := s.DeleteOlderThan7Days(ctx, a.confirm(cmd))
			if err == nil && ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%d alertas restantes\n", len(s.Items()))
			}
			return report(cmd, s, err)
		},
	}
}
