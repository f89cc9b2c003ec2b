package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/form"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/screens"
)

func (a *app) newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List and manage events",
	}
	cmd.AddCommand(a.newEventsListCmd())
	cmd.AddCommand(a.newEventSaveCmd(false))
	cmd.AddCommand(a.newEventSaveCmd(true))
	cmd.AddCommand(a.newEventDeleteCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "risk-levels",
		Short: "List accepted risk levels",
		// No server call, so no login either.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, o := range screens.RiskOptions() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", o.Value, o.Label)
			}
			return nil
		},
	})
	return cmd
}

func (a *app) eventsScreen(cmd *cobra.Command) (*screens.EventsScreen, error) {
	s, err := a.login(cmd.Context())
	if err != nil {
		return nil, err
	}
	return screens.NewEventsScreen(s, a.client.Events(), a.opts()...)
}

func (a *app) newEventsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List events",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.timeout(cmd)
			defer cancel()
			cmd.SetContext(ctx)

			s, err := a.eventsScreen(cmd)
			if err != nil {
				return err
			}
			if err := s.Load(ctx); err != nil {
				return report(cmd, s, err)
			}
			for _, e := range s.Items() {
				printEvent(cmd, e)
			}
			return nil
		},
	}
}

func printEvent(cmd *cobra.Command, e types.Event) {
	fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\t(%s, %s)\n",
		e.ID, e.EventType, e.RiskLevel.Label(), e.EventDate.Display(), e.Description,
		form.FormatFloat(e.Latitude), form.FormatFloat(e.Longitude))
}

// newEventSaveCmd builds "create", or "update" when update is true. Update
// starts from the stored event and applies only the flags that were set.
func (a *app) newEventSaveCmd(update bool) *cobra.Command {
	var (
		id int64
		in form.EventForm
	)
	use, short := "create", "Register an event"
	if update {
		use, short = "update", "Edit an event"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.timeout(cmd)
			defer cancel()
			cmd.SetContext(ctx)

			s, err := a.eventsScreen(cmd)
			if err != nil {
				return err
			}

			var existing *types.Event
			if update {
				if err := s.Load(ctx); err != nil {
					return report(cmd, s, err)
				}
				if existing = findByID(s.Items(), id, func(e types.Event) int64 { return e.ID }); existing == nil {
					return fmt.Errorf("event %d not found", id)
				}
			}
			if err := s.OpenForm(ctx, existing); err != nil {
				return report(cmd, s, err)
			}

			f, _ := s.Form()
			fl := cmd.Flags()
			setIfChanged(fl, "type", &f.EventType, in.EventType)
			setIfChanged(fl, "description", &f.Description, in.Description)
			setIfChanged(fl, "date", &f.EventDate, in.EventDate)
			setIfChanged(fl, "risk", &f.RiskLevel, in.RiskLevel)
			setIfChanged(fl, "lat", &f.Latitude, in.Latitude)
			setIfChanged(fl, "long", &f.Longitude, in.Longitude)

			return report(cmd, s, s.Submit(ctx))
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&in.EventType, "type", "", "Event type, e.g. Enchente")
	fl.StringVar(&in.Description, "description", "", "Description")
	fl.StringVar(&in.EventDate, "date", "", "Event date, YYYY-MM-DDTHH:mm (default now)")
	fl.StringVar(&in.RiskLevel, "risk", "", "Risk level: Low, Medium or High")
	fl.StringVar(&in.Latitude, "lat", "", "Latitude")
	fl.StringVar(&in.Longitude, "long", "", "Longitude")
	if update {
		fl.Int64Var(&id, "id", 0, "Event ID (required)")
		_ = cmd.MarkFlagRequired("id")
	} else {
		_ = cmd.MarkFlagRequired("type")
	}
	return cmd
}

func (a *app) newEventDeleteCmd() *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.timeout(cmd)
			defer cancel()
			cmd.SetContext(ctx)

			s, err := a.eventsScreen(cmd)
			if err != nil {
				return err
			}
			_, err = s.Delete(ctx, id, a.confirm(cmd))
			return report(cmd, s, err)
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "Event ID (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
