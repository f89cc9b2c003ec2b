package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/form"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/screens"
)

func (a *app) newSafePlacesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "safe-places",
		Aliases: []string{"places"},
		Short:   "List and manage safe places",
	}
	cmd.AddCommand(a.newSafePlacesListCmd())
	cmd.AddCommand(a.newSafePlaceSaveCmd(false))
	cmd.AddCommand(a.newSafePlaceSaveCmd(true))
	cmd.AddCommand(a.newSafePlaceDeleteCmd())
	return cmd
}

func (a *app) safePlacesScreen(cmd *cobra.Command) (*screens.SafePlacesScreen, error) {
	s, err := a.login(cmd.Context())
	if err != nil {
		return nil, err
	}
	return screens.NewSafePlacesScreen(s, a.client.SafePlaces(), a.opts()...)
}

func (a *app) newSafePlacesListCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List safe places, optionally filtered by --name",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.timeout(cmd)
			defer cancel()
			cmd.SetContext(ctx)

			s, err := a.safePlacesScreen(cmd)
			if err != nil {
				return err
			}
			if err := s.Load(ctx); err != nil {
				return report(cmd, s, err)
			}
			s.SetNameFilter(name)
			for _, p := range s.Visible() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d\n", p.ID, p.Name, p.Address, p.Capacity)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Case-insensitive name filter")
	return cmd
}

func (a *app) newSafePlaceSaveCmd(update bool) *cobra.Command {
	var (
		id int64
		in form.SafePlaceForm
	)
	use, short := "create", "Register a safe place"
	if update {
		use, short = "update", "Edit a safe place"
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.timeout(cmd)
			defer cancel()
			cmd.SetContext(ctx)

			s, err := a.safePlacesScreen(cmd)
			if err != nil {
				return err
			}
			var existing *types.SafePlace
			if update {
				if err := s.Load(ctx); err != nil {
					return report(cmd, s, err)
				}
				if existing = findByID(s.Items(), id, func(p types.SafePlace) int64 { return p.ID }); existing == nil {
					return fmt.Errorf("safe place %d not found", id)
				}
			}
			if err := s.OpenForm(existing); err != nil {
				return err
			}
			f, _ := s.Form()
			fl := cmd.Flags()
			setIfChanged(fl, "name", &f.Name, in.Name)
			setIfChanged(fl, "address", &f.Address, in.Address)
			setIfChanged(fl, "lat", &f.Latitude, in.Latitude)
			setIfChanged(fl, "long", &f.Longitude, in.Longitude)
			setIfChanged(fl, "capacity", &f.Capacity, in.Capacity)
			return report(cmd, s, s.Submit(ctx))
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&in.Name, "name", "", "Name")
	fl.StringVar(&in.Address, "address", "", "Address")
	fl.StringVar(&in.Latitude, "lat", "", "Latitude")
	fl.StringVar(&in.Longitude, "long", "", "Longitude")
	fl.StringVar(&in.Capacity, "capacity", "", "Capacity")
	if update {
		fl.Int64Var(&id, "id", 0, "Safe place ID (required)")
		_ = cmd.MarkFlagRequired("id")
	}
	return cmd
}

func (a *app) newSafePlaceDeleteCmd() *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a safe place",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.timeout(cmd)
			defer cancel()
			cmd.SetContext(ctx)

			s, err := a.safePlacesScreen(cmd)
			if err != nil {
				return err
			}
			_, err = s.Delete(ctx, id, a.confirm(cmd))
			return report(cmd, s, err)
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "Safe place ID (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
