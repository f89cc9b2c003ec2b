package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/form"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/screens"
)

func (a *app) newResourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Manage the resources stocked at a safe place",
	}
	cmd.AddCommand(a.newResourcesListCmd())
	cmd.AddCommand(a.newResourceTypesCmd())
	cmd.AddCommand(a.newResourceSaveCmd(false))
	cmd.AddCommand(a.newResourceSaveCmd(true))
	cmd.AddCommand(a.newResourceDeleteCmd())
	return cmd
}

// resourcesScreen logs in, loads reference data and, when placeID is set,
// selects that place.
func (a *app) resourcesScreen(cmd *cobra.Command, placeID int64) (*screens.ResourcesScreen, error) {
	sess, err := a.login(cmd.Context())
	if err != nil {
		return nil, err
	}
	s, err := screens.NewResourcesScreen(sess, a.client.Resources(), a.client.SafePlaces(), a.client.ResourceTypes(), a.opts()...)
	if err != nil {
		return nil, err
	}
	if err := s.Load(cmd.Context()); err != nil {
		return nil, report(cmd, s, err)
	}
	if placeID != 0 {
		if err := s.SelectPlace(cmd.Context(), placeID); err != nil {
			return nil, report(cmd, s, err)
		}
	}
	return s, nil
}

func (a *app) newResourcesListCmd() *cobra.Command {
	var placeID int64
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the resources of --place-id",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.timeout(cmd)
			defer cancel()
			cmd.SetContext(ctx)

			s, err := a.resourcesScreen(cmd, placeID)
			if err != nil {
				return err
			}
			names := map[int64]string{}
			for _, rt := range s.ResourceTypes() {
				names[rt.ID] = rt.Name
			}
			for _, r := range s.Items() {
				name := r.ResourceTypeName
				if name == "" {
					name = names[r.ResourceTypeID]
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d\n", r.ID, name, r.AvailableQuantity)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&placeID, "place-id", 0, "Safe place ID (required)")
	_ = cmd.MarkFlagRequired("place-id")
	return cmd
}

func (a *app) newResourceTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List resource types",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.timeout(cmd)
			defer cancel()
			cmd.SetContext(ctx)

			s, err := a.resourcesScreen(cmd, 0)
			if err != nil {
				return err
			}
			for _, rt := range s.ResourceTypes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", rt.ID, rt.Name)
			}
			return nil
		},
	}
}

func (a *app) newResourceSaveCmd(update bool) *cobra.Command {
	var (
		id, placeID int64
		in          form.ResourceForm
	)
	use, short := "create", "Add a resource to a safe place"
	if update {
		use, short = "update", "Edit a resource"
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.timeout(cmd)
			defer cancel()
			cmd.SetContext(ctx)

			s, err := a.resourcesScreen(cmd, placeID)
			if err != nil {
				return err
			}
			var existing *types.Resource
			if update {
				if existing = findByID(s.Items(), id, func(r types.Resource) int64 { return r.ID }); existing == nil {
					return fmt.Errorf("resource %d not found at safe place %d", id, placeID)
				}
			}
			if err := s.OpenForm(existing); err != nil {
				return err
			}
			f, _ := s.Form()
			fl := cmd.Flags()
			setIfChanged(fl, "type-id", &f.ResourceTypeID, in.ResourceTypeID)
			setIfChanged(fl, "quantity", &f.AvailableQuantity, in.AvailableQuantity)
			return report(cmd, s, s.Submit(ctx))
		},
	}
	fl := cmd.Flags()
	fl.Int64Var(&placeID, "place-id", 0, "Safe place ID (required)")
	fl.StringVar(&in.ResourceTypeID, "type-id", "", "Resource type ID")
	fl.StringVar(&in.AvailableQuantity, "quantity", "", "Available quantity")
	_ = cmd.MarkFlagRequired("place-id")
	if update {
		fl.Int64Var(&id, "id", 0, "Resource ID (required)")
		_ = cmd.MarkFlagRequired("id")
	}
	return cmd
}

func (a *app) newResourceDeleteCmd() *cobra.Command {
	var id, placeID int64
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.timeout(cmd)
			defer cancel()
			cmd.SetContext(ctx)

			s, err := a.resourcesScreen(cmd, placeID)
			if err != nil {
				return err
			}
			_, err = s.Delete(ctx, id, a.confirm(cmd))
			return report(cmd, s, err)
		},
	}
	cmd.Flags().Int64Var(&placeID, "place-id", 0, "Safe place ID (required)")
	cmd.Flags().Int64Var(&id, "id", 0, "Resource ID (required)")
	_ = cmd.MarkFlagRequired("place-id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
