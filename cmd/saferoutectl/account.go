package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/form"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/session"
)

func (a *app) newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check the --email/--password credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.timeout(cmd)
			defer cancel()
			s, err := a.login(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Login OK: %s\n", s.Email())
			return nil
		},
	}
}

func (a *app) newRegisterCmd() *cobra.Command {
	var name, phone string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account with --email/--password",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.timeout(cmd)
			defer cancel()

			f := &form.RegisterForm{Name: name, Email: a.email, Password: a.password}
			f.SetPhone(phone)

			gate := session.NewGate(a.client.Users(), session.WithLogger(a.log))
			u, err := gate.Register(ctx, f)
			if err != nil {
				msg := session.RegisterFailureMessage(err)
				if msg == session.MsgWeakPassword {
					fmt.Fprintln(cmd.ErrOrStderr(), form.PasswordHint)
				}
				return fmt.Errorf("%s: %w", msg, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", session.MsgRegistered, u.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number; non-digits are dropped (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}
