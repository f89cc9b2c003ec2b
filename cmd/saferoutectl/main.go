package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	saferoute "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/config"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/logger"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/screens"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/session"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// app carries the state shared by every sub-command of one invocation.
type app struct {
	baseURL  string
	email    string
	password string
	debug    bool
	yes      bool

	cfg    *config.Config
	log    zerolog.Logger
	client *saferoute.Client
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "saferoutectl",
		Short:         "SafeRoute command line client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.baseURL, "base-url", "", "API base URL (default $SAFEROUTE_BASE_URL or http://localhost:8080/api)")
	pf.StringVar(&a.email, "email", os.Getenv("SAFEROUTE_EMAIL"), "Login email")
	pf.StringVar(&a.password, "password", os.Getenv("SAFEROUTE_PASSWORD"), "Login password")
	pf.BoolVarP(&a.debug, "debug", "d", false, "Enable verbose debug output")
	pf.BoolVarP(&a.yes, "yes", "y", false, "Answer yes to every confirmation")

	rootCmd.AddCommand(a.newLoginCmd())
	rootCmd.AddCommand(a.newRegisterCmd())
	rootCmd.AddCommand(a.newEventsCmd())
	rootCmd.AddCommand(a.newAlertsCmd())
	rootCmd.AddCommand(a.newSafePlacesCmd())
	rootCmd.AddCommand(a.newResourcesCmd())

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := cfg.Level()
	if a.debug {
		lvl = zerolog.DebugLevel
	}
	a.log = logger.Console(cmd.ErrOrStderr(), lvl)
	log.Logger = a.log

	base := a.baseURL
	if base == "" {
		base = cfg.BaseURL
	}
	a.client, err = saferoute.New(base,
		saferoute.WithHTTPTimeout(cfg.HTTPTimeout),
		saferoute.WithLogger(a.log),
		saferoute.WithDebugLogging(a.debug || cfg.Debug),
	)
	if err != nil {
		return err
	}
	a.log.Debug().Str("base_url", base).Msg("client ready")
	return nil
}

// login opens a session with the --email/--password credentials.
func (a *app) login(ctx context.Context) (*session.Session, error) {
	gate := session.NewGate(a.client.Users(), session.WithLogger(a.log))
	s, err := gate.Login(ctx, a.email, a.password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", session.LoginFailureMessage(err), err)
	}
	return s, nil
}

// confirm answers prompts from --yes or from stdin.
func (a *app) confirm(cmd *cobra.Command) screens.Confirm {
	return func(prompt string) bool {
		if a.yes {
			return true
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s [s/N] ", prompt)
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && err != io.EOF {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "s", "sim", "y", "yes":
			return true
		}
		return false
	}
}

func (a *app) opts() []screens.Option {
	return []screens.Option{screens.WithLogger(a.log)}
}

// timeout bounds one whole command, which may issue several requests.
func (a *app) timeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 4*a.cfg.HTTPTimeout+5*time.Second)
}

type noticer interface {
	Notice() (screens.Notice, bool)
}

// report prints the screen's notice and passes err through.
func report(cmd *cobra.Command, s noticer, err error) error {
	if n, ok := s.Notice(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", n.Title(), n.Message)
	}
	return err
}
