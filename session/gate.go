package session

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/form"
	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
)

// User-facing messages.
const (
	MsgInvalidLogin   = "Login inválido"
	MsgMissingFields  = "Preencha todos os campos."
	MsgUnreachable    = "Não foi possível conectar ao servidor."
	MsgRegisterFailed = "Não foi possível registrar."
	MsgWeakPassword   = "Senha não atende aos critérios de segurança."
	MsgRegistered     = "Conta criada com sucesso!"
)

// Authenticator is the slice of the user repository the gate needs.
// *saferoute.UserRepository satisfies it.
type Authenticator interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, req types.RegisterRequest) (*types.User, error)
}

// Gate decides whether the screens may run at all.
type Gate struct {
	users Authenticator
	log   zerolog.Logger
	now   func() time.Time
}

// GateOption configures a Gate.
type GateOption func(*Gate)

// WithLogger sets the gate logger.
func WithLogger(l zerolog.Logger) GateOption { return func(g *Gate) { g.log = l } }

// WithClock overrides time.Now.
func WithClock(now func() time.Time) GateOption { return func(g *Gate) { g.now = now } }

// NewGate builds a Gate over users.
func NewGate(users Authenticator, opts ...GateOption) *Gate {
	g := &Gate{users: users, log: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Login checks the credentials and opens a Session. Missing fields fail
// with a ValidationError before any request is made.
func (g *Gate) Login(ctx context.Context, email, password string) (*Session, error) {
	req, err := (&form.LoginForm{Email: email, Password: password}).Payload()
	if err != nil {
		return nil, err
	}
	if err := g.users.Login(ctx, req.Email, req.Password); err != nil {
		g.log.Info().Err(err).Str("email", req.Email).Msg("login rejected")
		return nil, err
	}
	g.log.Info().Str("email", req.Email).Msg("login accepted")
	return newSession(req.Email, g.now()), nil
}

// Register validates f and creates the account. It does not open a
// session; the user logs in afterwards.
func (g *Gate) Register(ctx context.Context, f *form.RegisterForm) (*types.User, error) {
	req, err := f.Payload()
	if err != nil {
		return nil, err
	}
	u, err := g.users.Register(ctx, req)
	if err != nil {
		g.log.Warn().Err(err).Str("email", req.Email).Msg("registration failed")
		return nil, err
	}
	g.log.Info().Str("email", req.Email).Msg("account registered")
	return u, nil
}

// LoginFailureMessage renders a login error for the user. The server's own
// message is surfaced when it sent one.
func LoginFailureMessage(err error) string {
	var he *apierrors.HTTPError
	switch {
	case errors.As(err, &he) && he.Message != "":
		return he.Message
	case apierrors.IsValidation(err):
		return MsgMissingFields
	case apierrors.IsNetwork(err):
		return MsgUnreachable
	default:
		return MsgInvalidLogin
	}
}

// RegisterFailureMessage renders a registration error for the user.
func RegisterFailureMessage(err error) string {
	var (
		he *apierrors.HTTPError
		ve *apierrors.ValidationError
	)
	switch {
	case errors.As(err, &ve) && ve.Field == "password" && ve.Reason != "required":
		return MsgWeakPassword
	case errors.As(err, &ve):
		return MsgMissingFields
	case errors.As(err, &he) && he.Message != "":
		return he.Message
	case apierrors.IsNetwork(err):
		return MsgUnreachable
	default:
		return MsgRegisterFailed
	}
}
