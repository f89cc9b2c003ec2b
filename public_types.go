package saferoute

import "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"

// Public type aliases so SDK consumers can import only this package.
type (
	// Domain entities
	Event        = types.Event
	EventType    = types.EventType
	Alert        = types.Alert
	SafePlace    = types.SafePlace
	Resource     = types.Resource
	ResourceType = types.ResourceType
	User         = types.User

	RiskLevel     = types.RiskLevel
	LocalDateTime = types.LocalDateTime

	// Requests
	EventRequest     = types.EventRequest
	AlertRequest     = types.AlertRequest
	SafePlaceRequest = types.SafePlaceRequest
	ResourceRequest  = types.ResourceRequest
	LoginRequest     = types.LoginRequest
	RegisterRequest  = types.RegisterRequest
)

const (
	RiskLow    = types.RiskLow
	RiskMedium = types.RiskMedium
	RiskHigh   = types.RiskHigh
)

// DateTimeLayout is the canonical YYYY-MM-DDTHH:mm wire format.
const DateTimeLayout = types.DateTimeLayout
