package types

// ------------------------------
// Request payloads
// ------------------------------

// EventRequest is the body of POST /events and PUT /events/{id}.
type EventRequest struct {
	EventType   string        `json:"eventType"`
	Description string        `json:"description"`
	EventDate   LocalDateTime `json:"eventDate"`
	RiskLevel   RiskLevel     `json:"riskLevel"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
}

// AlertRequest is the body of POST /alerts.
type AlertRequest struct {
	EventID int64         `json:"eventId"`
	Message string        `json:"message"`
	SentAt  LocalDateTime `json:"sentAt"`
}

// SafePlaceRequest is the body of POST /safe-places and PUT /safe-places/{id}.
type SafePlaceRequest struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Capacity  int     `json:"capacity"`
}

// ResourceRequest is the body of POST /resources and PUT /resources/{id}.
type ResourceRequest struct {
	ResourceTypeID    int64 `json:"resourceTypeId"`
	AvailableQuantity int   `json:"availableQuantity"`
	SafePlaceID       int64 `json:"safePlaceId"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /users.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}
