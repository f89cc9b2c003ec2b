package devserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/form"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
)

// Error bodies carry a "message" field, which the client surfaces.
func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

func (s *Server) list(c *gin.Context, collection string, items any) {
	if s.envelope[collection] {
		c.JSON(http.StatusOK, gin.H{"content": items})
		return
	}
	c.JSON(http.StatusOK, items)
}

// pathID parses the :id segment; it aborts with 400 on failure.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, http.StatusBadRequest, "id inválido")
		return 0, false
	}
	return id, true
}

func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		fail(c, http.StatusBadRequest, "corpo da requisição inválido")
		return false
	}
	return true
}

func storeError(c *gin.Context, err error, what string) {
	switch {
	case errors.Is(err, errNotFound):
		fail(c, http.StatusNotFound, what+" não encontrado")
	case errors.Is(err, errUnknownReference):
		fail(c, http.StatusBadRequest, err.Error())
	default:
		fail(c, http.StatusInternalServerError, "erro interno")
	}
}

// ------------------------------
// Users
// ------------------------------

func (s *Server) login(c *gin.Context) {
	var req types.LoginRequest
	if !bind(c, &req) {
		return
	}
	if err := s.store.Authenticate(req.Email, req.Password); err != nil {
		fail(c, http.StatusUnauthorized, "Email ou senha inválidos")
		return
	}
	c.Status(http.StatusOK)
}

func (s *Server) register(c *gin.Context) {
	var req types.RegisterRequest
	if !bind(c, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Phone == "" {
		fail(c, http.StatusBadRequest, "Preencha todos os campos.")
		return
	}
	if err := form.ValidatePassword(req.Password); err != nil {
		fail(c, http.StatusBadRequest, "Senha não atende aos critérios de segurança.")
		return
	}
	u, err := s.store.Register(req)
	if errors.Is(err, errEmailTaken) {
		fail(c, http.StatusConflict, "Email já cadastrado")
		return
	}
	if err != nil {
		storeError(c, err, "usuário")
		return
	}
	c.JSON(http.StatusCreated, u)
}

// ------------------------------
// Events
// ------------------------------

func (s *Server) listEvents(c *gin.Context) { s.list(c, "events", s.store.ListEvents()) }

func (s *Server) listEventOptions(c *gin.Context) { s.list(c, "events", s.store.ListEvents()) }

func (s *Server) listEventTypes(c *gin.Context) { s.list(c, "event-types", s.store.EventTypes()) }

func (s *Server) getEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := s.store.GetEvent(id)
	if err != nil {
		storeError(c, err, "evento")
		return
	}
	c.JSON(http.StatusOK, e)
}

func validEvent(c *gin.Context, req *types.EventRequest) bool {
	if strings.TrimSpace(req.EventType) == "" || req.EventDate.IsZero() {
		fail(c, http.StatusBadRequest, "eventType e eventDate são obrigatórios")
		return false
	}
	r, err := types.ParseRiskLevel(string(req.RiskLevel))
	if err != nil {
		fail(c, http.StatusBadRequest, "riskLevel inválido")
		return false
	}
	req.RiskLevel = r
	return true
}

func (s *Server) createEvent(c *gin.Context) {
	var req types.EventRequest
	if !bind(c, &req) || !validEvent(c, &req) {
		return
	}
	e, err := s.store.SaveEvent(0, req)
	if err != nil {
		storeError(c, err, "evento")
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (s *Server) updateEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req types.EventRequest
	if !bind(c, &req) || !validEvent(c, &req) {
		return
	}
	e, err := s.store.SaveEvent(id, req)
	if err != nil {
		storeError(c, err, "evento")
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) deleteEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.store.DeleteEvent(id); err != nil {
		storeError(c, err, "evento")
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------------
// Alerts
// ------------------------------

func (s *Server) listAlerts(c *gin.Context) { s.list(c, "alerts", s.store.ListAlerts()) }

func (s *Server) getAlert(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := s.store.GetAlert(id)
	if err != nil {
		storeError(c, err, "alerta")
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Server) createAlert(c *gin.Context) {
	var req types.AlertRequest
	if !bind(c, &req) {
		return
	}
	if req.EventID <= 0 || strings.TrimSpace(req.Message) == "" || req.SentAt.IsZero() {
		fail(c, http.StatusBadRequest, "eventId, message e sentAt são obrigatórios")
		return
	}
	a, err := s.store.CreateAlert(req)
	if err != nil {
		storeError(c, err, "evento")
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (s *Server) deleteAlert(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.store.DeleteAlert(id); err != nil {
		storeError(c, err, "alerta")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteOldAlerts(c *gin.Context) {
	n := s.store.DeleteAlertsOlderThan(7)
	s.log.Info().Int("deleted", n).Msg("old alerts purged")
	c.Status(http.StatusNoContent)
}

// ------------------------------
// Safe places
// ------------------------------

func (s *Server) listSafePlaces(c *gin.Context) {
	s.list(c, "safe-places", s.store.ListSafePlaces())
}

func (s *Server) getSafePlace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := s.store.GetSafePlace(id)
	if err != nil {
		storeError(c, err, "local seguro")
		return
	}
	c.JSON(http.StatusOK, p)
}

func validSafePlace(c *gin.Context, req types.SafePlaceRequest) bool {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Address) == "" || req.Capacity < 0 {
		fail(c, http.StatusBadRequest, "name, address e capacity são obrigatórios")
		return false
	}
	return true
}

func (s *Server) createSafePlace(c *gin.Context) {
	var req types.SafePlaceRequest
	if !bind(c, &req) || !validSafePlace(c, req) {
		return
	}
	p, err := s.store.SaveSafePlace(0, req)
	if err != nil {
		storeError(c, err, "local seguro")
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) updateSafePlace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req types.SafePlaceRequest
	if !bind(c, &req) || !validSafePlace(c, req) {
		return
	}
	p, err := s.store.SaveSafePlace(id, req)
	if err != nil {
		storeError(c, err, "local seguro")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) deleteSafePlace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.store.DeleteSafePlace(id); err != nil {
		storeError(c, err, "local seguro")
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------------
// Resources
// ------------------------------

func (s *Server) listResources(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("safePlaceId"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, http.StatusBadRequest, "safePlaceId é obrigatório")
		return
	}
	s.list(c, "resources", s.store.ListResources(id))
}

func (s *Server) listResourceTypes(c *gin.Context) {
	s.list(c, "resource-types", s.store.ResourceTypes())
}

func (s *Server) getResource(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	r, err := s.store.GetResource(id)
	if err != nil {
		storeError(c, err, "recurso")
		return
	}
	c.JSON(http.StatusOK, r)
}

func validResource(c *gin.Context, req types.ResourceRequest) bool {
	if req.ResourceTypeID <= 0 || req.SafePlaceID <= 0 || req.AvailableQuantity < 0 {
		fail(c, http.StatusBadRequest, "resourceTypeId, availableQuantity e safePlaceId são obrigatórios")
		return false
	}
	return true
}

func (s *Server) createResource(c *gin.Context) {
	var req types.ResourceRequest
	if !bind(c, &req) || !validResource(c, req) {
		return
	}
	r, err := s.store.SaveResource(0, req)
	if err != nil {
		storeError(c, err, "recurso")
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (s *Server) updateResource(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req types.ResourceRequest
	if !bind(c, &req) || !validResource(c, req) {
		return
	}
	r, err := s.store.SaveResource(id, req)
	if err != nil {
		storeError(c, err, "recurso")
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) deleteResource(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.store.DeleteResource(id); err != nil {
		storeError(c, err, "recurso")
		return
	}
	c.Status(http.StatusNoContent)
}
