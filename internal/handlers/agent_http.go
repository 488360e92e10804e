package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Hema-A-05/MERN-flasklite/internal/service"
	"github.com/Hema-A-05/MERN-flasklite/internal/utils"
)

type AgentHTTP struct {
	svc *service.AgentService
}

func NewAgentHTTP(s *service.AgentService) *AgentHTTP { return &AgentHTTP{svc: s} }

// agentView is the public shape of an agent.
type agentView struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

// POST /agents
func (h *AgentHTTP) Create() http.HandlerFunc {
	type inDTO struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Mobile   string `json:"mobile"`
		Password string `json:"password"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		_, err := h.svc.AddAgent(r.Context(), in.Name, in.Email, in.Mobile, in.Password)
		switch {
		case errors.Is(err, service.ErrMissingField):
			utils.Error(w, http.StatusBadRequest, "Missing required fields")
			return
		case errors.Is(err, service.ErrAgentExists):
			utils.Error(w, http.StatusBadRequest, "Agent with this email already exists")
			return
		case err != nil:
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusCreated, map[string]string{"message": "Agent added successfully"})
	}
}

// GET /agents
func (h *AgentHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		agents, err := h.svc.ListAgents(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		out := make([]agentView, 0, len(agents))
		for _, a := range agents {
			out = append(out, agentView{Name: a.Name, Email: a.Email, Mobile: a.Mobile})
		}
		utils.JSON(w, http.StatusOK, out)
	}
}
