package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Hema-A-05/MERN-flasklite/internal/middleware"
	"github.com/Hema-A-05/MERN-flasklite/internal/models"
	"github.com/Hema-A-05/MERN-flasklite/internal/service"
	"github.com/Hema-A-05/MERN-flasklite/internal/utils"

	"github.com/rs/zerolog"
)

// UploadField is the multipart form field holding the contact list.
const UploadField = "file"

type DistributionHTTP struct {
	svc      *service.DistributionService
	maxBytes int64
	log      zerolog.Logger
}

func NewDistributionHTTP(s *service.DistributionService, maxBytes int64, log zerolog.Logger) *DistributionHTTP {
	return &DistributionHTTP{svc: s, maxBytes: maxBytes, log: log}
}

// POST /upload-csv
func (h *DistributionHTTP) Upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.maxBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
		}
		file, header, err := r.FormFile(UploadField)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				utils.Error(w, http.StatusRequestEntityTooLarge, "File too large")
				return
			}
			utils.Error(w, http.StatusBadRequest, "No file part")
			return
		}
		defer file.Close()
		if strings.TrimSpace(header.Filename) == "" {
			utils.Error(w, http.StatusBadRequest, "No selected file")
			return
		}

		lists, err := h.svc.Upload(r.Context(), header.Filename, file)
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			utils.Error(w, http.StatusBadRequest, "Invalid file type. Only CSV, XLSX, and XLS are allowed.")
			return
		case errors.Is(err, service.ErrMissingColumns):
			utils.Error(w, http.StatusBadRequest, "CSV must contain FirstName, Phone, and Notes columns ("+err.Error()+")")
			return
		case errors.Is(err, service.ErrNoAgents):
			utils.Error(w, http.StatusBadRequest, "No agents available to distribute tasks.")
			return
		case err != nil:
			ev := h.log.Error().Err(err).Str("file", header.Filename)
			if u, ok := middleware.CurrentUser(r.Context()); ok {
				ev = ev.Str("by", u.Email)
			}
			ev.Msg("upload failed")
			utils.Error(w, http.StatusInternalServerError, "Error processing file: "+err.Error())
			return
		}

		utils.JSON(w, http.StatusOK, struct {
			Message          string                         `json:"message"`
			DistributedLists map[string][]models.TaskRecord `json:"distributed_lists"`
		}{
			Message:          "File uploaded and tasks distributed successfully",
			DistributedLists: lists,
		})
	}
}

// GET /distributed-lists[?agent_id=]
func (h *DistributionHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		agentID := strings.TrimSpace(r.URL.Query().Get("agent_id"))
		batches, err := h.svc.ListDistributions(r.Context(), agentID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if batches == nil {
			batches = []models.DistributionBatch{}
		}
		utils.JSON(w, http.StatusOK, batches)
	}
}
