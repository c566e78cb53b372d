package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/packet-intake/internal/pipeline"
	"github.com/jonathan/packet-intake/internal/types"
)

// ProcessPacketsResponse represents the response for /process-packets
type ProcessPacketsResponse struct {
	Results []types.DocumentResult `json:"results"`
}

// FormsResponse represents the response for /forms
type FormsResponse struct {
	Forms any `json:"forms"`
}

// handleHome describes the API surface.
func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Packet Intake API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":          "/health",
			"forms":           "/forms",
			"process_packets": "/process-packets",
		},
	})
}

// handleHealth returns process liveness only.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleProcessPackets runs the full pipeline for the requested documents.
// An empty or missing id list resolves the working set from the document
// service. Processing is synchronous; the response carries one entry per
// document with per-document failures inlined.
func (s *Server) handleProcessPackets(w http.ResponseWriter, r *http.Request) {
	var req types.ProcessPacketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := pipeline.ProcessDocuments(r.Context(), s.pipelineOpts, req.FormIDs)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ProcessPacketsResponse{Results: results})
}

// handleForms lists recent documents from the document service.
func (s *Server) handleForms(w http.ResponseWriter, r *http.Request) {
	limit := s.pipelineOpts.ListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		req := types.ListFormsRequest{Limit: n}
		if err := req.Validate(); err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		limit = n
	}

	forms, err := s.pipelineOpts.Documents.ListRecent(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, FormsResponse{Forms: forms})
}
