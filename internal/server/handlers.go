package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ezredbiom/studysearch/internal/studies"
)

// listResponse is the envelope of GET /api/v1/studies.
type listResponse struct {
	TotalStudies int                    `json:"total_studies"`
	Studies      []studies.StudySummary `json:"studies"`
}

// abstractResponse is the envelope of GET /api/v1/studies/{id}/abstract.
type abstractResponse struct {
	StudyID  int    `json:"study_id"`
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
	Status   string `json:"status"`
}

// authorsResponse is the envelope of GET /api/v1/studies/{id}/authors.
type authorsResponse struct {
	StudyID   int              `json:"study_id"`
	Title     string           `json:"study_title"`
	PI        *studies.Contact `json:"principal_investigator,omitempty"`
	LabPerson *studies.Contact `json:"lab_person,omitempty"`
}

// searchRequest is the body of POST /api/v1/search.
type searchRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleListStudies(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.reader.ListSummaries(r.Context())
	if err != nil {
		s.logger.Error("study listing failed", err, nil)
		writeError(w, http.StatusInternalServerError, "failed to list studies")
		return
	}

	if summaries == nil {
		summaries = []studies.StudySummary{}
	}
	writeJSON(w, http.StatusOK, listResponse{
		TotalStudies: len(summaries),
		Studies:      summaries,
	})
}

func (s *Server) handleStudyDetail(w http.ResponseWriter, r *http.Request) {
	detail, ok := s.loadStudy(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleStudyAbstract(w http.ResponseWriter, r *http.Request) {
	detail, ok := s.loadStudy(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, abstractResponse{
		StudyID:  detail.StudyID,
		Title:    detail.Title,
		Abstract: detail.Abstract,
		Status:   detail.Status,
	})
}

func (s *Server) handleStudyAuthors(w http.ResponseWriter, r *http.Request) {
	detail, ok := s.loadStudy(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, authorsResponse{
		StudyID:   detail.StudyID,
		Title:     detail.Title,
		PI:        detail.PI,
		LabPerson: detail.LabPerson,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "query must not be empty")
		return
	}

	result, err := s.searcher.Search(r.Context(), req.Query)
	if err != nil {
		s.logger.Error("search request failed", err, map[string]interface{}{
			"query": req.Query,
		})
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	if result.Records == nil {
		result.Records = []studies.StudyRecord{}
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// loadStudy parses the {id} path value and fetches the study detail,
// writing the appropriate error response itself. The boolean reports whether
// the caller should proceed.
func (s *Server) loadStudy(w http.ResponseWriter, r *http.Request) (*studies.StudyDetail, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid study ID format")
		return nil, false
	}

	detail, err := s.reader.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, studies.ErrStudyNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("Study %d not found", id))
			return nil, false
		}
		s.logger.Error("study lookup failed", err, map[string]interface{}{
			"study_id": id,
		})
		writeError(w, http.StatusInternalServerError, "failed to load study")
		return nil, false
	}

	return detail, true
}
