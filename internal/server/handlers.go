package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hoshizora/oboeru/internal/models"
	"github.com/hoshizora/oboeru/internal/storage"
)

// maxUploadBytes bounds multipart file uploads.
const maxUploadBytes = 32 << 20

type chatRequest struct {
	Message  string `json:"message"`
	AllowWeb *bool  `json:"allow_web,omitempty"`
}

type searchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

type documentRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url,omitempty"`
}

type updateRequest struct {
	Text string `json:"text"`
}

type ingestURLRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.respondError(w, http.StatusBadRequest, "message is required")
		return
	}
	allowWeb := true
	if req.AllowWeb != nil {
		allowWeb = *req.AllowWeb
	}
	s.logger.Debug("chat request", zap.String("message", req.Message), zap.Bool("allow_web", allowWeb))
	answer := s.pipeline.ComposeAnswer(r.Context(), req.Message, allowWeb)
	s.respondJSON(w, http.StatusOK, answer)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("search request", zap.String("query", req.Query), zap.Int("top_k", req.TopK))
	results := s.store.Search(req.Query, req.TopK)
	if results == nil {
		results = []*models.ScoredDocument{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

func (s *Server) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("add document request", zap.String("title", req.Title))
	doc, err := s.pipeline.IngestText(req.Title, req.Text, req.URL)
	if err != nil {
		if errors.Is(err, models.ErrEmptyText) {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("adding document failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, ok := s.store.Get(id)
	if !ok {
		s.respondError(w, http.StatusNotFound, "document not found")
		return
	}
	s.respondJSON(w, http.StatusOK, doc)
}

func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("update document request", zap.String("id", id))
	if err := s.store.Update(id, req.Text); err != nil {
		if errors.Is(err, models.ErrEmptyText) {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("updating document failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"id": id, "status": "updated"})
}

func (s *Server) handleIngestURL(w http.ResponseWriter, r *http.Request) {
	var req ingestURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		s.respondError(w, http.StatusBadRequest, "url is required")
		return
	}
	s.logger.Debug("ingest url request", zap.String("url", req.URL))
	doc, err := s.pipeline.IngestURL(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, models.ErrEmptyText) {
			s.respondError(w, http.StatusBadRequest, "page contains no usable text")
			return
		}
		s.logger.Error("ingesting url failed", zap.String("url", req.URL), zap.Error(err))
		s.respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleIngestFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.logger.Debug("ingest file request", zap.String("filename", header.Filename), zap.Int("bytes", len(content)))
	doc, err := s.pipeline.IngestFile(header.Filename, content)
	if err != nil {
		if errors.Is(err, models.ErrEmptyText) {
			s.respondError(w, http.StatusBadRequest, "file contains no usable text")
			return
		}
		s.logger.Error("ingesting file failed", zap.String("filename", header.Filename), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	interactions, err := s.notebook.RecentHistory(r.Context(), 20)
	if err != nil {
		s.logger.Error("history: query failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"history": interactions})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	noteCount, err := s.notebook.CountNotes(ctx)
	if err != nil {
		s.logger.Error("status: count notes failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	factCount, err := s.notebook.CountFacts(ctx)
	if err != nil {
		s.logger.Error("status: count facts failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := map[string]interface{}{
		"documents": s.store.Count(),
		"notes":     noteCount,
		"facts":     factCount,
	}

	configInfo := map[string]interface{}{
		"index_path":           s.config.Storage.IndexPath,
		"knowledge_dir":        s.config.Storage.KnowledgeDir,
		"top_k":                s.config.Search.TopK,
		"confidence_threshold": s.config.Pipeline.ConfidenceThreshold,
	}
	diskBytes, err := storage.DiskUsageBytes(
		s.config.Storage.IndexPath,
		s.config.Storage.PagesDir,
		s.config.Storage.MemoryPath,
		s.config.Storage.KnowledgeDir,
	)
	if err == nil {
		resp["disk_usage_bytes"] = diskBytes
	}
	resp["config"] = configInfo
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
