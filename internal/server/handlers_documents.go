package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spark-portfolio/spark/internal/compose"
	"github.com/spark-portfolio/spark/internal/export"
	"github.com/spark-portfolio/spark/internal/render"
	"github.com/spark-portfolio/spark/internal/types"
)

// RenderResponse carries the structured rendered view and its markup.
type RenderResponse struct {
	Document render.Document `json:"document"`
	Markup   string          `json:"markup"`
}

// handleCreateDocument composes canonical content from the request and stores
// a new portfolio document.
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var req types.ComposeDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document request: "+err.Error())
		return
	}

	content, err := compose.Compose(types.ComposeMeta{
		Title:            req.Title,
		CareerFocus:      req.CareerFocus,
		UsePersonalInfo:  req.UsePersonalInfo,
		ShortDescription: req.ShortDescription,
	}, req.SelectedItems)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	doc, err := s.store.Create(r.Context(), req.Title, content)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store document: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, doc.Lite())
}

// handleListDocuments returns all documents, newest first, without content.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list documents: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, docs)
}

// handleGetDocument returns a full document record including content.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleRenameDocument updates a document title in place.
func (s *Server) handleRenameDocument(w http.ResponseWriter, r *http.Request) {
	var req types.RenameDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Title is required")
		return
	}

	doc, err := s.store.Rename(r.Context(), r.PathValue("id"), req.Title)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleDeleteDocument removes a document.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// renderDocument recomputes the rendered view for a stored document from the
// latest profile and assessment snapshot.
func (s *Server) renderDocument(r *http.Request, id string) (render.Document, string, error) {
	doc, err := s.store.Get(r.Context(), id)
	if err != nil {
		return render.Document{}, "", err
	}

	rendered := render.Render(doc, s.dataset.Profile(), s.dataset.Assessments())
	markup, err := render.HTML(rendered)
	if err != nil {
		return render.Document{}, "", fmt.Errorf("failed to render document markup: %w", err)
	}
	return rendered, markup, nil
}

// handleRenderDocument returns the rendered document view and its markup.
func (s *Server) handleRenderDocument(w http.ResponseWriter, r *http.Request) {
	rendered, markup, err := s.renderDocument(r, r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, RenderResponse{Document: rendered, Markup: markup})
}

// handleExportWord streams the Word-compatible export of a rendered document.
func (s *Server) handleExportWord(w http.ResponseWriter, r *http.Request) {
	rendered, markup, err := s.renderDocument(r, r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	artifact, err := export.Word(markup, rendered.Title)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.writeArtifact(w, artifact)
}

// handleExportPDF streams the print-triggered PDF surrogate of a rendered document.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	rendered, markup, err := s.renderDocument(r, r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	artifact, err := export.Printable(markup, rendered.Title)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.writeArtifact(w, artifact)
}

func (s *Server) writeArtifact(w http.ResponseWriter, artifact *export.Artifact) {
	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact.Content); err != nil {
		// Response already committed; nothing to do but log.
		log.Printf("failed to write export artifact: %v", err)
	}
}
