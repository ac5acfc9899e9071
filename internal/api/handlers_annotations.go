package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"annotext/internal/annotation"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// AddAnnotationRequest is the JSON body for creating one annotation.
// Offsets are absolute character offsets into the document text.
type AddAnnotationRequest struct {
	Start *int   `json:"start" validate:"required,min=0"`
	End   *int   `json:"end" validate:"required,min=0"`
	Label string `json:"label" validate:"required"`
}

func (s *Server) handleAddAnnotation(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	set := sess.Annotations()
	if set == nil {
		jsonError(w, "no document loaded", http.StatusNotFound)
		return
	}

	var req AddAnnotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, e := range verrs {
				fields[e.Field()] = "failed on '" + e.Tag() + "' tag"
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]any{"errors": fields})
			return
		}
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ann, err := set.Add(sess.Document(), *req.Start, *req.End, req.Label)
	if err != nil {
		var rangeErr *annotation.RangeError
		if errors.As(err, &rangeErr) {
			jsonError(w, rangeErr.Error(), http.StatusUnprocessableEntity)
			return
		}
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.log.Info("annotation added",
		"session", sess.ID,
		"start", ann.Start,
		"end", ann.End,
		"label", ann.Label,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"index":      set.Len() - 1,
		"annotation": ann,
	})
}

func (s *Server) handleListAnnotations(w http.ResponseWriter, r *http.Request) {
	set := sessionFrom(r).Annotations()
	if set == nil {
		jsonError(w, "no document loaded", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"annotations": set.All()})
}

func (s *Server) handleRemoveAnnotation(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	set := sess.Annotations()
	if set == nil {
		jsonError(w, "no document loaded", http.StatusNotFound)
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		jsonError(w, "invalid annotation index", http.StatusBadRequest)
		return
	}
	if err := set.Remove(index); err != nil {
		jsonError(w, err.Error(), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearAnnotations(w http.ResponseWriter, r *http.Request) {
	set := sessionFrom(r).Annotations()
	if set == nil {
		jsonError(w, "no document loaded", http.StatusNotFound)
		return
	}
	set.Clear()
	w.WriteHeader(http.StatusNoContent)
}
