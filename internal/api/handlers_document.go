package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"annotext/internal/document"
	"annotext/internal/highlight"
	"annotext/internal/parser"
	"annotext/internal/session"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	pageSize := s.cfg.DefaultPageSize
	if v := r.FormValue("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageSize = n
		}
	}

	ext, err := parser.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if pdfExt, ok := ext.(*parser.PDFExtractor); ok {
		pdfExt.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	text, err := ext.Extract(bytes.NewReader(data), filename)
	if err != nil {
		// Prior document, if any, stays loaded when decoding fails.
		var decErr *document.DecodeError
		if errors.As(err, &decErr) {
			jsonError(w, decErr.Error(), http.StatusBadRequest)
		} else {
			jsonError(w, "failed to extract text: "+err.Error(), http.StatusBadRequest)
		}
		return
	}

	doc := document.New(filename, text)
	sess := sessionFrom(r)
	sess.SetDocument(doc, session.ContentHashHex(data)[:16], pageSize)

	s.log.Info("document loaded",
		"session", sess.ID,
		"filename", filename,
		"chars", doc.Len(),
		"pages", sess.Pager().Count(),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(documentMeta(sess))
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if sess.Document() == nil {
		jsonError(w, "no document loaded", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(documentMeta(sess))
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	pager := sess.Pager()
	if pager == nil {
		jsonError(w, "no document loaded", http.StatusNotFound)
		return
	}

	// Clamp rather than fail: a bad index is a UI glitch, not a fault.
	index, _ := strconv.Atoi(chi.URLParam(r, "index"))
	page := pager.Page(index)
	frags := highlight.Render(page, sess.Annotations())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"index":     page.Index,
		"start":     page.Start,
		"end":       page.End,
		"text":      page.Text,
		"total":     pager.Count(),
		"fragments": frags,
		"html":      highlight.HTML(frags),
	})
}

func documentMeta(sess *session.Session) map[string]any {
	doc := sess.Document()
	pager := sess.Pager()
	return map[string]any{
		"filename":  doc.Filename,
		"doc_id":    sess.DocID(),
		"length":    doc.Len(),
		"pages":     pager.Count(),
		"page_size": pager.Size(),
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
