package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"annotext/internal/export"
)

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	doc := sess.Document()
	if doc == nil {
		jsonError(w, "no document loaded", http.StatusNotFound)
		return
	}

	var data []byte
	var err error
	if r.URL.Query().Get("full") == "true" {
		data, err = export.Full(doc, sess.Annotations())
	} else {
		data, err = export.Records(sess.Annotations())
	}
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	base := strings.TrimSuffix(doc.Filename, filepath.Ext(doc.Filename))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", base+".annotations.json"))
	w.Write(data)
}
