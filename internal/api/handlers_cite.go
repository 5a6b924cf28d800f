package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dgallion1/citator/internal/cite"
)

type citeRequest struct {
	Text string `json:"text"`
}

// handleCite locates copied text within a scene and returns the citation.
// A quote that cannot be located is still a 200: the citation simply omits
// the line numbers.
func (s *Server) handleCite(w http.ResponseWriter, r *http.Request) {
	scene, ok := s.lookupScene(w, r)
	if !ok {
		return
	}

	var req citeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "request exceeds max size", http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	c := cite.For(req.Text, scene)
	s.stats.Record(time.Since(start), c.Found)

	if !c.Found {
		s.log.Debug("quote not located", "scene", scene.ID(), "text", req.Text)
	}

	resp := map[string]any{
		"found":    c.Found,
		"scene":    scene.ID(),
		"citation": c.String(),
		"html":     c.HTML(),
	}
	if c.Found {
		resp["first_line"] = c.Lines.First
		resp["last_line"] = c.Lines.Last
		resp["lines"] = c.Lines.String()
	}
	writeJSON(w, http.StatusOK, resp)
}
