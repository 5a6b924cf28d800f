package api

import (
	"net/http"
)

func (s *Server) handleLocateStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		jsonError(w, "locate stats unavailable", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"open_plays": s.library.Len(),
		"stats":      s.stats.Snapshot(),
	})
}
