package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dgallion1/citator/internal/library"
	"github.com/dgallion1/citator/internal/play"
	"github.com/go-chi/chi/v5"
)

// handleOpenPlay opens a play from its JSON encoding.
func (s *Server) handleOpenPlay(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	p, err := play.Decode(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "play exceeds max size", http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "invalid play: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := p.Validate(); err != nil {
		jsonError(w, "invalid play: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	entry, reopened, err := s.library.Open(p)
	if err != nil {
		jsonError(w, "failed to open play: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Info("play opened",
		"play_id", entry.ID,
		"title", p.Title,
		"scenes", len(p.Scenes()),
		"reopened", reopened,
	)

	status := http.StatusCreated
	if reopened {
		status = http.StatusOK
	}
	writeJSON(w, status, map[string]any{
		"play_id":  entry.ID,
		"reopened": reopened,
		"outline":  outline(entry.Play),
	})
}

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.lookupPlay(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"play_id": entry.ID,
		"outline": outline(entry.Play),
	})
}

func (s *Server) handleClosePlay(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "playID")
	if err := s.library.Close(playID); err != nil {
		jsonError(w, err.Error(), http.StatusNotFound)
		return
	}
	s.log.Info("play closed", "play_id", playID)
	writeJSON(w, http.StatusOK, map[string]any{"closed": playID})
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	scene, ok := s.lookupScene(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":       scene.ID(),
		"act":      scene.Act,
		"scene":    scene.Number,
		"title":    scene.Title,
		"speakers": scene.Speakers(),
		"lines":    play.EncodeLines(scene.Lines),
	})
}

func (s *Server) lookupPlay(w http.ResponseWriter, r *http.Request) (*library.Entry, bool) {
	entry, err := s.library.Get(chi.URLParam(r, "playID"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	return entry, true
}

func (s *Server) lookupScene(w http.ResponseWriter, r *http.Request) (*play.Scene, bool) {
	entry, ok := s.lookupPlay(w, r)
	if !ok {
		return nil, false
	}
	scene, err := entry.Play.Scene(chi.URLParam(r, "sceneID"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	return scene, true
}

type outlineAct struct {
	Act    int            `json:"act"`
	Scenes []outlineScene `json:"scenes"`
}

type outlineScene struct {
	ID    string `json:"id"`
	Scene int    `json:"scene"`
	Title string `json:"title"`
	Lines int    `json:"lines"`
}

// outline is the navigation tree for a play: acts and their scene ids.
func outline(p *play.Play) map[string]any {
	acts := make([]outlineAct, 0, len(p.Acts))
	for _, a := range p.Acts {
		oa := outlineAct{Act: a.Number, Scenes: make([]outlineScene, 0, len(a.Scenes))}
		for _, sc := range a.Scenes {
			oa.Scenes = append(oa.Scenes, outlineScene{
				ID:    sc.ID(),
				Scene: sc.Number,
				Title: sc.Title,
				Lines: len(sc.Lines),
			})
		}
		acts = append(acts, oa)
	}
	return map[string]any{"title": p.Title, "acts": acts}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
