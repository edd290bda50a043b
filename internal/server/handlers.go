package server

import (
	"encoding/json"
	"errors"
	"freeread/internal/domain"
	"freeread/internal/rank"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

type itemView struct {
	domain.FeedItem

	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

type passageSummary struct {
	ID          string            `json:"id"`
	Category    domain.Category   `json:"category"`
	Title       string            `json:"title"`
	Subtitle    string            `json:"subtitle"`
	ReadMinutes int               `json:"readMinutes"`
	Difficulty  domain.Difficulty `json:"difficulty"`
	Source      string            `json:"source"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"activeCount": s.session.ActiveCount(),
	})
}

func (s *Server) handleNextBatch(w http.ResponseWriter, r *http.Request) {
	n := s.batchSize

	if raw := strings.TrimSpace(r.URL.Query().Get("n")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = min(parsed, maxBatchSize)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": s.views(s.session.NextBatch(n)),
	})
}

func (s *Server) handleSeen(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Index *int `json:"index"`
	}
	if err := decodeJSON(r, &req); err != nil || req.Index == nil {
		writeError(w, http.StatusBadRequest, "index is required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"appended": s.views(s.session.Observe(r.Context(), *req.Index)),
	})
}

func (s *Server) handleGetCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"available": domain.Categories,
		"selected":  nonNil(s.session.Categories()),
	})
}

func (s *Server) handleSetCategories(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Categories []string `json:"categories"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	categories := make([]domain.Category, 0, len(req.Categories))
	for _, name := range req.Categories {
		c, ok := domain.LookupCategory(name)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown category: "+name)
			return
		}
		categories = append(categories, c)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": s.views(s.session.Rebuild(categories)),
	})
}

func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	item, ok := s.session.Item(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	writeJSON(w, http.StatusOK, s.view(item))
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	liked, err := s.session.ToggleLike(r.Context(), id)
	if err != nil {
		s.log.WarnContext(r.Context(), "Failed to persist liked ids",
			"error", err,
			"itemID", id,
			"liked", liked)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":    id,
		"liked": liked,
	})
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	text, ok := s.session.ShareText(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, text)
}

func (s *Server) handleLikes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ids": s.session.Liked(),
	})
}

func (s *Server) handlePassages(w http.ResponseWriter, r *http.Request) {
	var filter domain.Category
	if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
		c, ok := domain.LookupCategory(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown category: "+raw)
			return
		}
		filter = c
	}

	passages := s.library.Passages()
	summaries := make([]passageSummary, 0, len(passages))
	for _, p := range passages {
		if filter != "" && p.Category != filter {
			continue
		}

		summaries = append(summaries, passageSummary{
			ID:          p.ID,
			Category:    p.Category,
			Title:       p.Title,
			Subtitle:    p.Subtitle,
			ReadMinutes: p.ReadMinutes,
			Difficulty:  p.Difficulty,
			Source:      p.Source,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"passages": summaries})
}

func (s *Server) handlePassage(w http.ResponseWriter, r *http.Request) {
	p, ok := s.library.Passage(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "passage not found")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if s.refresher == nil {
		writeError(w, http.StatusServiceUnavailable, "refresh is disabled")
		return
	}

	writeJSON(w, http.StatusOK, s.refresher.Refresh(r.Context()))
}

func (s *Server) views(items []domain.FeedItem) []itemView {
	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, s.view(item))
	}

	return views
}

func (s *Server) view(item domain.FeedItem) itemView {
	liked := s.session.IsLiked(item.ID)

	count := rank.LikeCount(item.LikeSeed)
	if liked {
		count++
	}

	return itemView{FeedItem: item, Liked: liked, LikeCount: count}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}

		return err
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
