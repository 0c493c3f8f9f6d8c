package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ShopDemo/internal/cart"
	"ShopDemo/pkg/kit"
)

func (s *Server) handleListCarts(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)

	start, okStart := parseDateParam(r, "startdate")
	end, okEnd := parseDateParam(r, "enddate")
	if !okStart || !okEnd {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid date parameter")
		return
	}

	var carts []cart.Cart
	if start != nil || end != nil {
		carts = s.Carts.ByDateRange(start, end)
	} else {
		carts = s.Carts.All()
	}

	kit.WriteJSON(w, http.StatusOK, applyListQuery(carts, q))
}

// parseDateParam reads an optional RFC3339 or YYYY-MM-DD query parameter.
func parseDateParam(r *http.Request, name string) (*time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	return nil, false
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Cart not found")
		return
	}

	c, ok := s.Carts.Get(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Cart not found")
		return
	}

	kit.WriteJSON(w, http.StatusOK, c)
}

func (s *Server) handleCartsByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	kit.WriteJSON(w, http.StatusOK, s.Carts.ByUserID(userID))
}

func (s *Server) handleCreateCart(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var c cart.Cart
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Cart data is required")
		return
	}

	kit.WriteJSON(w, http.StatusCreated, s.Carts.Add(c))
}

func (s *Server) handleUpdateCart(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Cart not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var c cart.Cart
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Cart data is required")
		return
	}

	updated, ok := s.Carts.Update(id, c)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Cart not found")
		return
	}

	kit.WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteCart(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Cart not found")
		return
	}

	deleted, ok := s.Carts.Delete(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Cart not found")
		return
	}

	kit.WriteJSON(w, http.StatusOK, deleted)
}
