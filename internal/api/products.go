package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ShopDemo/internal/catalog"
	"ShopDemo/pkg/kit"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)
	kit.WriteJSON(w, http.StatusOK, applyListQuery(s.Products.All(), q))
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Product not found")
		return
	}

	p, ok := s.Products.Get(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Product not found")
		return
	}

	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Products.Categories())
}

func (s *Server) handleProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	q := parseListQuery(r)

	kit.WriteJSON(w, http.StatusOK, applyListQuery(s.Products.ByCategory(category), q))
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Product data is required")
		return
	}

	kit.WriteJSON(w, http.StatusCreated, s.Products.Add(p))
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Product not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Product data is required")
		return
	}

	updated, ok := s.Products.Update(id, p)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Product not found")
		return
	}

	kit.WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Product not found")
		return
	}

	deleted, ok := s.Products.Delete(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Product not found")
		return
	}

	kit.WriteJSON(w, http.StatusOK, deleted)
}
