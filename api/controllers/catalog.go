package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emberworks/forgefront-backend/api/responses"
	"github.com/emberworks/forgefront-backend/internal/catalog"
	"github.com/emberworks/forgefront-backend/internal/renderer"
	"github.com/emberworks/forgefront-backend/pkg/logger"
	"github.com/emberworks/forgefront-backend/pkg/types"
)

type productView struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Price           string         `json:"price"`
	ColorOrMaterial string         `json:"color_or_material"`
	Description     string         `json:"description"`
	Render          renderer.Input `json:"render"`
}

func newProductView(p catalog.Product) productView {
	return productView{
		ID:              p.ID,
		Name:            p.Name,
		Price:           types.FormatMoney(p.UnitPrice),
		ColorOrMaterial: p.ColorOrMaterial,
		Description:     p.Description,
		Render:          renderer.Describe(p),
	}
}

// CatalogList exposes the fixed product list.
func CatalogList(reg *catalog.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products := reg.List()
		views := make([]productView, 0, len(products))
		for _, p := range products {
			views = append(views, newProductView(p))
		}
		responses.WriteSuccess(w, views)
	}
}

// CatalogDetail exposes a single product by id.
func CatalogDetail(reg *catalog.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "productId")
		p, err := reg.Get(id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newProductView(p))
	}
}
