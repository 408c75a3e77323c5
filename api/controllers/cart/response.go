package cart

import (
	"github.com/emberworks/forgefront-backend/internal/cart"
	"github.com/emberworks/forgefront-backend/internal/pricing"
	"github.com/emberworks/forgefront-backend/pkg/types"
)

type lineView struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type cartView struct {
	Lines     []lineView `json:"lines"`
	ItemCount int        `json:"item_count"`
	Total     string     `json:"total"`
}

func newCartView(lines []cart.Line) cartView {
	views := make([]lineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, lineView{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: types.FormatMoney(l.UnitPrice),
			Quantity:  l.Quantity,
			LineTotal: types.FormatMoney(pricing.LineTotal(l)),
		})
	}
	return cartView{
		Lines:     views,
		ItemCount: pricing.ItemCount(lines),
		Total:     types.FormatMoney(pricing.CartTotal(lines)),
	}
}
