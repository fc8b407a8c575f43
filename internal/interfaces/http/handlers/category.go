// internal/interfaces/http/handlers/category.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/domain/listing"
	"github.com/your-org/storefront-client/internal/store"
)

// CatalogHandler serves the paginated catalog views. Each view differs only
// in its page size.
type CatalogHandler struct {
	store *store.Store
	views config.ViewsConfig
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(st *store.Store, views config.ViewsConfig) *CatalogHandler {
	return &CatalogHandler{store: st, views: views}
}

// MenuItemView is a menu item with its category name resolved
type MenuItemView struct {
	catalog.MenuItem
	CategoryName string `json:"categoryName,omitempty"`
}

type listView[T any] struct {
	listing.Result[T]
	Query    listing.Query `json:"query"`
	HasPrev  bool          `json:"hasPrev"`
	HasNext  bool          `json:"hasNext"`
	PageSize int           `json:"pageSize"`
}

var categoryKeys = listing.Keys[catalog.Category]{
	Name: func(c catalog.Category) string { return c.Name },
}

func menuKeys(idx catalog.Index) listing.Keys[catalog.MenuItem] {
	return listing.Keys[catalog.MenuItem]{
		Name:     func(m catalog.MenuItem) string { return m.Name },
		Category: idx.CategoryName,
	}
}

// Categories handles GET /views/categories
func (h *CatalogHandler) Categories(c *gin.Context) {
	snap := h.store.Snapshot()

	v := h.view(c, h.views.CategoryPageSize, "")
	res := listing.Apply(v, snap.Categories, categoryKeys)

	c.JSON(http.StatusOK, gin.H{"data": newListView(v, res)})
}

// Menu handles GET /views/menu?q=&category=&page=
func (h *CatalogHandler) Menu(c *gin.Context) {
	snap := h.store.Snapshot()
	idx := snap.CategoryIndex()

	v := h.view(c, h.views.MenuPageSize, c.Query("category"))
	res := listing.Apply(v, snap.MenuItems, menuKeys(idx))

	c.JSON(http.StatusOK, gin.H{"data": newListView(v, withCategoryNames(res, idx))})
}

// Home handles GET /views/home, the unfiltered menu preview
func (h *CatalogHandler) Home(c *gin.Context) {
	snap := h.store.Snapshot()
	idx := snap.CategoryIndex()

	v := listing.NewView(h.views.HomePageSize)
	v.SetPage(queryPage(c))
	res := listing.Apply(v, snap.MenuItems, menuKeys(idx))

	c.JSON(http.StatusOK, gin.H{"data": newListView(v, withCategoryNames(res, idx))})
}

// Refresh handles POST /views/catalog/refresh
func (h *CatalogHandler) Refresh(c *gin.Context) {
	categories, menuItems := h.store.RefreshCatalog(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog refreshed",
		"data": gin.H{
			"categories": categories.String(),
			"menuItems":  menuItems.String(),
		},
	})
}

// view rebuilds the caller's view state from the query string. The criteria
// are applied before the page so the requested page survives.
func (h *CatalogHandler) view(c *gin.Context, pageSize int, category string) *listing.View {
	v := listing.NewView(pageSize)
	v.SetFreeText(c.Query("q"))
	v.SetCategory(category)
	v.SetPage(queryPage(c))
	return v
}

func newListView[T any](v *listing.View, res listing.Result[T]) listView[T] {
	return listView[T]{
		Result:   res,
		Query:    v.Query(),
		HasPrev:  res.Page > 1,
		HasNext:  res.Page < res.TotalPages,
		PageSize: v.PageSize(),
	}
}

func withCategoryNames(res listing.Result[catalog.MenuItem], idx catalog.Index) listing.Result[MenuItemView] {
	items := make([]MenuItemView, 0, len(res.Items))
	for _, m := range res.Items {
		name, _ := idx.CategoryName(m)
		items = append(items, MenuItemView{MenuItem: m, CategoryName: name})
	}
	return listing.Result[MenuItemView]{
		Items:      items,
		Page:       res.Page,
		TotalPages: res.TotalPages,
		Total:      res.Total,
	}
}
