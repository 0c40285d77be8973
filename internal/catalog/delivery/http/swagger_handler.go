package http

// CreateProduct godoc
// @Summary Create a new product
// @Description Creates a catalog product with its current unit price
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,category_id=int,sku=string,price=number} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/products [post]
func (h *CatalogHandler) CreateProductDoc() {}

// ListProducts godoc
// @Summary List products
// @Description Get catalog products, optionally filtered by category
// @Tags Catalog
// @Security BearerAuth
// @Produce json
// @Param category_id query int false "Category ID"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// UpdatePrice godoc
// @Summary Update a product price
// @Description Changes the current price used for new sales; completed sale totals are never rewritten (Super admin only)
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_id=int,new_price=number} true "Price update"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/price-update [post]
func (h *CatalogHandler) UpdatePriceDoc() {}

// CreateCategory godoc
// @Summary Create a new category
// @Description Creates a product category
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string} true "Category data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Router /api/categories [post]
func (h *CatalogHandler) CreateCategoryDoc() {}
