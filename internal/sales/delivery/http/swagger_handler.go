package http

// CreateSale godoc
// @Summary Create a new sale
// @Description Creates a sale with multiple items, atomically reserving store inventory. Rejected sales leave inventory unchanged.
// @Tags Sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{store_id=int,payment_method=string,items=array} true "Sale data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string,data=object} "Insufficient stock"
// @Router /api/sales [post]
func (h *SalesHandler) CreateSaleDoc() {}

// ListSales godoc
// @Summary List sales
// @Description Get sales with their items, optionally filtered by store
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Param store_id query int false "Store ID"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/sales [get]
func (h *SalesHandler) ListSalesDoc() {}

// DeleteSale godoc
// @Summary Delete a sale
// @Description Deletes a sale and restores the reserved quantities to store inventory (Super admin only)
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/sales/{id} [delete]
func (h *SalesHandler) DeleteSaleDoc() {}

// DeleteSaleItem godoc
// @Summary Delete a sale item
// @Description Removes one line from a sale, restores its quantity, and recomputes the sale total (Super admin only)
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Param id path int true "Sale item ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/sales/items/{id} [delete]
func (h *SalesHandler) DeleteSaleItemDoc() {}
