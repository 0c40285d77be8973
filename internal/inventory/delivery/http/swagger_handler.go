package http

// UpsertInventory godoc
// @Summary Upsert an inventory record
// @Description Sets quantity and reorder thresholds for a store/product pair
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{store_id=int,product_id=int,quantity=int,reorder_level=int,reorder_quantity=int} true "Inventory data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/inventory [put]
func (h *InventoryHandler) UpsertInventoryDoc() {}

// LowStock godoc
// @Summary List low stock records
// @Description Lists records at or below their reorder level, optionally for one store
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Param store_id query int false "Store ID"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStockDoc() {}
