package main

// @title Inventryy API
// @version 1.0
// @description Multi-store retail back office: catalog, per-store inventory, sales with atomic stock reconciliation, and an audit trail.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/AY-10/inventryy
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/AY-10/inventryy/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Sales
// @tag.description Sale recording and reconciliation endpoints

// @tag.name Inventory
// @tag.description Per-store inventory endpoints

// @tag.name Catalog
// @tag.description Product and category endpoints

// @tag.name Users
// @tag.description Authentication and user management endpoints
