package routes

// Routes package cung cấp tất cả routing functions cho Address Query Service
//
// Cấu trúc:
// - api.go: API routes (/v1/*) và health checks
// - web.go: Web routes (/, /docs)
//
// Sử dụng:
// routes.SetupAllRoutes(router, queryController)
