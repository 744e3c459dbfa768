// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The catalog service is the heart of the storefront: it turns a
// FilterRequest into an ordered result set via a fixed filter pipeline
// and a rating/review-volume relevance ranking.
package services
