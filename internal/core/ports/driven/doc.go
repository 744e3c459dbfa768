// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the storefront to function:
//
//   - CatalogStore: Read access to the seeded travel-package catalog
//   - ItineraryStore: Read access to seeded traveler itineraries
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SearchHistoryStore: Recent-search persistence (SQLite). Without it,
//     the history command and the recent-searches panel are disabled.
//   - BookingStore: In-memory record of confirmations for the current
//     session. Without it, confirmations are shown but not listed.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
