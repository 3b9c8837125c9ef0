// Package property carries the property identity shared across the engine.
// The full property record lives with the rental-management service.
package property

type PropertyID string
