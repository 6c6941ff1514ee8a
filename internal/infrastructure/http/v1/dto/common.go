// Package dto defines the request/response shapes of API v1.
package dto

// IDResponse returns a generated identifier from a write operation.
type IDResponse struct {
	ID int64 `json:"id"`
}
