package domain

import "errors"

var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingSelection is returned when a variant add lacks a size or color
	ErrMissingSelection = errors.New("size and color selection required")

	// ErrInvalidSelection is returned when the chosen size or color is not offered by the product
	ErrInvalidSelection = errors.New("selection not offered by product")

	// ErrOutOfStock is returned when adding a product that is not in stock
	ErrOutOfStock = errors.New("product out of stock")

	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")
)
