package repository

import "errors"

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderVersionConflict = errors.New("order was modified concurrently")
	ErrProductNotFound      = errors.New("product not found")
	ErrServiceNotFound      = errors.New("service not found")
	ErrPortfolioNotFound    = errors.New("portfolio item not found")
	ErrContactNotFound      = errors.New("contact message not found")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrSettingsNotFound     = errors.New("settings not found")
)
