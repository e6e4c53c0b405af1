package services

import (
	"context"

	"github.com/matrizimoveis/matriz_portal/entities"
)

// PropertyService is the service for the property listings
type PropertyService interface {
	GetProperties(ctx context.Context) ([]entities.Property, error)
	GetPropertyWithID(ctx context.Context, id string) (*entities.Property, error)
}
