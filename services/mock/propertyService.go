package mock

import (
	"context"

	"github.com/matrizimoveis/matriz_portal/entities"
	"github.com/matrizimoveis/matriz_portal/services"
)

type mockPropertyService struct{}

// NewMockPropertyService creates a PropertyService serving the literal listings
func NewMockPropertyService() services.PropertyService {
	return &mockPropertyService{}
}

func (s *mockPropertyService) GetProperties(ctx context.Context) ([]entities.Property, error) {
	return properties(), nil
}

func (s *mockPropertyService) GetPropertyWithID(ctx context.Context, id string) (*entities.Property, error) {
	for _, property := range properties() {
		if property.ID == id {
			return &property, nil
		}
	}
	return nil, services.ErrNotFound
}
