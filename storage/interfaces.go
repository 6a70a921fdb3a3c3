package storage

import "zomato-insights/models"

// RestaurantWriter is the interface any storage backend must satisfy for
// persisting the normalized table.
type RestaurantWriter interface {
	Write(restaurants []*models.Restaurant) error
	Close() error
}
