package services

import (
	"context"
	"errors"
	"sync"

	"foodexpress-storefront/internal/backend"
	"foodexpress-storefront/internal/models"
)

type CatalogService struct {
	client *backend.Client
}

func NewCatalogService(client *backend.Client) *CatalogService {
	return &CatalogService{client: client}
}

// SearchRestaurants returns the unfiltered restaurant listing.
func (s *CatalogService) SearchRestaurants(ctx context.Context, id backend.Identity) ([]models.Restaurant, error) {
	page, err := s.client.SearchRestaurants(ctx, id, models.SearchFilter{})
	if err != nil {
		return nil, err
	}
	return page.Content, nil
}

// RestaurantDetail is everything the detail view needs. Cart is nil when the
// current identity has no cart.
type RestaurantDetail struct {
	Restaurant *models.Restaurant
	Menu       *models.FullMenu
	Cart       *models.Cart
}

// LoadRestaurantDetail fetches restaurant metadata, the full menu and the
// current cart concurrently and waits for all three to settle. A missing cart
// is tolerated; a restaurant or menu failure is returned after all fetches
// finish, alongside whatever did load.
func (s *CatalogService) LoadRestaurantDetail(ctx context.Context, id backend.Identity, restaurantID string) (*RestaurantDetail, error) {
	var (
		detail RestaurantDetail
		errs   [3]error
		wg     sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		detail.Restaurant, errs[0] = s.client.GetRestaurant(ctx, id, restaurantID)
	}()
	go func() {
		defer wg.Done()
		detail.Menu, errs[1] = s.client.GetFullMenu(ctx, id, restaurantID)
	}()
	go func() {
		defer wg.Done()
		cart, err := s.client.GetCart(ctx, id)
		if err != nil && !errors.Is(err, backend.ErrCartNotFound) {
			errs[2] = err
			return
		}
		detail.Cart = cart
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return &detail, err
		}
	}
	return &detail, nil
}
