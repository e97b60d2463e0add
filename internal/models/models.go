package models

// Client-side copies of backend payloads. Every entity here is server-owned;
// the storefront only decodes, renders and posts them back.

type Restaurant struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	CuisineTypes []string `json:"cuisineTypes"`
	City         string   `json:"city"`
	Rating       float64  `json:"rating"`
	ImageUrl     string   `json:"imageUrl"`
	Promoted     bool     `json:"promoted"`
	Address      *Address `json:"address,omitempty"`
	DeliveryTime string   `json:"deliveryTime,omitempty"`
	DeliveryFee  float64  `json:"deliveryFee,omitempty"`
}

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

// RestaurantPage is the paginated envelope returned by restaurant search.
type RestaurantPage struct {
	Content       []Restaurant `json:"content"`
	TotalElements int          `json:"totalElements"`
	TotalPages    int          `json:"totalPages"`
	PageNumber    int          `json:"pageNumber"`
}

// SearchFilter is the restaurant search request body. The zero value means
// "no filter" and returns the full listing.
type SearchFilter struct {
	Query   string `json:"query,omitempty"`
	City    string `json:"city,omitempty"`
	Cuisine string `json:"cuisine,omitempty"`
}

type FullMenu struct {
	Categories []MenuCategory `json:"categories"`
}

type MenuCategory struct {
	CategoryID   string     `json:"categoryId"`
	CategoryName string     `json:"categoryName"`
	Items        []MenuItem `json:"items"`
}

type MenuItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	DietaryType  string  `json:"dietaryType"`
	IsBestseller bool    `json:"isBestseller"`
	ImageUrl     string  `json:"imageUrl"`
}

// Vegetarian reports whether the item carries the vegetarian dietary flag.
func (m MenuItem) Vegetarian() bool {
	return m.DietaryType == "VEGETARIAN"
}

type Cart struct {
	RestaurantID   string     `json:"restaurantId"`
	RestaurantName string     `json:"restaurantName"`
	Items          []CartItem `json:"items"`
	TotalItems     int        `json:"totalItems"`
	TotalAmount    float64    `json:"totalAmount"`
}

// Empty reports whether the cart has no line items. A nil cart is empty.
func (c *Cart) Empty() bool {
	return c == nil || len(c.Items) == 0
}

type CartItem struct {
	ID       string  `json:"id"`
	ItemName string  `json:"itemName"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// AddCartItemRequest is the normalized line item posted on "add to cart".
type AddCartItemRequest struct {
	RestaurantID string  `json:"restaurantId"`
	MenuItemID   string  `json:"menuItemId"`
	ItemName     string  `json:"itemName"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	ImageUrl     string  `json:"imageUrl"`
}

type PlaceOrderRequest struct {
	PaymentMethod   string `json:"paymentMethod"`
	DeliveryAddress string `json:"deliveryAddress"`
}

type OrderConfirmation struct {
	OrderTrackingNumber string `json:"orderTrackingNumber"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
}
