package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrEmptyCart = errors.New("cart is empty")

// Cart is a session-scoped shopping cart. Its state lives only in memory;
// nothing is persisted server-side until Checkout places the order.
type Cart struct {
	mu     sync.Mutex
	client *Client
	lines  []cartLine
}

type cartLine struct {
	product  Product
	quantity int
}

// CartItem is a read-only view of one cart line.
type CartItem struct {
	Product  Product
	Quantity int
}

func NewCart(client *Client) *Cart {
	return &Cart{client: client}
}

// Add puts quantity units of product in the cart, merging with an existing
// line for the same product.
func (c *Cart) Add(product Product, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].product.ID == product.ID {
			c.lines[i].quantity += quantity
			return nil
		}
	}
	c.lines = append(c.lines, cartLine{product: product, quantity: quantity})
	return nil
}

// SetQuantity replaces the quantity for productID. Zero removes the line.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("quantity must not be negative, got %d", quantity)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].product.ID == productID {
			if quantity == 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			} else {
				c.lines[i].quantity = quantity
			}
			return nil
		}
	}
	return fmt.Errorf("product %s not in cart", productID)
}

func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]CartItem, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, CartItem{Product: line.product, Quantity: line.quantity})
	}
	return items
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Total is the cart's price sum from the cached product snapshots. The server
// recomputes the authoritative total at checkout.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += line.product.Price * float64(line.quantity)
	}
	return total
}

// Checkout places the order for the cart's contents and clears the cart on
// success. On failure the cart is left untouched so the caller can retry.
func (c *Cart) Checkout(ctx context.Context, customerName, customerEmail string) (*Order, error) {
	c.mu.Lock()
	items := make([]OrderItem, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, OrderItem{ProductID: line.product.ID, Quantity: line.quantity})
	}
	c.mu.Unlock()

	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order, err := c.client.PlaceOrder(ctx, customerName, customerEmail, items)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()

	return order, nil
}
