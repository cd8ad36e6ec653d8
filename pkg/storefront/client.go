// Package storefront is a Go client for the North West Meats API. It wraps the
// public catalog, ordering and contact endpoints plus the admin login flow, and
// carries a session Cart for building orders.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken installs the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"desc,omitempty"`
	Image       string  `json:"img"`
	Stock       int     `json:"stock"`
	Available   bool    `json:"available"`
}

type OrderItem struct {
	ProductID string  `json:"product"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Order struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	Status        string      `json:"status"`
}

type CarouselSlide struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image"`
	Link        string `json:"link,omitempty"`
	Order       int    `json:"order"`
	Active      bool   `json:"active"`
}

type MarqueeItem struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Order  int    `json:"order"`
	Active bool   `json:"active"`
}

type Admin struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResult struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

type orderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type createOrderRequest struct {
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
	Items         []orderItemRequest `json:"items"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// APIError carries the server's error message alongside the HTTP status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) PlaceOrder(ctx context.Context, customerName, customerEmail string, items []OrderItem) (*Order, error) {
	req := createOrderRequest{
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
	}
	for _, item := range items {
		req.Items = append(req.Items, orderItemRequest{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	var order Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) SubmitInquiry(ctx context.Context, name, email, message string) error {
	req := contactRequest{Name: name, Email: email, Message: message}
	return c.do(ctx, http.MethodPost, "/api/contact", req, nil)
}

func (c *Client) ActiveCarousel(ctx context.Context) ([]CarouselSlide, error) {
	var slides []CarouselSlide
	if err := c.do(ctx, http.MethodGet, "/api/carousel/active", nil, &slides); err != nil {
		return nil, err
	}
	return slides, nil
}

func (c *Client) ActiveMarquee(ctx context.Context) ([]MarqueeItem, error) {
	var items []MarqueeItem
	if err := c.do(ctx, http.MethodGet, "/api/marquee/active", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Login authenticates an admin and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/admin/login", loginRequest{Username: username, Password: password}, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

func (c *Client) Profile(ctx context.Context) (*Admin, error) {
	var admin Admin
	if err := c.do(ctx, http.MethodGet, "/api/admin/profile", nil, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}
