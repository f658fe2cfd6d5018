package client

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"gudang/internal/models"
)

// APIError is the error surfaced to callers of the API client. Message is
// the server-provided message when one was present, otherwise a generic
// per-status message. StatusCode is zero when no response was received.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type errorBody struct {
	Error string `json:"error"`
}

// Client is the HTTP client for the inventory API.
type Client struct {
	http *resty.Client
}

// New creates a Client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api".
func New(baseURL string) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")
	return &Client{http: rc}
}

// ProductInput is the request body for creating a product. A nil
// StockAlertThreshold lets the server default it.
type ProductInput struct {
	Name                string  `json:"name"`
	SKU                 string  `json:"sku"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	StockAlertThreshold *int    `json:"stockAlertThreshold,omitempty"`
}

// ProductUpdate is the request body for a partial update; nil fields are
// left unchanged by the server.
type ProductUpdate struct {
	Name                *string  `json:"name,omitempty"`
	SKU                 *string  `json:"sku,omitempty"`
	Quantity            *int     `json:"quantity,omitempty"`
	Price               *float64 `json:"price,omitempty"`
	StockAlertThreshold *int     `json:"stockAlertThreshold,omitempty"`
}

func apiError(resp *resty.Response) *APIError {
	msg := ""
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		msg = body.Error
	}
	if msg == "" {
		switch {
		case resp.StatusCode() == http.StatusNotFound:
			msg = "Resource not found"
		case resp.StatusCode() == http.StatusBadRequest:
			msg = "Invalid request"
		case resp.StatusCode() >= http.StatusInternalServerError:
			msg = "Server error. Please try again later"
		default:
			msg = http.StatusText(resp.StatusCode())
		}
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: msg}
}

func (c *Client) execute(req *resty.Request, method, url string) (*resty.Response, error) {
	resp, err := req.SetError(&errorBody{}).Execute(method, url)
	if err != nil {
		return nil, &APIError{Message: "Unable to connect to server"}
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return resp, nil
}

func (c *Client) listPage(path string, page, limit int, search string) (*models.ProductPage, error) {
	var result models.ProductPage
	req := c.http.R().
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&result)
	if search != "" {
		req.SetQueryParam("search", search)
	}
	if _, err := c.execute(req, http.MethodGet, path); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListProducts fetches one page of the product listing.
func (c *Client) ListProducts(page, limit int, search string) (*models.ProductPage, error) {
	return c.listPage("/products", page, limit, search)
}

// ListLowStock fetches one page of the low-stock report.
func (c *Client) ListLowStock(page, limit int, search string) (*models.ProductPage, error) {
	return c.listPage("/products/report/low-stock", page, limit, search)
}

// Stats fetches the aggregate inventory statistics.
func (c *Client) Stats() (*models.ProductStats, error) {
	var stats models.ProductStats
	req := c.http.R().SetResult(&stats)
	if _, err := c.execute(req, http.MethodGet, "/products/stats"); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ExportCSV downloads the inventory export and returns the server-suggested
// filename alongside the raw CSV bytes.
func (c *Client) ExportCSV() (string, []byte, error) {
	resp, err := c.execute(c.http.R(), http.MethodGet, "/products/export/csv")
	if err != nil {
		return "", nil, err
	}

	filename := "inventory.csv"
	if cd := resp.Header().Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			filename = params["filename"]
		}
	}
	return filename, resp.Body(), nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(id string) (*models.Product, error) {
	var product models.Product
	req := c.http.R().SetResult(&product)
	if _, err := c.execute(req, http.MethodGet, fmt.Sprintf("/products/%s", id)); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a new product.
func (c *Client) CreateProduct(input ProductInput) (*models.Product, error) {
	var product models.Product
	req := c.http.R().SetBody(input).SetResult(&product)
	if _, err := c.execute(req, http.MethodPost, "/products"); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct applies a partial update to a product.
func (c *Client) UpdateProduct(id string, update ProductUpdate) (*models.Product, error) {
	var product models.Product
	req := c.http.R().SetBody(update).SetResult(&product)
	if _, err := c.execute(req, http.MethodPut, fmt.Sprintf("/products/%s", id)); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct deletes a product by id.
func (c *Client) DeleteProduct(id string) error {
	_, err := c.execute(c.http.R(), http.MethodDelete, fmt.Sprintf("/products/%s", id))
	return err
}
