// Package whatsapp sends concierge cards over the Meta Graph API and
// parses inbound webhook payloads.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"voyager/models"
)

const graphAPIBase = "https://graph.facebook.com/v18.0"

// Client talks to the WhatsApp Business Cloud API.
type Client struct {
	accessToken   string
	phoneNumberID string
	httpClient    *http.Client
}

// NewClient creates a WhatsApp client. Both values come from the Meta
// app dashboard and are injected via environment configuration.
func NewClient(accessToken, phoneNumberID string) *Client {
	return &Client{
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether sending is possible.
func (c *Client) Configured() bool {
	return c != nil && c.accessToken != "" && c.phoneNumberID != ""
}

// SendText sends a plain text message.
func (c *Client) SendText(ctx context.Context, to, body string) error {
	msg := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text":              map[string]string{"body": body},
	}
	return c.send(ctx, msg)
}

// SendFlightCard sends an interactive flight deal card with a book button.
func (c *Client) SendFlightCard(ctx context.Context, to string, deal models.WidgetFlightDeal) error {
	body := fmt.Sprintf("✈️ %s\n%s · %s\n%s · %s", deal.Route, deal.Price, deal.Cabin,
		deal.AirlineName, deal.StopsDisplay)
	if deal.Savings != "" {
		body += "\n🔥 " + deal.Savings
	}

	msg := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "interactive",
		"interactive": map[string]interface{}{
			"type": "button",
			"header": map[string]interface{}{
				"type":  "image",
				"image": map[string]string{"link": deal.ImageURL},
			},
			"body": map[string]string{"text": body},
			"action": map[string]interface{}{
				"buttons": []interface{}{
					button("book_"+deal.ID, "Book Now"),
					button("details_"+deal.ID, "Details"),
				},
			},
		},
	}
	return c.send(ctx, msg)
}

// SendHotelCard sends an interactive hotel card.
func (c *Client) SendHotelCard(ctx context.Context, to string, hotel models.WidgetHotel) error {
	body := fmt.Sprintf("🏨 %s\n%s %s · %s reviews\n%s · total %s",
		hotel.Name, hotel.StarsDisplay, hotel.RatingDisplay, fmt.Sprintf("%d", hotel.ReviewCount),
		hotel.PricePerNight, hotel.TotalPrice)
	if hotel.AmenitiesDisplay != "" {
		body += "\n" + hotel.AmenitiesDisplay
	}

	msg := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "interactive",
		"interactive": map[string]interface{}{
			"type": "button",
			"header": map[string]interface{}{
				"type":  "image",
				"image": map[string]string{"link": hotel.ImageURL},
			},
			"body": map[string]string{"text": body},
			"action": map[string]interface{}{
				"buttons": []interface{}{
					button("book_"+hotel.ID, "Book Now"),
					button("cart_"+hotel.ID, "Add to Trip"),
				},
			},
		},
	}
	return c.send(ctx, msg)
}

// SendRestaurantCard sends an interactive restaurant card.
func (c *Client) SendRestaurantCard(ctx context.Context, to string, r models.WidgetRestaurant) error {
	body := fmt.Sprintf("🍽️ %s\n%s · %s\n%s", r.Name, r.CuisineDisplay, r.PriceRange, r.Description)
	if r.MichelinDisplay != "" {
		body += "\n" + r.MichelinDisplay + " Michelin"
	}

	msg := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "interactive",
		"interactive": map[string]interface{}{
			"type": "button",
			"header": map[string]interface{}{
				"type":  "image",
				"image": map[string]string{"link": r.ImageURL},
			},
			"body": map[string]string{"text": body},
			"action": map[string]interface{}{
				"buttons": []interface{}{
					button("book_"+r.ID, "Reserve"),
					button("details_"+r.ID, "Details"),
				},
			},
		},
	}
	return c.send(ctx, msg)
}

// ListOption is one row in an interactive list message.
type ListOption struct {
	ID          string
	Title       string
	Description string
}

// SendOptionsList sends an interactive list of options.
func (c *Client) SendOptionsList(ctx context.Context, to, header, bodyText string, options []ListOption) error {
	rows := make([]interface{}, 0, len(options))
	for _, opt := range options {
		rows = append(rows, map[string]string{
			"id":          opt.ID,
			"title":       opt.Title,
			"description": opt.Description,
		})
	}

	msg := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "interactive",
		"interactive": map[string]interface{}{
			"type":   "list",
			"header": map[string]string{"type": "text", "text": header},
			"body":   map[string]string{"text": bodyText},
			"action": map[string]interface{}{
				"button":   "View Options",
				"sections": []interface{}{map[string]interface{}{"title": header, "rows": rows}},
			},
		},
	}
	return c.send(ctx, msg)
}

func button(id, title string) map[string]interface{} {
	return map[string]interface{}{
		"type":  "reply",
		"reply": map[string]string{"id": id, "title": title},
	}
}

func (c *Client) send(ctx context.Context, msg map[string]interface{}) error {
	if !c.Configured() {
		return fmt.Errorf("whatsapp client not configured")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", graphAPIBase, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whatsapp API returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
