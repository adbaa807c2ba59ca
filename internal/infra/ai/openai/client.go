package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/charknest/charknest/internal/domain/geo"
	"github.com/charknest/charknest/internal/domain/listings"
	"github.com/charknest/charknest/internal/infra/ai/prompt"
)

type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) *Client {
	return &Client{Client: openai.NewClient(apiKey), Model: model}
}

func (c *Client) ComposeListings(ctx context.Context, items []listings.Listing) (string, error) {
	return c.complete(ctx, prompt.Listings(items), 0.5)
}

func (c *Client) ComposeProximity(ctx context.Context, amenities geo.AmenityMap, score float64) (string, error) {
	return c.complete(ctx, prompt.Proximity(amenities, score), 0.7)
}

func (c *Client) ComposeMarketInsights(ctx context.Context, location string) (string, error) {
	return c.complete(ctx, prompt.MarketInsights(location), 0.5)
}

// complete runs one single-turn chat completion with the given sampling
// temperature.
func (c *Client) complete(ctx context.Context, content string, temperature float32) (string, error) {
	model := c.Model
	if model == "" {
		model = openai.GPT4o
	}

	resp, err := c.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
