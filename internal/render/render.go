// Package render is the generation boundary: it turns an assembled Result
// into provider API calls and stores the returned images. Everything here
// runs strictly after the engine has returned; the engine never blocks on it.
package render

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"

	"github.com/sashabaranov/go-openai"

	"promptcanvas/easel/internal/assemble"
	"promptcanvas/easel/internal/config"
	"promptcanvas/easel/internal/db"
)

// Client calls the image-generation provider and persists results.
type Client struct {
	api     *openai.Client
	store   *db.DB
	quality string
}

// NewClient builds a Client. The API key is read from the env var named in
// settings (OPENAI_API_KEY by default).
func NewClient(store *db.DB, settings *config.Settings) (*Client, error) {
	keyEnv := settings.Render.APIKeyEnv
	apiKey := os.Getenv(keyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s not set", keyEnv)
	}
	return &Client{
		api:     openai.NewClient(apiKey),
		store:   store,
		quality: settings.Render.Quality,
	}, nil
}

// sizeForAspect maps an aspect ratio to the nearest size the API supports.
func sizeForAspect(aspect string) string {
	switch aspect {
	case "16:9", "3:2", "4:3":
		return "1792x1024"
	case "9:16", "2:3", "3:4":
		return "1024x1792"
	default:
		return "1024x1024"
	}
}

// requestPrompt folds the negative prompt into the request text, since the
// images API has no separate negative field.
func requestPrompt(result assemble.Result) string {
	if result.NegativePrompt == "" {
		return result.Prompt
	}
	return result.Prompt + ". Avoid: " + result.NegativePrompt
}

// Generate assembles API calls from the Result, one per requested image, and
// stores each returned blob against nodeID. Returns the stored image IDs.
func (c *Client) Generate(ctx context.Context, nodeID string, result assemble.Result) ([]string, error) {
	if result.Prompt == "" {
		return nil, fmt.Errorf("nothing to generate: assembled prompt is empty")
	}

	count := 1
	if result.Params.ImageCount != nil && *result.Params.ImageCount > 0 {
		count = *result.Params.ImageCount
	}
	prompt := requestPrompt(result)
	size := sizeForAspect(result.Params.AspectRatio)

	slog.Info("requesting generation",
		"node", nodeID, "model", result.Params.Model, "size", size, "count", count)

	var imageIDs []string
	for i := 0; i < count; i++ {
		resp, err := c.api.CreateImage(ctx, openai.ImageRequest{
			Prompt:         prompt,
			Model:          result.Params.Model,
			Size:           size,
			Quality:        c.quality,
			N:              1,
			ResponseFormat: openai.CreateImageResponseFormatB64JSON,
		})
		if err != nil {
			return imageIDs, fmt.Errorf("image request %d/%d: %w", i+1, count, err)
		}
		if len(resp.Data) == 0 {
			return imageIDs, fmt.Errorf("image request %d/%d: provider returned no data", i+1, count)
		}

		data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
		if err != nil {
			return imageIDs, fmt.Errorf("decoding image %d/%d: %w", i+1, count, err)
		}

		imageID, err := c.store.SaveImage(nodeID, result.Params.Model, result.Prompt, "image/png", data)
		if err != nil {
			return imageIDs, err
		}
		slog.Info("stored image", "node", nodeID, "image", imageID, "bytes", len(data))
		imageIDs = append(imageIDs, imageID)
	}

	return imageIDs, nil
}
