// Package backend is the client for the flyer generation service.
//
// The service takes a flyer description and returns several candidate
// backgrounds, each with matching text and accent colours:
//
//	POST {base}/api/flier/generate
//
// A call fails with UPSTREAM_GENERATION_FAILURE when the transport fails,
// the status is not 2xx, the body cannot be decoded, success is false or no
// background options are returned. The underlying cause stays in the error
// chain.
package backend

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flierkit/pkg/errors"
	"github.com/matzehuels/flierkit/pkg/flier"
	"github.com/matzehuels/flierkit/pkg/integrations"
)

// GeneratePath is the generation endpoint relative to the service base URL.
const GeneratePath = "/api/flier/generate"

// Request is the generation request body.
type Request struct {
	Title           string `json:"title"`
	PromotionalText string `json:"promotionalText"`
	TargetAudience  string `json:"targetAudience"`
	BusinessType    string `json:"businessType"`
	StylePreference string `json:"stylePreference"`
	ColorScheme     string `json:"colorScheme"`
	MoodLevel       int    `json:"moodLevel"`
	FlierSize       string `json:"flierSize"`
	Orientation     string `json:"orientation"`
	Logo            string `json:"logo,omitempty"`
	UploadedImage   string `json:"uploadedImage,omitempty"`
	ImagePreference string `json:"imagePreference,omitempty"`
}

// RequestFrom builds the request body for r.
func RequestFrom(r *flier.Request) Request {
	return Request{
		Title:           r.Title,
		PromotionalText: r.PromotionalText,
		TargetAudience:  r.TargetAudience,
		BusinessType:    r.BusinessType,
		StylePreference: r.StylePreference,
		ColorScheme:     r.ColorScheme,
		MoodLevel:       r.MoodLevel,
		FlierSize:       r.FlierSize,
		Orientation:     r.Orientation,
		Logo:            r.Logo,
		UploadedImage:   r.UploadedImage,
		ImagePreference: r.ImagePreference,
	}
}

// BackgroundOption is one candidate background returned by the service.
type BackgroundOption struct {
	Name            string  `json:"name"`
	StyleName       string  `json:"styleName,omitempty"`
	BackgroundCSS   string  `json:"backgroundCSS"`
	BackgroundImage string  `json:"backgroundImage,omitempty"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	TextColor       string  `json:"textColor"`
	AccentColor     string  `json:"accentColor"`
	Description     string  `json:"description"`
	Source          string  `json:"source"`
	FontFamily      string  `json:"fontFamily,omitempty"`
	FontSize        float64 `json:"fontSize,omitempty"`
	BodyFontSize    float64 `json:"bodyFontSize,omitempty"`
}

// Background returns the option's background descriptor. The CSS value
// wins; otherwise the image and colour are combined.
func (o BackgroundOption) Background() flier.Background {
	if o.BackgroundCSS != "" {
		return flier.CSS(o.BackgroundCSS)
	}
	bg := flier.Background{Type: flier.BackgroundSolid, Color: o.BackgroundColor}
	if o.BackgroundImage != "" && o.BackgroundImage != "none" {
		bg.Type = flier.BackgroundImage
		bg.Image = o.BackgroundImage
	}
	return bg
}

// Response is the generation response body.
type Response struct {
	Success           bool               `json:"success"`
	Error             string             `json:"error,omitempty"`
	Layout            json.RawMessage    `json:"layout,omitempty"`
	BackgroundOptions []BackgroundOption `json:"backgroundOptions"`
	LayoutInfo        map[string]any     `json:"layoutInfo,omitempty"`
	ContentInfo       map[string]any     `json:"contentInfo,omitempty"`
}

// Client calls the generation service.
type Client struct {
	baseURL string
	http    *integrations.Client
	logger  *log.Logger
}

// NewClient creates a client for the service at baseURL. A zero timeout
// uses [integrations.DefaultTimeout].
func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) (*Client, error) {
	if err := errors.ValidateURL(baseURL); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    integrations.NewClient(timeout, nil),
		logger:  logger,
	}, nil
}

// HTTP exposes the shared client, mainly so tests can swap its transport.
func (c *Client) HTTP() *integrations.Client {
	return c.http
}

// BaseURL returns the service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Generate requests background options for r. The call is made once.
func (c *Client) Generate(ctx context.Context, r *flier.Request) (*Response, error) {
	start := time.Now()
	body := RequestFrom(r)

	var resp Response
	if err := c.http.PostJSON(ctx, c.baseURL+GeneratePath, body, &resp); err != nil {
		c.logger.Warn("generation request failed", "error", err, "elapsed", time.Since(start))
		return nil, errors.Wrap(errors.ErrCodeUpstreamGeneration, err, "generate flier %q", r.Title)
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "service reported failure"
		}
		return nil, errors.New(errors.ErrCodeUpstreamGeneration, "generate flier %q: %s", r.Title, msg)
	}
	if len(resp.BackgroundOptions) == 0 {
		return nil, errors.New(errors.ErrCodeUpstreamGeneration, "generate flier %q: no background options", r.Title)
	}

	c.logger.Debug("generation complete",
		"options", len(resp.BackgroundOptions), "elapsed", time.Since(start))
	return &resp, nil
}
