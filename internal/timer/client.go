package timer

import (
	"context"

	"github.com/muurk/segtimer/internal/httpclient"
)

// Client controls one seven-segment timer. Each method sends exactly one
// request and returns the request layer's error unchanged.
type Client struct {
	http   *httpclient.Client
	routes Routes
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

type clientOptions struct {
	routes Routes
	http   []httpclient.Option
}

// WithRoutes overrides device paths. Empty entries keep their defaults.
func WithRoutes(r Routes) ClientOption {
	return func(o *clientOptions) {
		o.routes = r
	}
}

// WithHTTPOptions passes options through to the request layer.
func WithHTTPOptions(opts ...httpclient.Option) ClientOption {
	return func(o *clientOptions) {
		o.http = append(o.http, opts...)
	}
}

// NewClient creates a client for the device at baseURL (e.g. "http://192.168.1.40").
func NewClient(baseURL string, opts ...ClientOption) *Client {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Client{
		http:   httpclient.New(baseURL, o.http...),
		routes: o.routes.withDefaults(),
	}
}

// BaseURL returns the device base URL
func (c *Client) BaseURL() string {
	return c.http.BaseURL()
}

// Routes returns the paths in use
func (c *Client) Routes() Routes {
	return c.routes
}

type colorBody struct {
	Color *ColorSelection `json:"color,omitempty"`
}

type timerBody struct {
	Time  Time            `json:"time"`
	Color *ColorSelection `json:"color,omitempty"`
}

type singleColorBody struct {
	Color RGBColor `json:"color"`
}

type colorsBody struct {
	Colors []RGBColor `json:"colors"`
}

type animationBody struct {
	Animation Animation  `json:"animation"`
	Colors    []RGBColor `json:"colors"`
}

// Off turns the display off.
func (c *Client) Off(ctx context.Context) error {
	_, err := httpclient.Get[any](ctx, c.http, c.routes.Off, nil)
	return err
}

// ShowCurrentTime switches the display to the clock. A nil color keeps the
// device's current color.
func (c *Client) ShowCurrentTime(ctx context.Context, color *ColorSelection) error {
	return c.post(ctx, c.routes.ShowCurrentTime, colorBody{Color: color})
}

// StartTimer starts a countdown. A nil color keeps the device's current color.
func (c *Client) StartTimer(ctx context.Context, t Time, color *ColorSelection) error {
	return c.post(ctx, c.routes.StartTimer, timerBody{Time: t, Color: color})
}

// CancelTimer stops a running countdown.
func (c *Client) CancelTimer(ctx context.Context) error {
	return c.post(ctx, c.routes.CancelTimer, nil)
}

// ChangeColor sets every segment to one color.
func (c *Client) ChangeColor(ctx context.Context, color RGBColor) error {
	return c.post(ctx, c.routes.ChangeColor, singleColorBody{Color: color})
}

// ChangeMultipleColors sets a color per digit.
func (c *Client) ChangeMultipleColors(ctx context.Context, colors []RGBColor) error {
	return c.post(ctx, c.routes.ChangeMultipleColors, colorsBody{Colors: palette(colors)})
}

// StartAnimation runs a built-in animation with the given palette.
func (c *Client) StartAnimation(ctx context.Context, animation Animation, colors []RGBColor) error {
	return c.post(ctx, c.routes.StartAnimation, animationBody{Animation: animation, Colors: palette(colors)})
}

// StopAnimation stops the running animation.
func (c *Client) StopAnimation(ctx context.Context) error {
	return c.post(ctx, c.routes.StopAnimation, nil)
}

// palette encodes a nil list as [] rather than null.
func palette(colors []RGBColor) []RGBColor {
	if colors == nil {
		return []RGBColor{}
	}
	return colors
}

func (c *Client) post(ctx context.Context, route string, payload any) error {
	_, err := httpclient.Post[any](ctx, c.http, route, payload, nil)
	return err
}
