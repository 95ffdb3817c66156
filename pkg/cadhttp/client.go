package cadhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/errors"
	"github.com/cadkit/cadkit/pkg/geom"
	"github.com/cadkit/cadkit/pkg/httputil"
	"github.com/cadkit/cadkit/pkg/observability"
)

// Client drives a remote CAD host over HTTP. It implements [cad.Session],
// so it can be handed straight to [cad.NewClient].
type Client struct {
	base     *url.URL
	http     *http.Client
	attempts int
	delay    time.Duration
}

var _ cad.Session = (*Client)(nil)

// ClientOption customizes a [Client].
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithRetry sets the retry policy for transient failures.
func WithRetry(attempts int, delay time.Duration) ClientOption {
	return func(c *Client) {
		c.attempts = attempts
		c.delay = delay
	}
}

// NewClient connects to the bridge server at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if err := errors.ValidateHostURL(baseURL); err != nil {
		return nil, err
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidArgument, err, "parse host url %q", baseURL)
	}

	c := &Client{
		base:     base,
		http:     &http.Client{Timeout: 30 * time.Second},
		attempts: 3,
		delay:    time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do performs one JSON round trip. in and out may be nil. Transport
// failures and 503 responses are retried; structured errors in the
// response body are decoded back into their original codes.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode request")
		}
	}

	path, query, _ := strings.Cut(path, "?")
	u := c.base.JoinPath(path)
	u.RawQuery = query
	hooks := observability.HTTP()

	return httputil.Retry(ctx, c.attempts, c.delay, func() error {
		req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(body))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "build request")
		}
		if in != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		hooks.OnRequest(ctx, method, u.Host, path)
		start := time.Now()
		resp, err := c.http.Do(req)
		if err != nil {
			hooks.OnError(ctx, method, u.Host, path, err)
			return &httputil.RetryableError{
				Err: errors.Wrap(errors.ErrCodeHostUnavailable, err, "host %s unreachable", u.Host),
			}
		}
		defer resp.Body.Close()
		hooks.OnResponse(ctx, method, u.Host, path, resp.StatusCode, time.Since(start))

		if resp.StatusCode >= 400 {
			apiErr := decodeError(resp)
			if resp.StatusCode == http.StatusServiceUnavailable {
				return &httputil.RetryableError{Err: apiErr}
			}
			return apiErr
		}

		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "decode response")
			}
		}
		return nil
	})
}

// decodeError rebuilds a structured error from an error response body.
func decodeError(resp *http.Response) error {
	var payload errorPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error.Code == "" {
		return errors.New(errors.ErrCodeInternal, "host returned status %d", resp.StatusCode)
	}
	return errors.New(errors.Code(payload.Error.Code), "%s", payload.Error.Message)
}

// =============================================================================
// Layers
// =============================================================================

func (c *Client) CreateLayer(ctx context.Context, layer cad.Layer) error {
	return c.do(ctx, http.MethodPost, apiVersion+"/layers", layer, nil)
}

func (c *Client) DeleteLayer(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, apiVersion+"/layers/"+url.PathEscape(name), nil, nil)
}

func (c *Client) SetActiveLayer(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPut, apiVersion+"/layers/active", nameRequest{Name: name}, nil)
}

func (c *Client) SetLayerVisibility(ctx context.Context, name string, visible bool) error {
	path := apiVersion + "/layers/" + url.PathEscape(name) + "/visibility"
	return c.do(ctx, http.MethodPut, path, visibilityRequest{Visible: visible}, nil)
}

func (c *Client) LockLayer(ctx context.Context, name string, locked bool) error {
	path := apiVersion + "/layers/" + url.PathEscape(name) + "/lock"
	return c.do(ctx, http.MethodPut, path, lockRequest{Locked: locked}, nil)
}

func (c *Client) SetLayerColor(ctx context.Context, name string, color cad.Color) error {
	path := apiVersion + "/layers/" + url.PathEscape(name) + "/color"
	return c.do(ctx, http.MethodPut, path, colorRequest{Color: color}, nil)
}

func (c *Client) SetLayerLinetype(ctx context.Context, name, linetype string) error {
	path := apiVersion + "/layers/" + url.PathEscape(name) + "/linetype"
	return c.do(ctx, http.MethodPut, path, linetypeRequest{Linetype: linetype}, nil)
}

func (c *Client) Layers(ctx context.Context) ([]cad.Layer, error) {
	var layers []cad.Layer
	err := c.do(ctx, http.MethodGet, apiVersion+"/layers", nil, &layers)
	return layers, err
}

// =============================================================================
// Entities
// =============================================================================

func (c *Client) AddLine(ctx context.Context, start, end geom.Point) (cad.Handle, error) {
	var resp handleResponse
	err := c.do(ctx, http.MethodPost, apiVersion+"/entities/line", lineRequest{Start: start, End: end}, &resp)
	return resp.Handle, err
}

func (c *Client) AddCircle(ctx context.Context, center geom.Point, radius float64) (cad.Handle, error) {
	var resp handleResponse
	err := c.do(ctx, http.MethodPost, apiVersion+"/entities/circle", circleRequest{Center: center, Radius: radius}, &resp)
	return resp.Handle, err
}

func (c *Client) AddEllipse(ctx context.Context, center, majorAxis geom.Point, ratio float64) (cad.Handle, error) {
	var resp handleResponse
	req := ellipseRequest{Center: center, MajorAxis: majorAxis, Ratio: ratio}
	err := c.do(ctx, http.MethodPost, apiVersion+"/entities/ellipse", req, &resp)
	return resp.Handle, err
}

func (c *Client) AddRectangle(ctx context.Context, lowerLeft, upperRight geom.Point) (cad.Handle, error) {
	var resp handleResponse
	req := rectangleRequest{LowerLeft: lowerLeft, UpperRight: upperRight}
	err := c.do(ctx, http.MethodPost, apiVersion+"/entities/rectangle", req, &resp)
	return resp.Handle, err
}

func (c *Client) AddText(ctx context.Context, text cad.Text) (cad.Handle, error) {
	var resp handleResponse
	err := c.do(ctx, http.MethodPost, apiVersion+"/entities/text", text, &resp)
	return resp.Handle, err
}

func (c *Client) AddDimension(ctx context.Context, dim cad.Dimension) (cad.Handle, error) {
	var resp handleResponse
	err := c.do(ctx, http.MethodPost, apiVersion+"/entities/dimension", dim, &resp)
	return resp.Handle, err
}

func (c *Client) DeleteObject(ctx context.Context, h cad.Handle) error {
	return c.do(ctx, http.MethodDelete, c.entityPath(h, ""), nil, nil)
}

func (c *Client) CloneObject(ctx context.Context, h cad.Handle, insertion geom.Point) (cad.Handle, error) {
	var resp handleResponse
	err := c.do(ctx, http.MethodPost, c.entityPath(h, "/clone"), pointRequest{Point: insertion}, &resp)
	return resp.Handle, err
}

func (c *Client) Objects(ctx context.Context, filter cad.ObjectFilter) ([]cad.Object, error) {
	q := url.Values{}
	if filter.Type != "" {
		q.Set("type", string(filter.Type))
	}
	if filter.Layer != "" {
		q.Set("layer", filter.Layer)
	}
	if filter.Block != "" {
		q.Set("block", filter.Block)
	}
	path := apiVersion + "/entities"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var objects []cad.Object
	err := c.do(ctx, http.MethodGet, path, nil, &objects)
	return objects, err
}

func (c *Client) Move(ctx context.Context, h cad.Handle, to geom.Point) error {
	return c.do(ctx, http.MethodPost, c.entityPath(h, "/move"), pointRequest{Point: to}, nil)
}

func (c *Client) Scale(ctx context.Context, h cad.Handle, base geom.Point, factor float64) error {
	return c.do(ctx, http.MethodPost, c.entityPath(h, "/scale"), scaleRequest{Base: base, Factor: factor}, nil)
}

func (c *Client) Rotate(ctx context.Context, h cad.Handle, base geom.Point, angle float64) error {
	return c.do(ctx, http.MethodPost, c.entityPath(h, "/rotate"), rotateRequest{Base: base, Angle: angle}, nil)
}

func (c *Client) entityPath(h cad.Handle, suffix string) string {
	return apiVersion + "/entities/" + url.PathEscape(string(h)) + suffix
}

// =============================================================================
// Blocks
// =============================================================================

func (c *Client) InsertBlock(ctx context.Context, ref cad.BlockReference) (cad.Handle, error) {
	var resp handleResponse
	err := c.do(ctx, http.MethodPost, apiVersion+"/blocks/references", ref, &resp)
	return resp.Handle, err
}

func (c *Client) ImportBlock(ctx context.Context, path string) (string, error) {
	var resp nameResponse
	err := c.do(ctx, http.MethodPost, apiVersion+"/blocks/import", pathRequest{Path: path}, &resp)
	return resp.Name, err
}

func (c *Client) ExportBlock(ctx context.Context, name, path string) error {
	p := apiVersion + "/blocks/" + url.PathEscape(name) + "/export"
	return c.do(ctx, http.MethodPost, p, exportBlockRequest{Path: path}, nil)
}

func (c *Client) BlockNames(ctx context.Context) ([]string, error) {
	var resp namesResponse
	err := c.do(ctx, http.MethodGet, apiVersion+"/blocks", nil, &resp)
	return resp.Names, err
}

func (c *Client) BlockAttributes(ctx context.Context, h cad.Handle) ([]cad.Attribute, error) {
	var attrs []cad.Attribute
	err := c.do(ctx, http.MethodGet, c.entityPath(h, "/attributes"), nil, &attrs)
	return attrs, err
}

func (c *Client) SetBlockAttribute(ctx context.Context, h cad.Handle, tag, value string) error {
	path := c.entityPath(h, "/attributes/"+url.PathEscape(tag))
	return c.do(ctx, http.MethodPut, path, attributeValueRequest{Value: value}, nil)
}

func (c *Client) DeleteBlockAttribute(ctx context.Context, h cad.Handle, tag string) error {
	path := c.entityPath(h, "/attributes/"+url.PathEscape(tag))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// =============================================================================
// Groups
// =============================================================================

func (c *Client) CreateGroup(ctx context.Context, name string, members []cad.Handle) error {
	return c.do(ctx, http.MethodPost, apiVersion+"/groups", groupRequest{Name: name, Members: members}, nil)
}

func (c *Client) AddToGroup(ctx context.Context, name string, members []cad.Handle) error {
	path := apiVersion + "/groups/" + url.PathEscape(name) + "/members"
	return c.do(ctx, http.MethodPost, path, membersRequest{Members: members}, nil)
}

func (c *Client) RemoveFromGroup(ctx context.Context, name string, members []cad.Handle) error {
	path := apiVersion + "/groups/" + url.PathEscape(name) + "/remove"
	return c.do(ctx, http.MethodPost, path, membersRequest{Members: members}, nil)
}

func (c *Client) GroupMembers(ctx context.Context, name string) ([]cad.Handle, error) {
	var resp membersResponse
	err := c.do(ctx, http.MethodGet, apiVersion+"/groups/"+url.PathEscape(name), nil, &resp)
	return resp.Members, err
}

// =============================================================================
// Prompts, messages, and documents
// =============================================================================

func (c *Client) PromptPoint(ctx context.Context, prompt string) (geom.Point, error) {
	var resp pointResponse
	err := c.do(ctx, http.MethodPost, apiVersion+"/prompts/point", promptRequest{Prompt: prompt}, &resp)
	return resp.Point, err
}

func (c *Client) PromptString(ctx context.Context, prompt string) (string, error) {
	var resp stringResponse
	err := c.do(ctx, http.MethodPost, apiVersion+"/prompts/string", promptRequest{Prompt: prompt}, &resp)
	return resp.Value, err
}

func (c *Client) PromptInt(ctx context.Context, prompt string) (int, error) {
	var resp intResponse
	err := c.do(ctx, http.MethodPost, apiVersion+"/prompts/int", promptRequest{Prompt: prompt}, &resp)
	return resp.Value, err
}

func (c *Client) ShowMessage(ctx context.Context, message string) error {
	return c.do(ctx, http.MethodPost, apiVersion+"/messages", messageRequest{Message: message}, nil)
}

func (c *Client) Open(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodPost, apiVersion+"/document/open", pathRequest{Path: path}, nil)
}

func (c *Client) SaveAs(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodPost, apiVersion+"/document/save", pathRequest{Path: path}, nil)
}
