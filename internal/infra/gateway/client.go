// Package gateway is the REST client for the remote swap service. Every
// failure is tagged with an errs kind so the caller can tell a rejected
// mutation from a network fault; a timeout is a network failure, never
// success-by-default.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bookswap-engine/internal/domain/geo"
	"bookswap-engine/internal/pkg/errs"
	"bookswap-engine/internal/usecase"
	"bookswap-engine/internal/usecase/events"

	"github.com/google/uuid"
)

const (
	DefaultTimeout = 15 * time.Second

	headerIdempotencyKey = "Idempotency-Key"
)

// Client implements usecase.Gateway and usecase.BookCatalog over HTTP.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

func NewClient(baseURL, token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	_ usecase.Gateway     = (*Client)(nil)
	_ usecase.BookCatalog = (*Client)(nil)
)

type proposeBody struct {
	InitiatorBookID uuid.UUID  `json:"initiator_book"`
	ReceiverID      uuid.UUID  `json:"receiver"`
	ReceiverBookID  *uuid.UUID `json:"receiver_book,omitempty"`
	Message         string     `json:"message,omitempty"`
}

type confirmBody struct {
	Token string `json:"token"`
}

type rateBody struct {
	Value int `json:"value"`
}

type extensionBody struct {
	Days   int    `json:"days"`
	Reason string `json:"reason"`
}

type resolveBody struct {
	Decision   string  `json:"decision"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

type tokenGrantBody struct {
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issued_at"`
}

type bookBody struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner"`
	Available bool      `json:"available"`
}

type placesBody struct {
	Candidates []placeBody `json:"candidates"`
}

type placeBody struct {
	Name      string   `json:"name"`
	Lat       float64  `json:"lat"`
	Lng       float64  `json:"lng"`
	Type      string   `json:"type"`
	Rating    float64  `json:"rating"`
	Amenities []string `json:"amenities"`
}

// errorBody is the remote service's failure envelope.
type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) ProposeSwap(ctx context.Context, req usecase.ProposeRemote) (events.SwapSnapshot, error) {
	var out events.SwapSnapshot
	headers := map[string]string{headerIdempotencyKey: req.IdempotencyKey}
	err := c.do(ctx, http.MethodPost, "/swaps", proposeBody{
		InitiatorBookID: req.InitiatorBookID,
		ReceiverID:      req.ReceiverID,
		ReceiverBookID:  req.ReceiverBookID,
		Message:         req.Message,
	}, headers, &out)
	return out, err
}

func (c *Client) AcceptSwap(ctx context.Context, swapID uuid.UUID) (events.SwapSnapshot, error) {
	var out events.SwapSnapshot
	err := c.do(ctx, http.MethodPatch, "/swaps/"+swapID.String()+"/accept", nil, nil, &out)
	return out, err
}

func (c *Client) ConfirmSwap(ctx context.Context, swapID uuid.UUID, token string) (events.SwapSnapshot, error) {
	var out events.SwapSnapshot
	err := c.do(ctx, http.MethodPatch, "/swaps/"+swapID.String()+"/confirm", confirmBody{Token: token}, nil, &out)
	return out, err
}

func (c *Client) CancelSwap(ctx context.Context, swapID uuid.UUID) (events.SwapSnapshot, error) {
	var out events.SwapSnapshot
	err := c.do(ctx, http.MethodPatch, "/swaps/"+swapID.String()+"/cancel", nil, nil, &out)
	return out, err
}

func (c *Client) RateSwap(ctx context.Context, swapID uuid.UUID, value int) (events.SwapSnapshot, error) {
	var out events.SwapSnapshot
	err := c.do(ctx, http.MethodPost, "/swaps/"+swapID.String()+"/rate", rateBody{Value: value}, nil, &out)
	return out, err
}

func (c *Client) FetchSwap(ctx context.Context, swapID uuid.UUID) (events.SwapSnapshot, error) {
	var out events.SwapSnapshot
	err := c.do(ctx, http.MethodGet, "/swaps/"+swapID.String(), nil, nil, &out)
	return out, err
}

// IssueToken asks the qr endpoint for the swap's current handover code;
// the remote service mints a fresh one if none is outstanding.
func (c *Client) IssueToken(ctx context.Context, swapID uuid.UUID) (usecase.TokenGrant, error) {
	var out tokenGrantBody
	if err := c.do(ctx, http.MethodGet, "/swaps/"+swapID.String()+"/qr", nil, nil, &out); err != nil {
		return usecase.TokenGrant{}, err
	}
	return usecase.TokenGrant{Token: out.Token, IssuedAt: out.IssuedAt}, nil
}

func (c *Client) RequestExtension(ctx context.Context, swapID uuid.UUID, days int, reason string) (events.ExtensionSnapshot, error) {
	var out events.ExtensionSnapshot
	err := c.do(ctx, http.MethodPost, "/swaps/"+swapID.String()+"/extensions",
		extensionBody{Days: days, Reason: reason}, nil, &out)
	return out, err
}

func (c *Client) ResolveExtension(ctx context.Context, extensionID uuid.UUID, decision string, adminNotes *string) (events.ExtensionSnapshot, error) {
	var out events.ExtensionSnapshot
	err := c.do(ctx, http.MethodPatch, "/extensions/"+extensionID.String(),
		resolveBody{Decision: decision, AdminNotes: adminNotes}, nil, &out)
	return out, err
}

func (c *Client) SearchPlaces(ctx context.Context, partyA, partyB geo.Coordinates, transportMode string, placeTypes []string) ([]geo.Candidate, error) {
	q := url.Values{}
	q.Set("user1_lat", strconv.FormatFloat(partyA.Lat, 'f', -1, 64))
	q.Set("user1_lng", strconv.FormatFloat(partyA.Lng, 'f', -1, 64))
	q.Set("user2_lat", strconv.FormatFloat(partyB.Lat, 'f', -1, 64))
	q.Set("user2_lng", strconv.FormatFloat(partyB.Lng, 'f', -1, 64))
	if transportMode != "" {
		q.Set("transport_mode", transportMode)
	}
	for _, t := range placeTypes {
		q.Add("place_types[]", t)
	}

	var out placesBody
	if err := c.do(ctx, http.MethodGet, "/midpoint?"+q.Encode(), nil, nil, &out); err != nil {
		return nil, err
	}

	candidates := make([]geo.Candidate, 0, len(out.Candidates))
	for _, p := range out.Candidates {
		coords, err := geo.NewCoordinates(p.Lat, p.Lng)
		if err != nil {
			continue
		}
		candidates = append(candidates, geo.Candidate{
			Name:        p.Name,
			Coordinates: coords,
			Type:        p.Type,
			Rating:      p.Rating,
			Amenities:   p.Amenities,
		})
	}
	return candidates, nil
}

func (c *Client) OwnsAvailableBook(ctx context.Context, ownerID, bookID uuid.UUID) (bool, error) {
	var out bookBody
	err := c.do(ctx, http.MethodGet, "/books/"+bookID.String(), nil, nil, &out)
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return false, nil
		}
		return false, err
	}
	return out.OwnerID == ownerID && out.Available, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "marshal request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errs.WithKind(err, errs.KindNetwork, "swap service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.failure(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.WithKind(err, errs.KindNetwork, "malformed response from swap service")
	}
	return nil
}

// failure maps an HTTP failure to an errs kind. Unknown 4xx are treated as
// validation failures; everything 5xx and transport-shaped is a network
// failure the caller may retry.
func (c *Client) failure(resp *http.Response) error {
	var body errorBody
	msg := resp.Status
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if jerr := json.Unmarshal(raw, &body); jerr == nil && body.Message != "" {
		msg = body.Message
	}
	base := fmt.Errorf("swap service: %d %s", resp.StatusCode, msg)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errs.WithKind(base, errs.KindAuthorization, msg)
	case resp.StatusCode == http.StatusNotFound:
		return errs.WithKind(base, errs.KindNotFound, msg)
	case resp.StatusCode == http.StatusConflict:
		return errs.WithKind(base, errs.KindConflict, msg)
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return errs.WithKind(base, errs.KindVerification, msg)
	case resp.StatusCode >= http.StatusInternalServerError:
		return errs.WithKind(base, errs.KindNetwork, msg)
	default:
		return errs.WithKind(base, errs.KindValidation, msg)
	}
}
