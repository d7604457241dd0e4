package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/solarbrief/solarbrief/pkg/common"
	"github.com/solarbrief/solarbrief/pkg/log"
	"github.com/solarbrief/solarbrief/pkg/types"
)

// DefaultBaseURL is the Intelbras solar monitoring portal.
const DefaultBaseURL = "http://solar-monitoramento.intelbras.com.br"

const (
	loginPath      = "/login"
	plantListPath  = "/index/getPlantListTitle"
	deviceListPath = "/panel/getDevicesByPlantList"

	// the portal can be slow to answer logins; everything else gets the
	// client default
	loginTimeout = 30 * time.Second
)

// Session is one authenticated pass against the monitoring portal. A session
// is created fresh for every run, owns its cookie state exclusively, and is
// never shared across runs.
type Session interface {
	// Login authenticates with the portal; the session keeps the returned
	// cookies for every later call.
	Login(ctx context.Context, username, password string) error

	// ListPlants returns the plants visible to the logged-in account, in
	// portal order.
	ListPlants(ctx context.Context) ([]types.Plant, error)

	// ListDevices returns one page of the plant's inverters, in portal
	// order. The portal signals failure through an in-body result flag, not
	// the HTTP status; a non-success flag comes back as a *DataError naming
	// the plant.
	ListDevices(ctx context.Context, plant types.Plant, page int) ([]types.Device, error)
}

// Client implements Session over HTTP with a cookie-jar session.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewSession returns an unauthenticated session against the default portal.
func NewSession() *Client {
	return &Client{
		client:  common.CookieClient(time.Minute),
		baseURL: DefaultBaseURL,
	}
}

// Login posts the account credentials as the portal's web form does. On
// success the session cookie lands in the jar; any transport failure or
// non-2xx status is an *AuthError.
func (c *Client) Login(ctx context.Context, username, password string) error {
	ctx, cancel := context.WithTimeout(ctx, loginTimeout)
	defer cancel()

	data := url.Values{}
	data.Set("account", username)
	data.Set("password", password)
	data.Set("validateCode", "")
	data.Set("lang", "en")

	resp, err := c.postForm(ctx, loginPath, data)
	if err != nil {
		return &AuthError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &AuthError{Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	log.Ctx(ctx).DebugContext(ctx, "portal login ok", slog.String("account", username))
	return nil
}

// ListPlants fetches the plant list. The portal answers with a bare JSON
// array; anything that doesn't decode to a non-empty list is a *DataError.
func (c *Client) ListPlants(ctx context.Context) ([]types.Plant, error) {
	resp, err := c.postForm(ctx, plantListPath, nil)
	if err != nil {
		return nil, fmt.Errorf("plant list request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("plant list read failed: %w", err)
	}

	var plants []types.Plant
	if err := json.Unmarshal(body, &plants); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to decode plant list", slog.Any("error", err), slog.String("body", string(body)))
		return nil, &DataError{Reason: "plant list is not a JSON array"}
	}
	if len(plants) == 0 {
		return nil, &DataError{Reason: "plant list is empty"}
	}

	log.Ctx(ctx).DebugContext(ctx, "portal plant list", slog.Int("plants", len(plants)))
	return plants, nil
}

type deviceListResponse struct {
	Result string `json:"result"`
	Obj    struct {
		Datas []types.Device `json:"datas"`
	} `json:"obj"`
}

// ListDevices fetches one page of the plant's inverters. Success is decided
// by the body's result flag ("1"), never by HTTP status alone.
func (c *Client) ListDevices(ctx context.Context, plant types.Plant, page int) ([]types.Device, error) {
	data := url.Values{}
	data.Set("plantId", plant.ID)
	data.Set("currPage", strconv.Itoa(page))

	resp, err := c.postForm(ctx, deviceListPath, data)
	if err != nil {
		return nil, fmt.Errorf("device list request failed: %w", err)
	}
	defer resp.Body.Close()

	var res deviceListResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to decode device list", slog.String("plantID", plant.ID), slog.Any("error", err))
		return nil, &DataError{PlantID: plant.ID, PlantName: plant.Name, Reason: "device list is not valid JSON"}
	}

	if res.Result != "1" {
		return nil, &DataError{
			PlantID:   plant.ID,
			PlantName: plant.Name,
			Reason:    fmt.Sprintf("device listing returned result %q", res.Result),
		}
	}

	log.Ctx(ctx).DebugContext(ctx, "portal device list",
		slog.String("plantID", plant.ID),
		slog.Int("page", page),
		slog.Int("devices", len(res.Obj.Datas)),
	)
	return res.Obj.Datas, nil
}

func (c *Client) postForm(ctx context.Context, endpoint string, data url.Values) (*http.Response, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}
	u.Path, err = url.JoinPath(u.Path, endpoint)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if data != nil {
		body = strings.NewReader(data.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, "POST", u.String(), body)
	if err != nil {
		return nil, err
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return c.client.Do(req)
}
