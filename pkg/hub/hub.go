// Package hub keeps the generation sensor registered in Home Assistant.
package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/solarbrief/solarbrief/pkg/common"
	"github.com/solarbrief/solarbrief/pkg/log"
)

// DefaultBaseURL reaches the Home Assistant core API through the supervisor,
// which is where this runs when deployed as an add-on.
const DefaultBaseURL = "http://supervisor/core"

// SensorEntityID is the entity this job guarantees exists.
const SensorEntityID = "sensor.intelbras_solar"

// fixed initial state and display metadata for the created sensor; these
// must stay byte-identical to the entity earlier deployments created
const (
	sensorInitialState = 25
	sensorFriendlyName = "Intelbras Solar"
	sensorUnit         = "°C"
)

// Client talks to the hub's state API with a bearer token.
type Client struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewClient returns a hub client for the given base URL and token.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client:  common.HTTPClient(time.Minute),
		baseURL: baseURL,
		token:   token,
	}
}

// EnsureSensor checks that the generation sensor exists and creates it if
// not. Failures here must never block the rest of the schedule, so they all
// land in the log and nothing propagates.
func (c *Client) EnsureSensor(ctx context.Context) {
	if err := c.ensureSensor(ctx); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "sensor sync failed",
			slog.String("entityID", SensorEntityID),
			slog.Any("error", err),
		)
	}
}

func (c *Client) ensureSensor(ctx context.Context) error {
	// any failure reading the state, not just a not-found, means "create it"
	if c.sensorExists(ctx) {
		log.Ctx(ctx).DebugContext(ctx, "sensor already exists", slog.String("entityID", SensorEntityID))
		return nil
	}

	log.Ctx(ctx).InfoContext(ctx, "sensor missing, creating", slog.String("entityID", SensorEntityID))
	return c.createSensor(ctx)
}

func (c *Client) sensorExists(ctx context.Context) bool {
	req, err := c.newRequest(ctx, "GET", nil)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}

type sensorState struct {
	State      int              `json:"state"`
	Attributes sensorAttributes `json:"attributes"`
}

type sensorAttributes struct {
	FriendlyName      string `json:"friendly_name"`
	UnitOfMeasurement string `json:"unit_of_measurement"`
}

func (c *Client) createSensor(ctx context.Context) error {
	body, err := json.Marshal(sensorState{
		State: sensorInitialState,
		Attributes: sensorAttributes{
			FriendlyName:      sensorFriendlyName,
			UnitOfMeasurement: sensorUnit,
		},
	})
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, "POST", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("create returned status %d", resp.StatusCode)
	}

	log.Ctx(ctx).InfoContext(ctx, "sensor created", slog.String("entityID", SensorEntityID))
	return nil
}

func (c *Client) newRequest(ctx context.Context, method string, body io.Reader) (*http.Request, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}
	u.Path, err = url.JoinPath(u.Path, "api", "states", SensorEntityID)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	return req, nil
}
