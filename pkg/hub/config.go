package hub

import (
	"time"

	"github.com/levenlabs/go-lflag"
	"github.com/solarbrief/solarbrief/pkg/common"
)

// Configured registers the hub flags and returns a client whose endpoint
// and token are filled in once flags are parsed.
func Configured() *Client {
	c := &Client{client: common.HTTPClient(time.Minute)}

	baseURL := lflag.String("hub-url", DefaultBaseURL, "Home Assistant core base URL")
	token := lflag.String("hub-token", "", "Home Assistant long-lived access token")

	lflag.Do(func() {
		c.baseURL = *baseURL
		c.token = *token
	})

	return c
}
