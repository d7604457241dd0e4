package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/solarbrief/solarbrief/pkg/common"
	"github.com/solarbrief/solarbrief/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSendClient(ts *httptest.Server) *Client {
	c := common.HTTPClient(5 * time.Second)
	c.Transport = ts.Client().Transport
	return &Client{client: c, baseURL: ts.URL, token: "123:abc"}
}

func TestSendMessage(t *testing.T) {
	t.Run("Payload", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/bot123:abc/sendMessage", r.URL.Path)

			var req sendMessageRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "42", req.ChatID)
			assert.Equal(t, "⚡*Inversor 1*", req.Text)
			assert.Equal(t, "Markdown", req.ParseMode)

			json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
		}))
		defer ts.Close()

		err := testSendClient(ts).SendMessage(context.Background(), "42", "⚡*Inversor 1*", ParseModeMarkdown)
		require.NoError(t, err)
	})

	t.Run("BodyLevelFailure", func(t *testing.T) {
		// 200 OK with ok:false must still fail
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"ok":          false,
				"description": "Bad Request: chat not found",
			})
		}))
		defer ts.Close()

		err := testSendClient(ts).SendMessage(context.Background(), "42", "hi", ParseModeMarkdown)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chat not found")
	})
}

func TestDispatch(t *testing.T) {
	report := types.Report{Entries: []string{"entry\n\n"}, TotalKWH: 1.5}

	t.Run("AllRecipientsInOrder", func(t *testing.T) {
		n := &Mock{}
		var order []string
		for _, id := range []string{"1", "2", "3"} {
			id := id
			n.On("SendMessage", mock.Anything, id, report.Text(), ParseModeMarkdown).
				Run(func(args mock.Arguments) { order = append(order, id) }).
				Return(nil)
		}

		require.NoError(t, Dispatch(context.Background(), n, report, []string{"1", "2", "3"}))
		assert.Equal(t, []string{"1", "2", "3"}, order)
		n.AssertExpectations(t)
	})

	t.Run("StopsOnFirstFailure", func(t *testing.T) {
		n := &Mock{}
		n.On("SendMessage", mock.Anything, "1", mock.Anything, mock.Anything).Return(nil)
		n.On("SendMessage", mock.Anything, "2", mock.Anything, mock.Anything).Return(errors.New("blocked"))

		err := Dispatch(context.Background(), n, report, []string{"1", "2", "3"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "send to 2")

		// recipient 1 already got their message; recipient 3 never does
		n.AssertNumberOfCalls(t, "SendMessage", 2)
	})

	t.Run("NoRecipients", func(t *testing.T) {
		n := &Mock{}
		require.NoError(t, Dispatch(context.Background(), n, report, nil))
		n.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
