package twilio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(serverURL string) *Client {
	c := NewClient("AC123", "secret", "whatsapp:+14155238886", nil)
	c.BaseURL = serverURL
	c.HTTPClient = &http.Client{}
	return c
}

func TestSendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "secret", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "whatsapp:+14155238886", r.FormValue("From"))
		assert.Equal(t, "whatsapp:+33600000000", r.FormValue("To"))
		assert.Equal(t, "hello", r.FormValue("Body"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM42"}`))
	}))
	defer server.Close()

	sid, err := testClient(server.URL).SendMessage(context.Background(), "whatsapp:+33600000000", "hello")
	require.NoError(t, err)
	assert.Equal(t, "SM42", sid)
}

func TestSendMessage_TwilioError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_message":"The 'To' number is not a valid phone number."}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).SendMessage(context.Background(), "whatsapp:+bad", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid phone number")
}

func TestSendMessage_EmptyRecipient(t *testing.T) {
	_, err := testClient("http://unused").SendMessage(context.Background(), "", "hello")
	assert.Error(t, err)
}

func TestSendMessage_EmptyBody(t *testing.T) {
	_, err := testClient("http://unused").SendMessage(context.Background(), "whatsapp:+336", "")
	assert.Error(t, err)
}
