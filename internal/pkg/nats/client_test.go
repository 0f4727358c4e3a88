package nats

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	natsserver "github.com/nats-io/nats-server/v2/test"
)

var testNatsURL = "nats://127.0.0.1:8371"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8371
	testNatsServer := natsserver.RunServer(&opts)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

func TestNewClient_InvalidAddress(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1")
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}

func TestClient_PublishJSON(t *testing.T) {
	client, err := NewClient(testNatsURL)
	require.NoError(t, err)
	defer client.Close()
	assert.True(t, client.IsConnected())

	msgCh := make(chan *nats.Msg, 1)
	sub, err := client.Subscribe("commute.test", func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.NoError(t, client.PublishJSON("commute.test", map[string]int{"generation": 3}))

	select {
	case msg := <-msgCh:
		var got map[string]int
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		assert.Equal(t, 3, got["generation"])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestClient_PublishJSON_MarshalError(t *testing.T) {
	client, err := NewClient(testNatsURL)
	require.NoError(t, err)
	defer client.Close()

	err = client.PublishJSON("commute.test", make(chan int))
	assert.ErrorContains(t, err, "failed to marshal message")
}
