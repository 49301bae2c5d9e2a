package reportingclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gaze-network/inscription-indexer/common"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresName(t *testing.T) {
	_, err := New(Config{BaseURL: "http://localhost:1"})
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestSubmitReports(t *testing.T) {
	var (
		mu     sync.Mutex
		bodies = make(map[string]map[string]any)
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		mu.Lock()
		bodies[r.URL.Path] = body
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, Name: "test-node", WebsiteURL: "https://example.com"})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, client.SubmitNodeReport(ctx, "inscription", common.NetworkMainnet))
	require.NoError(t, client.SubmitBlockReport(ctx, SubmitBlockReportPayload{
		Type:             "inscription",
		ClientVersion:    "v0.0.1",
		Network:          common.NetworkMainnet,
		BlockNumber:      100,
		TopInscriptionId: 3,
		Inscriptions:     3,
		Successful:       1,
	}))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "test-node", bodies["/v1/report/node"]["name"])
	assert.Equal(t, "inscription", bodies["/v1/report/node"]["type"])
	assert.EqualValues(t, 100, bodies["/v1/report/block"]["blockNumber"])
	assert.EqualValues(t, 3, bodies["/v1/report/block"]["topInscriptionId"])
}

func TestSubmitReportRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, Name: "test-node"})
	require.NoError(t, err)
	err = client.SubmitBlockReport(context.Background(), SubmitBlockReportPayload{BlockNumber: 1})
	assert.Error(t, err)
}
