package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/civiceye/civiceye/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialWebsocket(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	// Give the hub a beat to register the client before events fire.
	time.Sleep(50 * time.Millisecond)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &event))
	return event
}

func TestWebsocketBroadcastOnReport(t *testing.T) {
	_, r, _ := newTestServer(t)
	ts := httptest.NewServer(r)
	defer ts.Close()

	conn := dialWebsocket(t, ts)

	w, _ := doJSON(t, r, http.MethodPost, "/api/reports", gin.H{
		"reason":   "boarded up windows",
		"duration": "6-12 months",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	event := readEvent(t, conn)
	assert.Equal(t, "reportCreated", event["type"])
	report, ok := event["report"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "boarded up windows", report["reason"])
	assert.EqualValues(t, 50, report["points"])
}

func TestWebsocketBroadcastReachesAllClients(t *testing.T) {
	_, r, _ := newTestServer(t)
	ts := httptest.NewServer(r)
	defer ts.Close()

	first := dialWebsocket(t, ts)
	second := dialWebsocket(t, ts)

	w, _ := doJSON(t, r, http.MethodPost, "/api/properties", gin.H{
		"address":      "456 Residential Blvd, Midtown",
		"propertyType": "Residential - Multi-Family",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	for _, conn := range []*websocket.Conn{first, second} {
		event := readEvent(t, conn)
		assert.Equal(t, "propertyCreated", event["type"])
		property, ok := event["property"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "456 Residential Blvd, Midtown", property["address"])
	}
}

func TestWebsocketTaxNoticeBroadcast(t *testing.T) {
	s, r, _ := newTestServer(t)
	ts := httptest.NewServer(r)
	defer ts.Close()

	property, err := s.PropertyRepository.CreateProperty(&models.Property{
		Address:      "892 Commercial Ave, Downtown",
		PropertyType: "Commercial",
		Status:       models.StatusConfirmedVacant,
	})
	require.NoError(t, err)

	conn := dialWebsocket(t, ts)

	w, _ := doJSON(t, r, http.MethodPost, "/api/tax-notices", gin.H{
		"propertyId":  property.ID,
		"penaltyType": "Vacancy Tax Penalty",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	event := readEvent(t, conn)
	assert.Equal(t, "taxNoticeCreated", event["type"])
	notice, ok := event["taxNotice"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Confirmed", notice["status"])
}
