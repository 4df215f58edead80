// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package layout

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/taibuivan/nolfolio/internal/platform/ctxutil"
	"github.com/taibuivan/nolfolio/internal/platform/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
	swapBuffer     = 16
)

// # Live Scatter Feed

// Message types sent on the live feed.
const (
	MessageTypeScene = "scene"
	MessageTypeSwap  = "swap"
)

// LiveMessage is one frame of the live feed.
type LiveMessage struct {
	Type  string `json:"type"`
	Scene *Scene `json:"scene,omitempty"`
	Swap  *Swap  `json:"swap,omitempty"`

	PhotoID  string `json:"photo_id,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

func (handler *Handler) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		HandshakeTimeout: 10 * time.Second,
		CheckOrigin: func(request *http.Request) bool {
			if handler.originAllowed == nil {
				return true
			}
			return handler.originAllowed(request.Header.Get("Origin"))
		},
	}
}

// live streams the initial scene, then a swap frame each time a slot re-rolls.
// The slot timers belong to the connection and stop when it closes.
func (handler *Handler) live(writer http.ResponseWriter, request *http.Request) {
	logger := ctxutil.GetLogger(request.Context())

	upgrader := handler.upgrader()
	conn, err := upgrader.Upgrade(writer, request, nil)
	if err != nil {
		logger.Warn("scatter_live_upgrade_failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	metrics.ScatterSessionsActive.Inc()
	defer metrics.ScatterSessionsActive.Dec()

	ctx, cancel := context.WithCancel(request.Context())
	defer cancel()

	scene := handler.scene(request)
	photos := handler.catalog.Photos()

	swaps := make(chan Swap, swapBuffer)
	cycler := NewCycler(ctx, len(photos), scene.Indices(), NewRand(scene.Seed^0xa5a5a5a5), handler.clock, func(swap Swap) {
		select {
		case swaps <- swap:
		default:
			// A slow client misses a swap; the next one carries the slot's current index.
		}
	})
	defer cycler.Close()

	go readUntilClosed(conn, cancel)

	if err := writeFrame(conn, LiveMessage{Type: MessageTypeScene, Scene: &scene}); err != nil {
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case swap := <-swaps:
			photo := photos[swap.Index]
			frame := LiveMessage{Type: MessageTypeSwap, Swap: &swap, PhotoID: photo.ID, ImageURL: photo.ImageURL}
			if err := writeFrame(conn, frame); err != nil {
				logger.Debug("scatter_live_write_failed", slog.Any("error", err))
				return
			}
			metrics.ScatterRerolls.Inc()
			logger.Debug("scatter_slot_rerolled", slog.Int("slot", swap.Slot), slog.String("photo_id", photo.ID))

		case <-ticker.C:
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func writeFrame(conn *websocket.Conn, message LiveMessage) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(message)
}

// readUntilClosed drains client frames so pongs and close frames are processed.
func readUntilClosed(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
