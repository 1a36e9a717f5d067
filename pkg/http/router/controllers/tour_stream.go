package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/tourguide/pkg/util"
	"go.uber.org/zap"
)

const (
	tourStreamIdleTimeout = 30 * time.Second
	closeHandshakeTimeout = time.Second
)

/*
TourStream. websocket version of POST /api/tour:

	client -> server  one text frame, the tour request json
	server -> client  one text frame per tour command ({"data": command}), then a normal closure

a request that fails validation or can not be routed gets a single {"error": ...} frame before the closure.
*/
func (api *tourAPI) TourStream(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		api.log.Info("websocket upgrade error", zap.Error(err), zap.String("remote", r.RemoteAddr))
		return
	}
	defer conn.Close()

	status, reason := api.streamTour(conn)
	closeBody := ws.NewCloseFrameBody(status, reason)
	if err := ws.WriteFrame(conn, ws.NewCloseFrame(closeBody)); err != nil {
		api.log.Debug("websocket close error", zap.Error(err))
		return
	}

	// wait for the client to answer the close frame and hang up
	_ = conn.SetReadDeadline(time.Now().Add(closeHandshakeTimeout))
	_, _ = io.Copy(io.Discard, conn)
}

func (api *tourAPI) streamTour(conn net.Conn) (ws.StatusCode, string) {
	_ = conn.SetDeadline(time.Now().Add(tourStreamIdleTimeout))

	msg, op, err := wsutil.ReadClientData(conn)
	if err != nil {
		api.log.Info("websocket read error", zap.Error(err))
		return ws.StatusProtocolError, "unable to read tour request"
	}
	if op != ws.OpText {
		return ws.StatusUnsupportedData, "tour request must be a text frame"
	}

	var request tourRequest
	if err := json.Unmarshal(msg, &request); err != nil {
		return api.writeStreamError(conn, http.StatusBadRequest, err)
	}
	if err := validateStruct(request); err != nil {
		return api.writeStreamError(conn, http.StatusBadRequest, err)
	}

	tour, err := api.tourService.GenerateTour(request.ToStops())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(util.ErrorCode(err), util.ErrUnprocessable) {
			status = http.StatusUnprocessableEntity
		}
		return api.writeStreamError(conn, status, err)
	}

	for _, cmd := range tour.Commands {
		if err := writeFrame(conn, envelope{"data": NewTourCommandResponse(cmd)}); err != nil {
			api.log.Info("websocket write error", zap.Error(err))
			return ws.StatusGoingAway, ""
		}
	}
	return ws.StatusNormalClosure, ""
}

func (api *tourAPI) writeStreamError(conn net.Conn, status int, err error) (ws.StatusCode, string) {
	if err := writeFrame(conn, newErrorResponse(status, err.Error())); err != nil {
		api.log.Info("websocket write error", zap.Error(err))
	}
	return ws.StatusNormalClosure, ""
}

func writeFrame(conn net.Conn, x interface{}) error {
	js, err := json.Marshal(x)
	if err != nil {
		return err
	}
	return wsutil.WriteServerMessage(conn, ws.OpText, js)
}
