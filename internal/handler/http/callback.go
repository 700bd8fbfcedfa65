// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-sync/internal/app"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/MKhiriev/go-pass-sync/internal/utils"
)

// callback forwards the redirect parameters to the authorization flow and
// renders the result page. Whether the redirect belongs to the pending
// attempt is decided by the flow, not here.
func (h *Handler) callback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cb := service.CallbackFromQuery(r.URL.Query())
	h.onCallback(cb)

	status, title, message := http.StatusOK, app.PageTitleReceived, app.PageMessageReceived
	switch {
	case cb.Error != "":
		title, message = app.PageTitleSignInFailed, app.PageMessageDenied
		log.Info().Str("func", "*Handler.callback").Str("error", cb.Error).Msg("provider redirected with an error")
	case cb.Code == "":
		status, title, message = http.StatusBadRequest, app.PageTitleSignInFailed, app.PageMessageInvalidRedirect
		log.Warn().Str("func", "*Handler.callback").Msg("redirect carries neither code nor error")
	}

	if err := utils.WriteHTMLPage(w, status, title, message); err != nil {
		log.Err(err).Str("func", "*Handler.callback").Msg("failed to write result page")
	}
}
