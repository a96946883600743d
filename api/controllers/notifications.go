package controllers

import (
	"net/http"

	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/internal/notify"
)

// Notifications drains the pending messages for the client to display.
func Notifications(notifier *notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msgs := notifier.Drain()
		if msgs == nil {
			msgs = []notify.Message{}
		}
		responses.WriteSuccess(w, msgs)
	}
}
