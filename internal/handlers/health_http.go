package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Hema-A-05/MERN-flasklite/internal/utils"
)

// Health reports ok when ping (the backing store check) succeeds. A nil
// ping always reports ok.
func Health(ping func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				utils.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
