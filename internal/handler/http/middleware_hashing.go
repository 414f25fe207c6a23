package http

import (
	"bytes"
	"encoding/hex"
	"net/http"

	"github.com/MKhiriev/go-circuit-runner/internal/utils"
)

// withResponseHashing buffers the response, signs the body with
// HMAC-SHA256 and sends it with the signature in the HashSHA256 header.
// It sits inside withGZip so the signature covers the uncompressed body.
func (h *Handler) withResponseHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hw := &hashingResponseWriter{ResponseWriter: w}

		next.ServeHTTP(hw, r)

		body := hw.buf.Bytes()
		w.Header().Set(utils.HashHeader, hex.EncodeToString(utils.Hash(body)))

		status := hw.status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)

		if _, err := w.Write(body); err != nil {
			h.logger.Err(err).Msg("failed to write signed response")
		}
	})
}

type hashingResponseWriter struct {
	http.ResponseWriter

	status int
	buf    bytes.Buffer
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *hashingResponseWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}
