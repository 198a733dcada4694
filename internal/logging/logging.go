// Package logging настраивает slog в зависимости от окружения.
package logging

import (
	"io"
	"log/slog"

	"github.com/iudanet/sisadmin/internal/config"
)

// New создает логгер: text для local, JSON для dev и prod.
// В prod уровень Info, в остальных окружениях Debug.
func New(env string, w io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return log
}
