package automaxprocs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/pkg/logger"
	"github.com/gaze-network/inscription-indexer/pkg/logger/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/automaxprocs/maxprocs"
)

var maxProcsGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "inscription_indexer",
	Name:      "gomaxprocs",
	Help:      "GOMAXPROCS after applying the container CPU quota.",
})

// Init sets GOMAXPROCS to the Linux container CPU quota, if any. A GOMAXPROCS environment variable wins.
// The returned function restores the previous value.
func Init(ctx context.Context) (undo func(), err error) {
	ctx = logger.WithContext(ctx,
		slogx.String("package", "automaxprocs"),
		slogx.String("event", "set_gomaxprocs"),
		slogx.Int("prev_maxprocs", runtime.GOMAXPROCS(0)),
	)

	printf := func(format string, v ...any) {
		var attrs []slog.Attr
		// undo logs without arguments
		if _, ok := utils.Optional(v); ok {
			attrs = append(attrs, slogx.Int("set_maxprocs", runtime.GOMAXPROCS(0)))
			if _, exists := os.LookupEnv("GOMAXPROCS"); exists {
				attrs = append(attrs, slog.Bool("from_env", true))
			}
		}
		logger.LogAttrs(ctx, slog.LevelInfo, fmt.Sprintf(format, v...), attrs...)
	}

	undo, err = maxprocs.Set(maxprocs.Logger(printf), maxprocs.Min(1))
	if err != nil {
		return func() {}, errors.WithStack(err)
	}
	maxProcsGauge.Set(float64(runtime.GOMAXPROCS(0)))
	return undo, nil
}
