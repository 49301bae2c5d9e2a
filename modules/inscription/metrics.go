package inscription

import (
	"time"

	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	inscriptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inscription_indexer",
		Subsystem: "inscription",
		Name:      "inscriptions_total",
		Help:      "Count of validated inscriptions.",
	}, []string{"category", "status"})
	blocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inscription_indexer",
		Subsystem: "inscription",
		Name:      "blocks_total",
		Help:      "Count of block commits.",
	}, []string{"status"})
	blockCommitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "inscription_indexer",
		Subsystem: "inscription",
		Name:      "block_commit_duration_seconds",
		Help:      "Duration of block commits.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	pollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inscription_indexer",
		Subsystem: "inscription",
		Name:      "polls_total",
		Help:      "Count of polling outcomes.",
	}, []string{"outcome"})
	topInscriptionId = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "inscription_indexer",
		Subsystem: "inscription",
		Name:      "top_inscription_id",
		Help:      "Id of the last committed inscription.",
	})
)

const (
	pollOutcomeProcessed      = "processed"
	pollOutcomeNoInscription  = "no_inscription"
	pollOutcomeBlockNotSynced = "block_not_synced"
	pollOutcomeEmptyBlock     = "empty_block"
)

func observeInscription(inscription *entity.Inscription) {
	inscriptionsTotal.WithLabelValues(inscription.MimeCategory.String(), inscription.Verified.String()).Inc()
}

func observeBlockCommit(lastId uint64, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	} else {
		topInscriptionId.Set(float64(lastId))
	}
	blocksTotal.WithLabelValues(status).Inc()
	blockCommitDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

func observePoll(outcome string) {
	pollsTotal.WithLabelValues(outcome).Inc()
}
