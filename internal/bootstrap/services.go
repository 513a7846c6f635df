package bootstrap

import (
	"math/rand"
	"time"

	"github.com/skinpulse/skinpulse/internal/catalog"
	"github.com/skinpulse/skinpulse/internal/client"
	"github.com/skinpulse/skinpulse/internal/domain"
	"github.com/skinpulse/skinpulse/internal/history"
	"github.com/skinpulse/skinpulse/internal/service"
	"github.com/skinpulse/skinpulse/internal/storage/pghistory"
	"github.com/skinpulse/skinpulse/internal/trending"
	"github.com/skinpulse/skinpulse/pkg/kafka"
)

func InitRefreshService(
	skins *client.SkinsClient,
	listing *client.ListingClient,
	kv domain.KeyValueStore,
	historyRepo *pghistory.Repository,
	producer *kafka.Producer,
	log domain.Logger,
) *service.RefreshService {
	var recorder service.HistoryRecorder
	if historyRepo != nil {
		recorder = historyRepo
	}

	var messageProducer domain.MessageProducer
	if producer != nil {
		messageProducer = producer
	}

	return service.NewRefreshService(
		skins,
		listing,
		catalog.NewTransformer(),
		catalog.NewStore(kv, log),
		history.NewSnapshotLog(kv, log),
		recorder,
		messageProducer,
		log,
	)
}

func InitTrackerService(
	refresher *service.RefreshService,
	kv domain.KeyValueStore,
	historyRepo *pghistory.Repository,
	log domain.Logger,
) *service.TrackerService {
	var remote domain.RemoteHistoryStore
	if historyRepo != nil {
		remote = historyRepo
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	reconciler := history.NewReconciler(
		remote,
		history.NewSnapshotLog(kv, log),
		history.NewGenerator(kv, rng, log),
		log,
	)

	return service.NewTrackerService(
		refresher,
		reconciler,
		trending.NewProcessor(rand.New(rand.NewSource(time.Now().UnixNano())), log),
		log,
	)
}
