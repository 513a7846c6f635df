package service

import (
	"context"
	"time"

	"github.com/skinpulse/skinpulse/internal/catalog"
	"github.com/skinpulse/skinpulse/internal/domain"
	"github.com/skinpulse/skinpulse/internal/entity"
	"github.com/stretchr/testify/mock"
)

type memStore struct {
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	value, ok := m.data[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return value, nil
}

func (m *memStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

type MockSkinsSource struct {
	mock.Mock
}

func (m *MockSkinsSource) FetchAll(ctx context.Context) ([]catalog.RawSkin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.RawSkin), args.Error(1)
}

type MockListingSource struct {
	mock.Mock
}

func (m *MockListingSource) FetchListing(ctx context.Context) ([]entity.ListingEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ListingEntry), args.Error(1)
}

type MockHistoryRecorder struct {
	mock.Mock
}

func (m *MockHistoryRecorder) RecordPrices(ctx context.Context, prices entity.PriceMap, at time.Time) error {
	args := m.Called(ctx, prices, at)
	return args.Error(0)
}

func (m *MockHistoryRecorder) Prune(ctx context.Context, olderThan time.Time) error {
	args := m.Called(ctx, olderThan)
	return args.Error(0)
}

type MockMessageProducer struct {
	mock.Mock
}

func (m *MockMessageProducer) WriteMessage(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessageProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}

func rawRedline() catalog.RawSkin {
	return catalog.RawSkin{
		ID:       "skin-ak-redline",
		Name:     "AK-47 | Redline",
		Weapon:   catalog.NamedRef{Name: "AK-47"},
		MinFloat: 0.1,
		MaxFloat: 0.7,
		Rarity:   catalog.Rarity{Name: "Classified", Color: "#d32ce6"},
		Wears:    []catalog.NamedRef{{Name: "Field-Tested"}, {Name: "Minimal Wear"}},
		StatTrak: true,
	}
}
