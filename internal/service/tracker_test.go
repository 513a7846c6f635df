package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/skinpulse/skinpulse/internal/entity"
	"github.com/skinpulse/skinpulse/internal/history"
	"github.com/skinpulse/skinpulse/internal/market"
	"github.com/skinpulse/skinpulse/internal/trending"
	"github.com/stretchr/testify/suite"
)

type stubProvider struct {
	prices  entity.PriceMap
	listing []entity.ListingEntry
	items   []entity.SkinItem
}

func (p *stubProvider) CurrentPrices() entity.PriceMap { return p.prices }
func (p *stubProvider) Listing() []entity.ListingEntry { return p.listing }
func (p *stubProvider) Catalog() []entity.SkinItem     { return p.items }

type TrackerServiceSuite struct {
	suite.Suite
	ctx      context.Context
	provider *stubProvider
	service  *TrackerService
}

func (suite *TrackerServiceSuite) SetupTest() {
	suite.ctx = context.Background()

	suite.provider = &stubProvider{
		prices: entity.PriceMap{
			"AK-47 | Redline (Field-Tested)": {Price: 15.50, MinPrice: 15.00, MaxPrice: 16.00, Quantity: 120},
		},
		listing: []entity.ListingEntry{
			{MarketHashName: "AK-47 | Redline (Field-Tested)", MinPrice: 1500, MaxPrice: 1600, Quantity: 120},
		},
		items: []entity.SkinItem{
			{
				Name:     "AK-47 | Redline",
				Weapon:   "AK-47",
				Category: entity.CategoryRifle,
				Wears:    []entity.Wear{entity.WearFieldTested},
			},
		},
	}

	store := newMemStore()
	reconciler := history.NewReconciler(
		nil,
		history.NewSnapshotLog(store, nopLogger{}),
		history.NewGenerator(store, rand.New(rand.NewSource(1)), nopLogger{}),
		nopLogger{},
	)

	suite.service = NewTrackerService(
		suite.provider,
		reconciler,
		trending.NewProcessor(rand.New(rand.NewSource(1)), nopLogger{}),
		nopLogger{},
	)
}

func TestTrackerServiceSuite(t *testing.T) {
	suite.Run(t, new(TrackerServiceSuite))
}

func (suite *TrackerServiceSuite) TestPrice_ExactMatch() {
	resp := suite.service.Price(market.Request{
		Name: "AK-47 | Redline",
		Wear: entity.WearFieldTested,
	})

	suite.Require().NotNil(resp)
	suite.Equal(15.50, resp.Price)
	suite.False(resp.Approximate)
	suite.Equal("AK-47 | Redline (Field-Tested)", resp.MatchedName)
	suite.Equal("$15.50", resp.Formatted)
	suite.Equal("$15.00 - $16.00", resp.FormattedRange)
}

func (suite *TrackerServiceSuite) TestPrice_NoMatch() {
	suite.Nil(suite.service.Price(market.Request{Name: "M4A4 | Howl"}))
}

func (suite *TrackerServiceSuite) TestChart_SyntheticWhenNoHistory() {
	resp := suite.service.Chart(suite.ctx, market.Request{
		Name: "AK-47 | Redline",
		Wear: entity.WearFieldTested,
	}, entity.Period7d)

	suite.Require().NotNil(resp)
	suite.Equal("AK-47 | Redline (Field-Tested)", resp.MarketHashName)
	suite.Len(resp.Points, 7)
	suite.Equal("$15.50", resp.FormattedCurrent)
	suite.NotZero(resp.Stats.Current)
}

func (suite *TrackerServiceSuite) TestChart_UnknownItemStillAnswers() {
	resp := suite.service.Chart(suite.ctx, market.Request{Name: "M4A4 | Howl"}, entity.Period7d)

	suite.Require().NotNil(resp)
	suite.Empty(resp.Points)
	suite.Equal(entity.TrendStable, resp.Change.Trend)
	suite.Equal("N/A", resp.FormattedCurrent)
}

func (suite *TrackerServiceSuite) TestTrending() {
	items := suite.service.Trending("")

	suite.Require().Len(items, 1)
	suite.Equal("AK-47 | Redline (Field-Tested)", items[0].MarketHashName)
	suite.Equal(entity.CategoryRifle, items[0].Category)
}

func (suite *TrackerServiceSuite) TestTrending_CategoryFilter() {
	suite.Empty(suite.service.Trending(entity.CategoryKnife))
	suite.Len(suite.service.Trending(entity.CategoryRifle), 1)
}
