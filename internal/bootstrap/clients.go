package bootstrap

import (
	"github.com/skinpulse/skinpulse/config"
	"github.com/skinpulse/skinpulse/internal/client"
	"github.com/skinpulse/skinpulse/internal/domain"
)

func InitClients(cfg *config.Config, log domain.Logger) (*client.SkinsClient, *client.ListingClient) {
	skins := client.NewSkinsClient(cfg.Sources.SkinsURL, log)
	listing := client.NewListingClient(cfg.Sources.ListingURL, log)

	return skins, listing
}
