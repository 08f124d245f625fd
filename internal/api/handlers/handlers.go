package handlers

import (
	"github.com/feretizpina/uber-slack/internal/config"
	"github.com/feretizpina/uber-slack/internal/domain/auth"
	"github.com/feretizpina/uber-slack/internal/domain/geo"
	"github.com/feretizpina/uber-slack/internal/domain/ride"
	"github.com/feretizpina/uber-slack/internal/service/command"
	"github.com/feretizpina/uber-slack/internal/service/oauth"
	"github.com/feretizpina/uber-slack/internal/uber"
	"github.com/feretizpina/uber-slack/pkg/logger"
	"github.com/feretizpina/uber-slack/pkg/monitoring"
)

// Handlers holds all handler dependencies
type Handlers struct {
	Config    *config.Config
	Logger    *logger.Logger
	Uber      *uber.Client
	Resolver  geo.Resolver
	Rides     ride.Repository
	Auths     auth.Repository
	Notifier  command.Notifier
	Exchanger *oauth.Exchanger
	NewRelic  *monitoring.NewRelicApp
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	cfg *config.Config,
	log *logger.Logger,
	uberClient *uber.Client,
	resolver geo.Resolver,
	rides ride.Repository,
	auths auth.Repository,
	notifier command.Notifier,
	exchanger *oauth.Exchanger,
	nr *monitoring.NewRelicApp,
) *Handlers {
	return &Handlers{
		Config:    cfg,
		Logger:    log,
		Uber:      uberClient,
		Resolver:  resolver,
		Rides:     rides,
		Auths:     auths,
		Notifier:  notifier,
		Exchanger: exchanger,
		NewRelic:  nr,
	}
}
