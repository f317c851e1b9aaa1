package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartzap/server/internal/automation"
	"github.com/smartzap/server/internal/config"
	"github.com/smartzap/server/internal/dispatch"
	"github.com/smartzap/server/internal/metalimits"
	"github.com/smartzap/server/internal/whatsapp"
	"github.com/smartzap/server/smartzap/campaigns"
	"github.com/smartzap/server/smartzap/contacts"
	"github.com/smartzap/server/smartzap/conversations"
)

// holds all dependencies and state for the API server
type Server struct {
	db            *pgxpool.Pool
	config        *config.Config
	contactRepo   *contacts.Repository
	campaignRepo  *campaigns.Repository
	convRepo      *conversations.Repository
	controller    *automation.Controller
	limitsService *metalimits.Service
	limitsStore   metalimits.KVStore
	whatsapp      *whatsapp.Client
	dispatcher    *dispatch.Dispatcher
	router        *gin.Engine
}
