package dispatch

import (
	"context"
	"time"

	"github.com/smartzap/server/internal/logger"
	"github.com/smartzap/server/internal/metalimits"
	"github.com/smartzap/server/smartzap/campaigns"
	"golang.org/x/time/rate"
)

// outbound message collaborator (the Cloud API client in production)
type Sender interface {
	SendTemplate(ctx context.Context, to, templateName, languageCode string) (string, error)
}

// campaign persistence collaborator
type CampaignStore interface {
	ListByStatus(ctx context.Context, status string) ([]*campaigns.Campaign, error)
	UpdateStatus(ctx context.Context, id, status string, reason *string) error
	IncrementCounters(ctx context.Context, id string, sent, failed int) error
	ListRecipientPhones(ctx context.Context, id string) ([]string, error)
}

// account limits collaborator
type LimitsProvider interface {
	CurrentLimits(ctx context.Context) *metalimits.AccountLimits
}

// drains queued campaigns: re-validates each against the current
// account limits, then paces sends below the tier's throughput ceiling
type Dispatcher struct {
	store    CampaignStore
	sender   Sender
	limits   LimitsProvider
	interval time.Duration
	done     chan struct{}
}

func NewDispatcher(store CampaignStore, sender Sender, limits LimitsProvider, interval time.Duration) *Dispatcher {
	return &Dispatcher{
		store:    store,
		sender:   sender,
		limits:   limits,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// runs the dispatch loop until the context is canceled or Stop is called
func (d *Dispatcher) Start(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	logger.Info("campaign dispatcher started", "interval", d.interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-d.done:
			return
		case <-ticker.C:
			d.drainQueued(ctx)
		}
	}
}

// stops the dispatch loop
func (d *Dispatcher) Stop() {
	close(d.done)
}

func (d *Dispatcher) drainQueued(ctx context.Context) {
	queued, err := d.store.ListByStatus(ctx, campaigns.StatusQueued)
	if err != nil {
		logger.ErrorErr(err, "failed to list queued campaigns")
		return
	}

	for _, campaign := range queued {
		if err := d.Dispatch(ctx, campaign); err != nil {
			logger.ErrorErr(err, "campaign dispatch failed", "campaign_id", campaign.ID)
		}
	}
}

// validates and sends a single campaign. validation runs again at
// dispatch time: the account limits may have changed since the
// campaign was queued.
func (d *Dispatcher) Dispatch(ctx context.Context, campaign *campaigns.Campaign) error {
	limits := d.limits.CurrentLimits(ctx)

	result := metalimits.ValidateCampaign(campaign.RecipientCount, limits)
	if !result.CanSend {
		logger.Warn("campaign blocked by account limits",
			"campaign_id", campaign.ID,
			"requested", result.RequestedCount,
			"remaining_today", result.RemainingToday,
		)

		return d.store.UpdateStatus(ctx, campaign.ID, campaigns.StatusBlocked, &result.BlockedReason)
	}

	phones, err := d.store.ListRecipientPhones(ctx, campaign.ID)
	if err != nil {
		return err
	}

	if err := d.store.UpdateStatus(ctx, campaign.ID, campaigns.StatusSending, nil); err != nil {
		return err
	}

	// pace sends at the derated tier throughput
	mps := float64(limits.ThroughputLevel.MaxMessagesPerSecond()) * 0.9
	limiter := rate.NewLimiter(rate.Limit(mps), 1)

	sent, failed := 0, 0

	for _, phone := range phones {
		if err := limiter.Wait(ctx); err != nil {
			// canceled mid-campaign: record progress and bail
			d.recordProgress(campaign.ID, sent, failed)
			return err
		}

		if _, err := d.sender.SendTemplate(ctx, phone, campaign.TemplateName, campaign.TemplateLanguage); err != nil {
			logger.ErrorErr(err, "template send failed",
				"campaign_id", campaign.ID,
				"to", phone,
			)
			failed++
			continue
		}

		sent++
	}

	d.recordProgress(campaign.ID, sent, failed)

	status := campaigns.StatusCompleted
	if sent == 0 && failed > 0 {
		status = campaigns.StatusFailed
	}

	return d.store.UpdateStatus(ctx, campaign.ID, status, nil)
}

func (d *Dispatcher) recordProgress(campaignID string, sent, failed int) {
	if sent == 0 && failed == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := d.store.IncrementCounters(ctx, campaignID, sent, failed); err != nil {
		logger.ErrorErr(err, "failed to record campaign progress", "campaign_id", campaignID)
	}
}
