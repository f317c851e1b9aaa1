package campaigns

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// creates a campaign and attaches its recipients in one transaction
func (r *Repository) Create(ctx context.Context, req *CreateCampaignRequest, status string) (*Campaign, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var campaign Campaign

	err = tx.QueryRow(
		ctx,
		queryCreateCampaign,
		req.Name,
		req.TemplateName,
		req.TemplateLanguage,
		len(req.ContactIDs),
		status,
	).Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.TemplateName,
		&campaign.TemplateLanguage,
		&campaign.RecipientCount,
		&campaign.SentCount,
		&campaign.FailedCount,
		&campaign.Status,
		&campaign.BlockedReason,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	if len(req.ContactIDs) > 0 {
		if _, err := tx.Exec(ctx, queryAddRecipients, campaign.ID, req.ContactIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &campaign, nil
}

// retrieves a campaign by ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Campaign, error) {
	var campaign Campaign

	err := r.db.QueryRow(ctx, queryGetCampaign, id).Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.TemplateName,
		&campaign.TemplateLanguage,
		&campaign.RecipientCount,
		&campaign.SentCount,
		&campaign.FailedCount,
		&campaign.Status,
		&campaign.BlockedReason,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &campaign, nil
}

// lists campaigns with pagination, newest first
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Campaign, error) {
	rows, err := r.db.Query(ctx, queryListCampaigns, limit, offset)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	return scanCampaigns(rows)
}

// lists campaigns in a given status, oldest first (queue order)
func (r *Repository) ListByStatus(ctx context.Context, status string) ([]*Campaign, error) {
	rows, err := r.db.Query(ctx, queryListCampaignsByStatus, status)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	return scanCampaigns(rows)
}

// updates a campaign's status; reason is only meaningful for blocked
// and failed campaigns
func (r *Repository) UpdateStatus(ctx context.Context, id, status string, reason *string) error {
	_, err := r.db.Exec(ctx, queryUpdateStatus, id, status, reason)
	return err
}

// adds sent/failed deltas to a campaign's counters
func (r *Repository) IncrementCounters(ctx context.Context, id string, sent, failed int) error {
	_, err := r.db.Exec(ctx, queryIncrementCounters, id, sent, failed)
	return err
}

// returns the sendable recipient phone numbers for a campaign
func (r *Repository) ListRecipientPhones(ctx context.Context, id string) ([]string, error) {
	rows, err := r.db.Query(ctx, queryListRecipientPhones, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var phones []string

	for rows.Next() {
		var phone string
		if err := rows.Scan(&phone); err != nil {
			return nil, err
		}
		phones = append(phones, phone)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return phones, nil
}
