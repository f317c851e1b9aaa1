package conversations

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartzap/server/internal/automation"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// creates a new open conversation in bot mode
func (r *Repository) Create(ctx context.Context, req *CreateConversationRequest) (*Conversation, error) {
	var conv Conversation

	err := r.db.QueryRow(
		ctx,
		queryCreateConversation,
		req.ContactPhone,
		req.ContactName,
	).Scan(
		&conv.ID,
		&conv.ContactPhone,
		&conv.ContactName,
		&conv.Mode,
		&conv.HumanModeExpiresAt,
		&conv.AutomationPausedUntil,
		&conv.Status,
		&conv.UnreadCount,
		&conv.LastMessageAt,
		&conv.CreatedAt,
		&conv.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &conv, nil
}

// retrieves a conversation by ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Conversation, error) {
	var conv Conversation

	err := r.db.QueryRow(ctx, queryGetConversation, id).Scan(
		&conv.ID,
		&conv.ContactPhone,
		&conv.ContactName,
		&conv.Mode,
		&conv.HumanModeExpiresAt,
		&conv.AutomationPausedUntil,
		&conv.Status,
		&conv.UnreadCount,
		&conv.LastMessageAt,
		&conv.CreatedAt,
		&conv.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, automation.ErrConversationNotFound
	}

	if err != nil {
		return nil, err
	}

	return &conv, nil
}

// lists conversations ordered by most recent activity, optionally
// filtered by status
func (r *Repository) List(ctx context.Context, limit, offset int, status automation.Status) ([]*Conversation, error) {
	var (
		rows pgx.Rows
		err  error
	)

	if status != "" {
		rows, err = r.db.Query(ctx, queryListConversationsByStatus, limit, offset, status)
	} else {
		rows, err = r.db.Query(ctx, queryListConversations, limit, offset)
	}

	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var conversations []*Conversation

	for rows.Next() {
		var conv Conversation
		err := rows.Scan(
			&conv.ID,
			&conv.ContactPhone,
			&conv.ContactName,
			&conv.Mode,
			&conv.HumanModeExpiresAt,
			&conv.AutomationPausedUntil,
			&conv.Status,
			&conv.UnreadCount,
			&conv.LastMessageAt,
			&conv.CreatedAt,
			&conv.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, &conv)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return conversations, nil
}

// retrieves the automation state subset for the mode controller
func (r *Repository) GetAutomationState(ctx context.Context, id string) (*automation.Conversation, error) {
	conv, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &automation.Conversation{
		ID:                    conv.ID,
		Mode:                  conv.Mode,
		HumanModeExpiresAt:    conv.HumanModeExpiresAt,
		AutomationPausedUntil: conv.AutomationPausedUntil,
		Status:                conv.Status,
	}, nil
}

// applies a partial automation-state update as a single-row
// read-modify-write and returns the resulting state
func (r *Repository) UpdateAutomationState(ctx context.Context, id string, update automation.StateUpdate) (*automation.Conversation, error) {
	var conv automation.Conversation

	err := r.db.QueryRow(
		ctx,
		queryUpdateAutomationState,
		id,
		update.Mode,
		update.ClearHumanModeExpiry,
		update.HumanModeExpiresAt,
		update.ClearAutomationPause,
		update.AutomationPausedUntil,
		update.Status,
	).Scan(
		&conv.ID,
		&conv.Mode,
		&conv.HumanModeExpiresAt,
		&conv.AutomationPausedUntil,
		&conv.Status,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, automation.ErrConversationNotFound
	}

	if err != nil {
		return nil, err
	}

	return &conv, nil
}
