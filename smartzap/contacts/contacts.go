package contacts

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

// creates a new contact
func (r *Repository) Create(ctx context.Context, req *CreateContactRequest) (*Contact, error) {
	var contact Contact

	err := r.db.QueryRow(
		ctx,
		queryCreateContact,
		req.Phone,
		req.Name,
		req.Tags,
	).Scan(
		&contact.ID,
		&contact.Phone,
		&contact.Name,
		&contact.Tags,
		&contact.OptedOut,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &contact, nil
}

// retrieves a contact by ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Contact, error) {
	var contact Contact

	err := r.db.QueryRow(ctx, queryGetContact, id).Scan(
		&contact.ID,
		&contact.Phone,
		&contact.Name,
		&contact.Tags,
		&contact.OptedOut,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &contact, nil
}

// lists contacts with pagination
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Contact, error) {
	rows, err := r.db.Query(ctx, queryListContacts, limit, offset)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var contacts []*Contact

	for rows.Next() {
		var contact Contact
		err := rows.Scan(
			&contact.ID,
			&contact.Phone,
			&contact.Name,
			&contact.Tags,
			&contact.OptedOut,
			&contact.CreatedAt,
			&contact.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, &contact)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contacts, nil
}

// counts how many of the given contact IDs are sendable
func (r *Repository) CountByIDs(ctx context.Context, ids []string) (int, error) {
	var count int

	if err := r.db.QueryRow(ctx, queryCountByIDs, ids).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// returns the phone numbers for the given contact IDs, skipping
// opted-out contacts
func (r *Repository) ListPhonesByIDs(ctx context.Context, ids []string) ([]string, error) {
	rows, err := r.db.Query(ctx, queryListPhonesByIDs, ids)
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
