package contacts

const queryCreateContact = `
	INSERT INTO contacts (phone, name, tags)
	VALUES ($1, $2, $3)
	RETURNING id, phone, name, tags, opted_out, created_at, updated_at
`

const queryGetContact = `
	SELECT id, phone, name, tags, opted_out, created_at, updated_at
	FROM contacts
	WHERE id = $1
`

const queryListContacts = `
	SELECT id, phone, name, tags, opted_out, created_at, updated_at
	FROM contacts
	ORDER BY created_at DESC
	LIMIT $1 OFFSET $2
`

// opted-out contacts are excluded: they must never count toward a
// campaign audience
const queryCountByIDs = `
	SELECT COUNT(*)
	FROM contacts
	WHERE id = ANY($1) AND NOT opted_out
`

const queryListPhonesByIDs = `
	SELECT phone
	FROM contacts
	WHERE id = ANY($1) AND NOT opted_out
`
