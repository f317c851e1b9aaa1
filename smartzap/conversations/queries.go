package conversations

const queryCreateConversation = `
	INSERT INTO conversations (contact_phone, contact_name, mode, status)
	VALUES ($1, $2, 'bot', 'open')
	RETURNING id, contact_phone, contact_name, mode, human_mode_expires_at,
	          automation_paused_until, status, unread_count, last_message_at,
	          created_at, updated_at
`

const queryGetConversation = `
	SELECT id, contact_phone, contact_name, mode, human_mode_expires_at,
	       automation_paused_until, status, unread_count, last_message_at,
	       created_at, updated_at
	FROM conversations
	WHERE id = $1
`

const queryListConversations = `
	SELECT id, contact_phone, contact_name, mode, human_mode_expires_at,
	       automation_paused_until, status, unread_count, last_message_at,
	       created_at, updated_at
	FROM conversations
	ORDER BY last_message_at DESC NULLS LAST, created_at DESC
	LIMIT $1 OFFSET $2
`

const queryListConversationsByStatus = `
	SELECT id, contact_phone, contact_name, mode, human_mode_expires_at,
	       automation_paused_until, status, unread_count, last_message_at,
	       created_at, updated_at
	FROM conversations
	WHERE status = $3
	ORDER BY last_message_at DESC NULLS LAST, created_at DESC
	LIMIT $1 OFFSET $2
`

// partial update: NULL parameters leave the column untouched, the
// boolean clear flags set the timestamps back to NULL explicitly
const queryUpdateAutomationState = `
	UPDATE conversations SET
		mode = COALESCE($2::text, mode),
		human_mode_expires_at = CASE
			WHEN $3 THEN NULL
			WHEN $4::timestamptz IS NOT NULL THEN $4
			ELSE human_mode_expires_at
		END,
		automation_paused_until = CASE
			WHEN $5 THEN NULL
			WHEN $6::timestamptz IS NOT NULL THEN $6
			ELSE automation_paused_until
		END,
		status = COALESCE($7::text, status),
		updated_at = NOW()
	WHERE id = $1
	RETURNING id, mode, human_mode_expires_at, automation_paused_until, status
`
