package campaigns

const queryCreateCampaign = `
	INSERT INTO campaigns (name, template_name, template_language, recipient_count, status)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, name, template_name, template_language, recipient_count,
	          sent_count, failed_count, status, blocked_reason, created_at, updated_at
`

const queryAddRecipients = `
	INSERT INTO campaign_recipients (campaign_id, contact_id)
	SELECT $1, unnest($2::uuid[])
	ON CONFLICT DO NOTHING
`

const queryGetCampaign = `
	SELECT id, name, template_name, template_language, recipient_count,
	       sent_count, failed_count, status, blocked_reason, created_at, updated_at
	FROM campaigns
	WHERE id = $1
`

const queryListCampaigns = `
	SELECT id, name, template_name, template_language, recipient_count,
	       sent_count, failed_count, status, blocked_reason, created_at, updated_at
	FROM campaigns
	ORDER BY created_at DESC
	LIMIT $1 OFFSET $2
`

const queryListCampaignsByStatus = `
	SELECT id, name, template_name, template_language, recipient_count,
	       sent_count, failed_count, status, blocked_reason, created_at, updated_at
	FROM campaigns
	WHERE status = $1
	ORDER BY created_at ASC
`

const queryUpdateStatus = `
	UPDATE campaigns
	SET status = $2, blocked_reason = $3, updated_at = NOW()
	WHERE id = $1
`

const queryIncrementCounters = `
	UPDATE campaigns
	SET sent_count = sent_count + $2,
	    failed_count = failed_count + $3,
	    updated_at = NOW()
	WHERE id = $1
`

const queryListRecipientPhones = `
	SELECT c.phone
	FROM campaign_recipients cr
	JOIN contacts c ON c.id = cr.contact_id
	WHERE cr.campaign_id = $1 AND NOT c.opted_out
`
