package campaigns

import "github.com/jackc/pgx/v5"

func scanCampaigns(rows pgx.Rows) ([]*Campaign, error) {
	var campaigns []*Campaign

	for rows.Next() {
		var campaign Campaign
		err := rows.Scan(
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
		campaigns = append(campaigns, &campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return campaigns, nil
}
