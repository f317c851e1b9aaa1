package metalimits

import "math"

const (
	// campaigns above this size on STANDARD throughput get a pacing warning
	largeCampaignThreshold = 5000

	// campaigns consuming strictly more than this share of the daily
	// ceiling get a near-limit warning
	nearLimitRatio = 0.80

	// real-world throughput runs below the nominal ceiling
	throughputDerating = 0.9
)

// decides whether a campaign send may proceed against the account's
// current limits. pure function: no I/O, never mutates the snapshot.
func ValidateCampaign(contactCount int, limits *AccountLimits) *ValidationResult {
	maxPerDay := limits.MessagingTier.MaxUniqueUsersPerDay()
	unlimited := limits.MessagingTier.Unlimited()

	used := limits.UsedToday
	if used < 0 {
		used = 0
	}

	remaining := UnlimitedDailyUsers
	if !unlimited {
		remaining = maxPerDay - used
		if remaining < 0 {
			remaining = 0
		}
	}

	result := &ValidationResult{
		CanSend:           true,
		Warnings:          []string{},
		CurrentLimit:      maxPerDay,
		RequestedCount:    contactCount,
		RemainingToday:    remaining,
		EstimatedDuration: estimateDuration(contactCount, limits.ThroughputLevel),
	}

	// blocking: requested exceeds what the tier still allows today.
	// unlimited tiers never block regardless of count.
	if !unlimited && contactCount > remaining {
		result.CanSend = false
		result.UpgradeRoadmap = UpgradeRoadmap(limits)

		if contactCount > maxPerDay {
			result.BlockedReason = ptBR.Sprintf(
				"A campanha tem %d contatos, mas seu limite diário é de %d usuários únicos. Reduza a campanha ou aguarde o upgrade de tier.",
				contactCount, maxPerDay,
			)
		} else {
			result.BlockedReason = ptBR.Sprintf(
				"A campanha tem %d contatos, mas restam apenas %d envios hoje (%d de %d já utilizados).",
				contactCount, remaining, used, maxPerDay,
			)
		}
	}

	// quality warnings are independent of the blocking decision
	switch limits.QualityScore {
	case QualityRed:
		result.Warnings = append(result.Warnings,
			"Sua conta está com qualidade BAIXA. Envios em massa podem reduzir ainda mais a qualidade e congelar seu tier.")
	case QualityYellow:
		result.Warnings = append(result.Warnings,
			"Sua conta está com qualidade MÉDIA. Monitore bloqueios e denúncias antes de enviar campanhas grandes.")
	}

	// HIGH throughput drains any campaign fast enough that pacing
	// is not a concern
	if contactCount > largeCampaignThreshold && limits.ThroughputLevel == ThroughputStandard {
		result.Warnings = append(result.Warnings, ptBR.Sprintf(
			"Campanha grande (%d contatos): o envio será ritmado em até %d mensagens por segundo.",
			contactCount, limits.ThroughputLevel.MaxMessagesPerSecond(),
		))
	}

	if !unlimited && maxPerDay > 0 {
		ratio := float64(contactCount) / float64(maxPerDay)
		if ratio > nearLimitRatio {
			pct := int(math.Round(ratio * 100))
			result.Warnings = append(result.Warnings, ptBR.Sprintf(
				"Esta campanha usará %d%% do seu limite diário de %d usuários únicos.",
				pct, maxPerDay,
			))
		}
	}

	return result
}

// estimates wall-clock send time assuming the derated throughput
func estimateDuration(contactCount int, level ThroughputLevel) string {
	effective := float64(level.MaxMessagesPerSecond()) * throughputDerating
	return formatDuration(float64(contactCount) / effective)
}
