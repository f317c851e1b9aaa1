package metalimits

const businessVerificationURL = "https://business.facebook.com/settings/security"

// returns the advisory steps toward the next messaging tier.
// purely informational: roadmap steps never gate sending.
func UpgradeRoadmap(limits *AccountLimits) []RoadmapStep {
	qualityOK := limits.QualityScore == QualityGreen || limits.QualityScore == QualityYellow

	switch limits.MessagingTier {
	case Tier250:
		return []RoadmapStep{
			{
				Title:       "Verifique sua empresa",
				Description: "Complete a verificação da empresa no Gerenciador de Negócios da Meta para liberar o limite de 1.000 conversas por dia.",
				Action:      "Verificar agora",
				Link:        businessVerificationURL,
				Completed:   false,
			},
			{
				Title:       "Mantenha a qualidade alta",
				Description: "Evite bloqueios e denúncias. Contas com qualidade verde ou amarela são elegíveis para upgrade automático.",
				Completed:   qualityOK,
			},
			{
				Title:       "Aguarde a avaliação automática",
				Description: "A Meta reavalia contas verificadas automaticamente e promove o tier conforme o volume e a qualidade dos envios.",
				Completed:   false,
			},
		}
	case Tier2K:
		return []RoadmapStep{
			{
				Title:       "Aumente o volume de envios",
				Description: "Envie mensagens para 1.000+ usuários únicos por dia (50% do seu limite atual) mantendo a qualidade da conta.",
				Completed:   false,
			},
			{
				Title:       "Mantenha a qualidade alta",
				Description: "O upgrade só acontece com qualidade verde ou amarela no momento da avaliação.",
				Completed:   qualityOK,
			},
			{
				Title:       "Aguarde a janela de avaliação",
				Description: "A Meta avalia o volume dos últimos 7 dias em janelas automáticas de aproximadamente 6 horas.",
				Completed:   false,
			},
		}
	case Tier10K:
		return []RoadmapStep{
			{
				Title:       "Aumente o volume de envios",
				Description: "Envie mensagens para 5.000+ usuários únicos por dia mantendo a qualidade da conta.",
				Completed:   false,
			},
			{
				Title:       "Aguarde a avaliação automática",
				Description: "Com volume e qualidade sustentados, a Meta promove o tier automaticamente.",
				Completed:   false,
			},
		}
	case Tier100K:
		return []RoadmapStep{
			{
				Title:       "Aumente o volume de envios",
				Description: "Envie mensagens para 50.000+ usuários únicos por dia mantendo a qualidade da conta.",
				Completed:   false,
			},
			{
				Title:       "Aguarde a avaliação automática",
				Description: "O próximo nível remove o limite diário de usuários únicos.",
				Completed:   false,
			},
		}
	default:
		// TIER_UNLIMITED has nowhere to go; TIER_1K is a legacy tier
		// outside the upgrade chain
		return []RoadmapStep{}
	}
}

// returns the tier that follows in the upgrade chain.
// TIER_1K is legacy and not reachable by upgrade, so it has no successor.
func NextTier(tier MessagingTier) (MessagingTier, bool) {
	switch tier {
	case Tier250:
		return Tier2K, true
	case Tier2K:
		return Tier10K, true
	case Tier10K:
		return Tier100K, true
	case Tier100K:
		return TierUnlimited, true
	default:
		return "", false
	}
}
