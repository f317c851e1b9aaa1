package limits

import (
	"time"

	"github.com/smartzap/server/internal/metalimits"
)

// Response represents the account limits snapshot with its derived
// ceilings expanded for API consumers
type Response struct {
	MessagingTier        metalimits.MessagingTier   `json:"messaging_tier"`
	ThroughputLevel      metalimits.ThroughputLevel `json:"throughput_level"`
	QualityScore         metalimits.QualityScore    `json:"quality_score"`
	MaxUniqueUsersPerDay int                        `json:"max_unique_users_per_day"` // -1 when unlimited
	MaxMessagesPerSecond int                        `json:"max_messages_per_second"`
	UsedToday            int                        `json:"used_today"`
	LastFetched          time.Time                  `json:"last_fetched"`
}

func newResponse(limits *metalimits.AccountLimits) Response {
	return Response{
		MessagingTier:        limits.MessagingTier,
		ThroughputLevel:      limits.ThroughputLevel,
		QualityScore:         limits.QualityScore,
		MaxUniqueUsersPerDay: limits.MessagingTier.MaxUniqueUsersPerDay(),
		MaxMessagesPerSecond: limits.ThroughputLevel.MaxMessagesPerSecond(),
		UsedToday:            limits.UsedToday,
		LastFetched:          limits.LastFetched,
	}
}
