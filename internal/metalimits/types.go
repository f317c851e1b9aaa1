package metalimits

import "time"

// messaging tier constants as reported by the WhatsApp Cloud API
// (daily unique-recipient ceiling classes)
type MessagingTier string

const (
	Tier250       MessagingTier = "TIER_250"
	Tier1K        MessagingTier = "TIER_1K"
	Tier2K        MessagingTier = "TIER_2K"
	Tier10K       MessagingTier = "TIER_10K"
	Tier100K      MessagingTier = "TIER_100K"
	TierUnlimited MessagingTier = "TIER_UNLIMITED"
)

// throughput level constants (messages-per-second ceiling classes)
type ThroughputLevel string

const (
	ThroughputStandard ThroughputLevel = "STANDARD"
	ThroughputHigh     ThroughputLevel = "HIGH"
)

// quality score constants (provider-reported account health)
type QualityScore string

const (
	QualityGreen   QualityScore = "GREEN"
	QualityYellow  QualityScore = "YELLOW"
	QualityRed     QualityScore = "RED"
	QualityUnknown QualityScore = "UNKNOWN"
)

// sentinel for tiers without a daily recipient ceiling
const UnlimitedDailyUsers = -1

// snapshot of provider-reported quota state for a phone number.
// read-only after construction; superseded by a fresh fetch when stale.
type AccountLimits struct {
	MessagingTier   MessagingTier   `json:"messaging_tier"`
	ThroughputLevel ThroughputLevel `json:"throughput_level"`
	QualityScore    QualityScore    `json:"quality_score"`
	UsedToday       int             `json:"used_today"`
	LastFetched     time.Time       `json:"last_fetched"`
}

// returns the daily unique-recipient ceiling for the tier.
// derived from the tier alone so the two can never drift apart.
func (t MessagingTier) MaxUniqueUsersPerDay() int {
	switch t {
	case Tier250:
		return 250
	case Tier1K:
		return 1_000
	case Tier2K:
		return 2_000
	case Tier10K:
		return 10_000
	case Tier100K:
		return 100_000
	case TierUnlimited:
		return UnlimitedDailyUsers
	default:
		return 250
	}
}

// returns the messages-per-second ceiling for the throughput level
func (l ThroughputLevel) MaxMessagesPerSecond() int {
	switch l {
	case ThroughputHigh:
		return 1_000
	default:
		return 80
	}
}

// reports whether the tier has no daily recipient ceiling
func (t MessagingTier) Unlimited() bool {
	return t == TierUnlimited
}

// result of validating a campaign against the account's current limits
type ValidationResult struct {
	CanSend           bool          `json:"can_send"`
	BlockedReason     string        `json:"blocked_reason,omitempty"`
	Warnings          []string      `json:"warnings"`
	CurrentLimit      int           `json:"current_limit"`   // UnlimitedDailyUsers when unbounded
	RequestedCount    int           `json:"requested_count"`
	RemainingToday    int           `json:"remaining_today"` // UnlimitedDailyUsers when unbounded
	EstimatedDuration string        `json:"estimated_duration"`
	UpgradeRoadmap    []RoadmapStep `json:"upgrade_roadmap,omitempty"`
}

// advisory upgrade step; never gates sending
type RoadmapStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action,omitempty"`
	Link        string `json:"link,omitempty"`
	Completed   bool   `json:"completed"`
}

// returns the most conservative snapshot, used when the provider
// cannot be reached
func DefaultLimits(now time.Time) *AccountLimits {
	return &AccountLimits{
		MessagingTier:   Tier250,
		ThroughputLevel: ThroughputStandard,
		QualityScore:    QualityUnknown,
		UsedToday:       0,
		LastFetched:     now,
	}
}

// parses a provider-reported tier string, falling back to the most
// conservative tier on anything unrecognized
func ParseMessagingTier(raw string) MessagingTier {
	switch MessagingTier(raw) {
	case Tier250, Tier1K, Tier2K, Tier10K, Tier100K, TierUnlimited:
		return MessagingTier(raw)
	default:
		return Tier250
	}
}

// parses a provider-reported throughput level, case-insensitively
func ParseThroughputLevel(raw string) ThroughputLevel {
	if ThroughputLevel(normalizeUpper(raw)) == ThroughputHigh {
		return ThroughputHigh
	}

	return ThroughputStandard
}

// parses a provider-reported quality score, falling back to UNKNOWN
func ParseQualityScore(raw string) QualityScore {
	switch QualityScore(normalizeUpper(raw)) {
	case QualityGreen, QualityYellow, QualityRed:
		return QualityScore(normalizeUpper(raw))
	default:
		return QualityUnknown
	}
}
