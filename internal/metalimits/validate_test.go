package metalimits

import (
	"strings"
	"testing"
	"time"
)

func snapshot(tier MessagingTier, level ThroughputLevel, quality QualityScore, usedToday int) *AccountLimits {
	return &AccountLimits{
		MessagingTier:   tier,
		ThroughputLevel: level,
		QualityScore:    quality,
		UsedToday:       usedToday,
		LastFetched:     time.Now(),
	}
}

func TestValidateCampaign_WithinLimit(t *testing.T) {
	limits := snapshot(Tier2K, ThroughputStandard, QualityGreen, 0)

	result := ValidateCampaign(1500, limits)

	if !result.CanSend {
		t.Fatalf("expected campaign to be allowed, blocked with: %s", result.BlockedReason)
	}

	if result.RemainingToday != 2000 {
		t.Errorf("RemainingToday = %d, want 2000", result.RemainingToday)
	}

	if result.UpgradeRoadmap != nil {
		t.Error("roadmap should only be attached to blocked results")
	}
}

func TestValidateCampaign_ExceedsDailyCeiling(t *testing.T) {
	limits := snapshot(Tier2K, ThroughputStandard, QualityGreen, 0)

	result := ValidateCampaign(3000, limits)

	if result.CanSend {
		t.Fatal("expected campaign to be blocked")
	}

	if !strings.Contains(result.BlockedReason, "3.000") {
		t.Errorf("blocked reason should contain formatted requested count, got: %s", result.BlockedReason)
	}

	if !strings.Contains(result.BlockedReason, "2.000") {
		t.Errorf("blocked reason should contain formatted ceiling, got: %s", result.BlockedReason)
	}

	if len(result.UpgradeRoadmap) == 0 {
		t.Error("blocked result should carry an upgrade roadmap")
	}
}

func TestValidateCampaign_ExceedsRemainingToday(t *testing.T) {
	limits := snapshot(Tier2K, ThroughputStandard, QualityGreen, 1800)

	result := ValidateCampaign(500, limits)

	if result.CanSend {
		t.Fatal("expected campaign to be blocked")
	}

	if result.RemainingToday != 200 {
		t.Errorf("RemainingToday = %d, want 200", result.RemainingToday)
	}

	if !strings.Contains(result.BlockedReason, "200") {
		t.Errorf("blocked reason should contain remaining figure, got: %s", result.BlockedReason)
	}

	if !strings.Contains(result.BlockedReason, "500") {
		t.Errorf("blocked reason should contain requested count, got: %s", result.BlockedReason)
	}
}

func TestValidateCampaign_RemainingNeverNegative(t *testing.T) {
	// usedToday above the ceiling must clamp, not go negative
	limits := snapshot(Tier250, ThroughputStandard, QualityGreen, 400)

	result := ValidateCampaign(10, limits)

	if result.RemainingToday != 0 {
		t.Errorf("RemainingToday = %d, want 0", result.RemainingToday)
	}

	if result.CanSend {
		t.Error("expected campaign to be blocked with nothing remaining")
	}
}

func TestValidateCampaign_UnlimitedNeverBlocks(t *testing.T) {
	limits := snapshot(TierUnlimited, ThroughputHigh, QualityRed, 5_000_000)

	result := ValidateCampaign(1_000_000, limits)

	if !result.CanSend {
		t.Fatalf("unlimited tier must never block, got: %s", result.BlockedReason)
	}

	if result.CurrentLimit != UnlimitedDailyUsers {
		t.Errorf("CurrentLimit = %d, want %d", result.CurrentLimit, UnlimitedDailyUsers)
	}

	// quality warnings still apply on the unlimited tier
	if !containsWarning(result.Warnings, "qualidade BAIXA") {
		t.Error("expected RED quality warning even on unlimited tier")
	}
}

func TestValidateCampaign_QualityWarnings(t *testing.T) {
	tests := []struct {
		quality  QualityScore
		fragment string
		want     bool
	}{
		{QualityRed, "qualidade BAIXA", true},
		{QualityYellow, "qualidade MÉDIA", true},
		{QualityGreen, "qualidade", false},
		{QualityUnknown, "qualidade", false},
	}

	for _, tt := range tests {
		limits := snapshot(Tier2K, ThroughputStandard, tt.quality, 0)
		result := ValidateCampaign(100, limits)

		if got := containsWarning(result.Warnings, tt.fragment); got != tt.want {
			t.Errorf("quality %s: warning containing %q = %v, want %v", tt.quality, tt.fragment, got, tt.want)
		}
	}
}

func TestValidateCampaign_LargeCampaignWarning(t *testing.T) {
	tests := []struct {
		name  string
		count int
		level ThroughputLevel
		want  bool
	}{
		{"above threshold on standard", 5001, ThroughputStandard, true},
		{"at threshold on standard", 5000, ThroughputStandard, false},
		{"above threshold on high", 50000, ThroughputHigh, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limits := snapshot(TierUnlimited, tt.level, QualityGreen, 0)
			result := ValidateCampaign(tt.count, limits)

			if got := containsWarning(result.Warnings, "Campanha grande"); got != tt.want {
				t.Errorf("large campaign warning = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateCampaign_NearLimitWarning(t *testing.T) {
	limits := snapshot(Tier1K, ThroughputStandard, QualityGreen, 0)

	result := ValidateCampaign(850, limits)
	if !containsWarning(result.Warnings, "85%") {
		t.Errorf("expected warning containing 85%%, got: %v", result.Warnings)
	}

	// exactly 80% does not warn: the threshold is strictly greater
	result = ValidateCampaign(800, limits)
	if containsWarning(result.Warnings, "%") {
		t.Errorf("expected no near-limit warning at exactly 80%%, got: %v", result.Warnings)
	}
}

func TestValidateCampaign_EstimatedDuration(t *testing.T) {
	tests := []struct {
		name  string
		count int
		level ThroughputLevel
		want  string
	}{
		{"zero contacts", 0, ThroughputStandard, "0 segundos"},
		{"single contact", 1, ThroughputStandard, "1 segundo"},
		{"seconds on standard", 720, ThroughputStandard, "10 segundos"},
		{"minutes on standard", 43200, ThroughputStandard, "10 minutos"},
		{"hours on standard", 600000, ThroughputStandard, "2 horas"},
		{"seconds on high", 9000, ThroughputHigh, "10 segundos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limits := snapshot(TierUnlimited, tt.level, QualityGreen, 0)
			result := ValidateCampaign(tt.count, limits)

			if result.EstimatedDuration != tt.want {
				t.Errorf("EstimatedDuration = %q, want %q", result.EstimatedDuration, tt.want)
			}
		})
	}
}

func TestValidateCampaign_CanSendMatchesRemaining(t *testing.T) {
	// canSend must equal contactCount <= remainingToday on finite tiers
	for _, used := range []int{0, 100, 1999, 2000, 3000} {
		limits := snapshot(Tier2K, ThroughputStandard, QualityGreen, used)

		for _, count := range []int{0, 1, 200, 2000, 2001} {
			result := ValidateCampaign(count, limits)
			want := count <= result.RemainingToday

			if result.CanSend != want {
				t.Errorf("used=%d count=%d: CanSend = %v, want %v (remaining %d)",
					used, count, result.CanSend, want, result.RemainingToday)
			}
		}
	}
}

func containsWarning(warnings []string, fragment string) bool {
	for _, w := range warnings {
		if strings.Contains(w, fragment) {
			return true
		}
	}

	return false
}
