package automation

import (
	"context"
	"testing"
	"time"
)

// in-memory Repository applying the same partial-update semantics as
// the real store
type fakeRepo struct {
	conversations map[string]*Conversation
}

func newFakeRepo(convs ...*Conversation) *fakeRepo {
	repo := &fakeRepo{conversations: make(map[string]*Conversation)}
	for _, conv := range convs {
		repo.conversations[conv.ID] = conv
	}

	return repo
}

func (r *fakeRepo) GetAutomationState(_ context.Context, id string) (*Conversation, error) {
	conv, ok := r.conversations[id]
	if !ok {
		return nil, ErrConversationNotFound
	}

	copied := *conv
	return &copied, nil
}

func (r *fakeRepo) UpdateAutomationState(_ context.Context, id string, update StateUpdate) (*Conversation, error) {
	conv, ok := r.conversations[id]
	if !ok {
		return nil, ErrConversationNotFound
	}

	if update.Mode != nil {
		conv.Mode = *update.Mode
	}

	if update.ClearHumanModeExpiry {
		conv.HumanModeExpiresAt = nil
	} else if update.HumanModeExpiresAt != nil {
		conv.HumanModeExpiresAt = update.HumanModeExpiresAt
	}

	if update.ClearAutomationPause {
		conv.AutomationPausedUntil = nil
	} else if update.AutomationPausedUntil != nil {
		conv.AutomationPausedUntil = update.AutomationPausedUntil
	}

	if update.Status != nil {
		conv.Status = *update.Status
	}

	copied := *conv
	return &copied, nil
}

var testNow = time.Date(2026, 8, 27, 15, 0, 0, 0, time.UTC)

func newTestController(convs ...*Conversation) (*Controller, *fakeRepo) {
	repo := newFakeRepo(convs...)
	ctrl := NewController(repo)
	ctrl.now = func() time.Time { return testNow }

	return ctrl, repo
}

func openConversation(id string) *Conversation {
	return &Conversation{ID: id, Mode: ModeBot, Status: StatusOpen}
}

func TestSwitchMode_HumanWithTimeout(t *testing.T) {
	ctrl, _ := newTestController(openConversation("c1"))

	conv, err := ctrl.SwitchMode(context.Background(), "c1", ModeHuman, 30*60*1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conv.Mode != ModeHuman {
		t.Errorf("mode = %s, want human", conv.Mode)
	}

	want := testNow.Add(30 * time.Minute)
	if conv.HumanModeExpiresAt == nil || !conv.HumanModeExpiresAt.Equal(want) {
		t.Errorf("expiry = %v, want %v", conv.HumanModeExpiresAt, want)
	}
}

func TestSwitchMode_HumanWithoutTimeoutNeverExpires(t *testing.T) {
	ctrl, _ := newTestController(openConversation("c1"))

	conv, err := ctrl.SwitchMode(context.Background(), "c1", ModeHuman, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conv.HumanModeExpiresAt != nil {
		t.Errorf("expiry = %v, want nil for the never-expires policy", conv.HumanModeExpiresAt)
	}
}

func TestSwitchMode_BotClearsExpiry(t *testing.T) {
	expiry := testNow.Add(time.Hour)
	ctrl, _ := newTestController(&Conversation{
		ID:                 "c1",
		Mode:               ModeHuman,
		HumanModeExpiresAt: &expiry,
		Status:             StatusOpen,
	})

	conv, err := ctrl.SwitchMode(context.Background(), "c1", ModeBot, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conv.Mode != ModeBot {
		t.Errorf("mode = %s, want bot", conv.Mode)
	}

	if conv.HumanModeExpiresAt != nil {
		t.Errorf("switching to bot must clear the expiry, got %v", conv.HumanModeExpiresAt)
	}
}

func TestSwitchMode_ClosedConversationRejected(t *testing.T) {
	ctrl, repo := newTestController(&Conversation{ID: "c1", Mode: ModeBot, Status: StatusClosed})

	_, err := ctrl.SwitchMode(context.Background(), "c1", ModeHuman, 0)
	if err != ErrConversationClosed {
		t.Fatalf("err = %v, want ErrConversationClosed", err)
	}

	// rejected before any mutation
	if repo.conversations["c1"].Mode != ModeBot {
		t.Error("state must not change on a rejected transition")
	}
}

func TestSwitchMode_InvalidMode(t *testing.T) {
	ctrl, _ := newTestController(openConversation("c1"))

	if _, err := ctrl.SwitchMode(context.Background(), "c1", Mode("robot"), 0); err != ErrInvalidMode {
		t.Fatalf("err = %v, want ErrInvalidMode", err)
	}
}

func TestSwitchMode_UnknownConversation(t *testing.T) {
	ctrl, _ := newTestController()

	if _, err := ctrl.SwitchMode(context.Background(), "ghost", ModeHuman, 0); err != ErrConversationNotFound {
		t.Fatalf("err = %v, want ErrConversationNotFound", err)
	}
}

func TestHandoff_MatchesSwitchModeShape(t *testing.T) {
	ctrl, _ := newTestController(openConversation("c1"), openConversation("c2"))
	ctx := context.Background()

	viaHandoff, err := ctrl.Handoff(ctx, "c1", HandoffRequest{Reason: "pedido de atendente"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	viaSwitch, err := ctrl.SwitchMode(ctx, "c2", ModeHuman, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if viaHandoff.Mode != viaSwitch.Mode {
		t.Errorf("handoff mode = %s, switch mode = %s", viaHandoff.Mode, viaSwitch.Mode)
	}

	if viaHandoff.HumanModeExpiresAt != nil || viaSwitch.HumanModeExpiresAt != nil {
		t.Error("neither path should arm an expiry")
	}
}

func TestHandoff_WithPause(t *testing.T) {
	ctrl, _ := newTestController(openConversation("c1"))

	conv, err := ctrl.Handoff(context.Background(), "c1", HandoffRequest{PauseMinutes: 15})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conv.Mode != ModeHuman {
		t.Errorf("mode = %s, want human", conv.Mode)
	}

	want := testNow.Add(15 * time.Minute)
	if conv.AutomationPausedUntil == nil || !conv.AutomationPausedUntil.Equal(want) {
		t.Errorf("paused until = %v, want %v", conv.AutomationPausedUntil, want)
	}
}

func TestReturnToBot(t *testing.T) {
	expiry := testNow.Add(time.Hour)
	ctrl, _ := newTestController(&Conversation{
		ID:                 "c1",
		Mode:               ModeHuman,
		HumanModeExpiresAt: &expiry,
		Status:             StatusOpen,
	})

	conv, err := ctrl.ReturnToBot(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conv.Mode != ModeBot || conv.HumanModeExpiresAt != nil {
		t.Errorf("got mode=%s expiry=%v, want bot with no expiry", conv.Mode, conv.HumanModeExpiresAt)
	}
}

func TestPauseAutomation_DoesNotChangeMode(t *testing.T) {
	ctrl, _ := newTestController(openConversation("c1"))

	conv, err := ctrl.PauseAutomation(context.Background(), "c1", 30, "contato pediu pausa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conv.Mode != ModeBot {
		t.Errorf("pause must not change mode, got %s", conv.Mode)
	}

	want := testNow.Add(30 * time.Minute)
	if conv.AutomationPausedUntil == nil || !conv.AutomationPausedUntil.Equal(want) {
		t.Errorf("paused until = %v, want %v", conv.AutomationPausedUntil, want)
	}
}

func TestResumeAutomation_ClearsPauseOnly(t *testing.T) {
	pausedUntil := testNow.Add(time.Hour)
	ctrl, _ := newTestController(&Conversation{
		ID:                    "c1",
		Mode:                  ModeHuman,
		AutomationPausedUntil: &pausedUntil,
		Status:                StatusOpen,
	})

	conv, err := ctrl.ResumeAutomation(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conv.AutomationPausedUntil != nil {
		t.Errorf("paused until = %v, want nil", conv.AutomationPausedUntil)
	}

	if conv.Mode != ModeHuman {
		t.Errorf("resume must not touch mode, got %s", conv.Mode)
	}
}

func TestCloseAndReopen(t *testing.T) {
	expiry := testNow.Add(time.Hour)
	ctrl, _ := newTestController(&Conversation{
		ID:                 "c1",
		Mode:               ModeHuman,
		HumanModeExpiresAt: &expiry,
		Status:             StatusOpen,
	})
	ctx := context.Background()

	conv, err := ctrl.Close(ctx, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// closing leaves mode and expiry inert, not cleared
	if conv.Status != StatusClosed || conv.Mode != ModeHuman || conv.HumanModeExpiresAt == nil {
		t.Errorf("close changed more than status: %+v", conv)
	}

	if _, err := ctrl.Close(ctx, "c1"); err != ErrConversationClosed {
		t.Errorf("closing a closed conversation: err = %v, want ErrConversationClosed", err)
	}

	conv, err = ctrl.Reopen(ctx, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conv.Status != StatusOpen {
		t.Errorf("status = %s, want open", conv.Status)
	}

	if _, err := ctrl.Reopen(ctx, "c1"); err != ErrAlreadyOpen {
		t.Errorf("reopening an open conversation: err = %v, want ErrAlreadyOpen", err)
	}
}

func TestHumanModeTimeoutMs(t *testing.T) {
	tests := []struct {
		hours int
		want  int64
	}{
		{0, 0}, // never expires
		{1, 3_600_000},
		{8, 28_800_000},
		{24, 86_400_000},
	}

	for _, tt := range tests {
		if got := HumanModeTimeoutMs(tt.hours); got != tt.want {
			t.Errorf("HumanModeTimeoutMs(%d) = %d, want %d", tt.hours, got, tt.want)
		}
	}
}

func TestHumanModeExpired(t *testing.T) {
	past := testNow.Add(-time.Minute)
	future := testNow.Add(time.Minute)

	tests := []struct {
		name string
		conv *Conversation
		want bool
	}{
		{"nil conversation", nil, false},
		{"human with past expiry", &Conversation{Mode: ModeHuman, HumanModeExpiresAt: &past}, true},
		{"human with expiry at now", &Conversation{Mode: ModeHuman, HumanModeExpiresAt: &testNow}, true},
		{"human with future expiry", &Conversation{Mode: ModeHuman, HumanModeExpiresAt: &future}, false},
		{"human without expiry", &Conversation{Mode: ModeHuman}, false},
		{"bot with stale expiry", &Conversation{Mode: ModeBot, HumanModeExpiresAt: &past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HumanModeExpired(tt.conv, testNow); got != tt.want {
				t.Errorf("HumanModeExpired = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAutomationPaused(t *testing.T) {
	past := testNow.Add(-time.Minute)
	future := testNow.Add(time.Minute)

	tests := []struct {
		name string
		conv *Conversation
		want bool
	}{
		{"nil conversation", nil, false},
		{"no pause", &Conversation{Mode: ModeBot}, false},
		{"active pause", &Conversation{Mode: ModeBot, AutomationPausedUntil: &future}, true},
		{"expired pause", &Conversation{Mode: ModeBot, AutomationPausedUntil: &past}, false},
		{"paused in human mode", &Conversation{Mode: ModeHuman, AutomationPausedUntil: &future}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AutomationPaused(tt.conv, testNow); got != tt.want {
				t.Errorf("AutomationPaused = %v, want %v", got, tt.want)
			}
		})
	}
}
