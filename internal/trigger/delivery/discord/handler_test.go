package discord

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"teamcity-notifier/internal/model"
	"teamcity-notifier/internal/trigger"
	pkgDiscord "teamcity-notifier/pkg/discord"
	pkgLog "teamcity-notifier/pkg/log"
)

type mockBot struct {
	registered *pkgDiscord.Command
	handlers   map[string]pkgDiscord.CommandHandler
	deferErr   error
	deferred   int
	edited     []model.Card
}

func (m *mockBot) SendCard(ctx context.Context, channelID string, card model.Card) error { return nil }
func (m *mockBot) RegisterCommand(ctx context.Context, cmd pkgDiscord.Command) error {
	m.registered = &cmd
	return nil
}
func (m *mockBot) OnCommand(name string, h pkgDiscord.CommandHandler) {
	if m.handlers == nil {
		m.handlers = map[string]pkgDiscord.CommandHandler{}
	}
	m.handlers[name] = h
}
func (m *mockBot) RespondDeferred(ctx context.Context, ic *pkgDiscord.Interaction) error {
	m.deferred++
	return m.deferErr
}
func (m *mockBot) EditResponseCard(ctx context.Context, ic *pkgDiscord.Interaction, card model.Card) error {
	m.edited = append(m.edited, card)
	return nil
}
func (m *mockBot) Open() error  { return nil }
func (m *mockBot) Close() error { return nil }
func (m *mockBot) Ready() bool  { return true }

type mockUseCase struct {
	gotScope model.Scope
	gotInput trigger.TriggerInput
	err      error
}

func (m *mockUseCase) Trigger(ctx context.Context, sc model.Scope, input trigger.TriggerInput) (trigger.TriggerOutput, error) {
	m.gotScope, m.gotInput = sc, input
	if m.err != nil {
		return trigger.TriggerOutput{}, m.err
	}
	return trigger.TriggerOutput{Target: trigger.DefaultTargets[0], RequestedBy: sc.Username}, nil
}

func (m *mockUseCase) Targets() []trigger.Target { return trigger.DefaultTargets }

func TestRegister(t *testing.T) {
	bot := &mockBot{}
	h := New(pkgLog.NewNop(), &mockUseCase{}, bot)

	if err := h.Register(context.Background()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if bot.registered == nil || bot.registered.Name != CommandName {
		t.Fatalf("command not registered: %+v", bot.registered)
	}
	opt := bot.registered.Options[0]
	if opt.Name != OptionName || !opt.Required || len(opt.Choices) != len(trigger.DefaultTargets) {
		t.Errorf("unexpected option: %+v", opt)
	}
	if opt.Choices[0].Name != "Backend" || opt.Choices[0].Value != "backend" {
		t.Errorf("unexpected choice: %+v", opt.Choices[0])
	}
	if _, ok := bot.handlers[CommandName]; !ok {
		t.Errorf("handler not routed")
	}
}

func TestHandleBuild(t *testing.T) {
	ic := &pkgDiscord.Interaction{
		ID:       "i-1",
		UserID:   "u-1",
		Username: "mwong",
		Options:  map[string]string{OptionName: "backend"},
	}

	tests := []struct {
		name      string
		ucErr     error
		wantTitle string
	}{
		{"success", nil, trigger.TitleTriggered},
		{"failure", fmt.Errorf("%w: mobile", trigger.ErrUnknownTarget), trigger.TitleFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot := &mockBot{}
			uc := &mockUseCase{err: tt.ucErr}
			h := New(pkgLog.NewNop(), uc, bot)

			h.HandleBuild(context.Background(), ic)

			if bot.deferred != 1 {
				t.Errorf("expected deferral before triggering")
			}
			if uc.gotInput.Target != "backend" || uc.gotScope.Username != "mwong" {
				t.Errorf("use case got %+v / %+v", uc.gotInput, uc.gotScope)
			}
			if len(bot.edited) != 1 || bot.edited[0].Title != tt.wantTitle {
				t.Errorf("edited = %+v", bot.edited)
			}
		})
	}
}

func TestHandleBuild_DeferFails(t *testing.T) {
	bot := &mockBot{deferErr: errors.New("unknown interaction")}
	uc := &mockUseCase{}
	h := New(pkgLog.NewNop(), uc, bot)

	h.HandleBuild(context.Background(), &pkgDiscord.Interaction{Options: map[string]string{}})

	if uc.gotInput.Target != "" || len(bot.edited) != 0 {
		t.Errorf("nothing should run after a failed deferral")
	}
}
