// Package reminder delivers the monthly inspiration email: one message per
// account per calendar month, spotlighting a random board section alongside a
// random verse.
package reminder

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"math/rand"
	"net/mail"
	"sync"
	"time"

	"github.com/vborges/futura/internal/model"
	"github.com/vborges/futura/internal/store"
)

// Subject is the fixed subject line of every reminder email.
const Subject = "Sua Inspiração Mensal para a Realidade Futura ✨"

// Sender delivers one HTML email. Satisfied by the Resend client.
type Sender interface {
	Send(ctx context.Context, toEmail, subject, htmlBody string) error
	Configured() bool
}

// Scheduler periodically checks which accounts are due their monthly email.
type Scheduler struct {
	mu        sync.RWMutex
	sender    Sender
	identity  *store.IdentityStore
	boards    *store.BoardStore
	reminders *store.ReminderStore
	logger    *slog.Logger
	interval  time.Duration
	now       func() time.Time
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewScheduler creates a reminder scheduler. The check runs hourly; the
// per-month send log keeps repeated checks idempotent.
func NewScheduler(sender Sender, identity *store.IdentityStore, boards *store.BoardStore, reminders *store.ReminderStore, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		sender:    sender,
		identity:  identity,
		boards:    boards,
		reminders: reminders,
		logger:    logger,
		interval:  time.Hour,
		now:       time.Now,
	}
}

// Start begins the scheduler loop.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Tick(ctx)
			}
		}
	}()
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	s.mu.RLock()
	cancel := s.cancel
	done := s.done
	s.mu.RUnlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Tick runs one scheduling pass. Exposed so a save of reminder settings can
// trigger an immediate check without waiting for the next interval.
func (s *Scheduler) Tick(ctx context.Context) {
	if !s.sender.Configured() {
		return
	}

	accounts, err := s.identity.Emails()
	if err != nil {
		s.logger.Error("reminder scheduler: list accounts", "error", err)
		return
	}

	month := s.now().Format("2006-01")
	for _, account := range accounts {
		s.checkAccount(ctx, account, month)
	}
}

func (s *Scheduler) checkAccount(ctx context.Context, account, month string) {
	settings, err := s.reminders.Get(account)
	if err != nil {
		s.logger.Error("reminder scheduler: load settings", "account", account, "error", err)
		return
	}
	if !settings.Active {
		return
	}
	if _, err := mail.ParseAddress(settings.Email); err != nil {
		s.logger.Warn("reminder scheduler: invalid destination", "account", account)
		return
	}

	sent, err := s.reminders.WasSent(account, month)
	if err != nil || sent {
		return
	}

	// Load without materializing: an account that never opened its board
	// has nothing to be reminded about.
	b, ok, err := s.boards.Load(account)
	if err != nil || !ok {
		return
	}

	section, verse, ok := PickInspiration(b)
	if !ok {
		return
	}

	if err := s.sender.Send(ctx, settings.Email, Subject, ComposeHTML(section, verse)); err != nil {
		s.logger.Error("reminder scheduler: send", "account", account, "error", err)
		return
	}
	if err := s.reminders.RecordSent(account, month); err != nil {
		s.logger.Error("reminder scheduler: record sent", "account", account, "error", err)
	}
	s.logger.Info("monthly reminder sent", "account", account, "month", month)
}

// PickInspiration chooses a random non-empty section and a random verse.
// Boards with no populated sections yield ok=false.
func PickInspiration(b model.Board) (sectionName string, v Verse, ok bool) {
	var candidates []string
	for _, sec := range b.Sections {
		if len(sec.Items) > 0 {
			candidates = append(candidates, sec.Name)
		}
	}
	if len(candidates) == 0 {
		return "", Verse{}, false
	}
	return candidates[rand.Intn(len(candidates))], verses[rand.Intn(len(verses))], true
}

// ComposeHTML renders the reminder email body.
func ComposeHTML(sectionName string, v Verse) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif, 'Apple Color Emoji', 'Segoe UI Emoji', 'Segoe UI Symbol'; line-height: 1.6; color: #333; background-color: #f4f4f7; }
  .container { max-width: 600px; margin: 20px auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px; background-color: #ffffff; }
  .header { font-size: 24px; font-weight: bold; color: #4F46E5; text-align: center; }
  .section { margin: 20px 0; padding: 15px; background-color: #f9fafb; border-left: 4px solid #4F46E5; }
  .verse { margin: 20px 0; padding: 15px; background-color: #fefce8; border-left: 4px solid #f59e0b; }
  .footer { text-align: center; font-size: 12px; color: #888; margin-top: 20px; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">%s</div>
    <p>Olá!</p>
    <p>Este é o seu lembrete mensal para focar na sua visão e continuar caminhando em direção aos seus sonhos.</p>
    <div class="section">
      <p>Este mês, que tal dedicar uma atenção especial à sua área de:</p>
      <h2 style="font-size: 20px; margin-top: 5px;">🎯 <strong>%s</strong></h2>
    </div>
    <div class="verse">
      <p>Que este versículo te inspire na sua jornada:</p>
      <p><em>"%s"</em></p>
      <p style="text-align: right;"><strong>- %s</strong></p>
    </div>
    <div class="footer">Realidade Futura</div>
  </div>
</body>
</html>`, Subject, html.EscapeString(sectionName), html.EscapeString(v.Quote), html.EscapeString(v.Reference))
}
