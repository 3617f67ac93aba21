// Package bot wires the telegram command surface to the attendance domain.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/imanbakhtiari/staff-attendance-telegramBot/internal/domain"
	"github.com/imanbakhtiari/staff-attendance-telegramBot/internal/observability"
	"github.com/imanbakhtiari/staff-attendance-telegramBot/internal/report"
)

// Sender is the outbound half of the telegram client. *tgbotapi.BotAPI
// satisfies it; tests substitute a capture.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Handler dispatches one command per update. Handlers hold no per-user
// state and are safe to invoke for interleaved users.
type Handler struct {
	sender  Sender
	service *domain.Service
}

// NewHandler constructs a Handler.
func NewHandler(sender Sender, service *domain.Service) *Handler {
	return &Handler{sender: sender, service: service}
}

// Run drives the long-poll receive-dispatch loop until ctx is cancelled.
func Run(ctx context.Context, api *tgbotapi.BotAPI, h *Handler) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			h.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate routes a single inbound update to its command handler.
func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || !msg.IsCommand() || msg.From == nil {
		return
	}

	switch msg.Command() {
	case "start":
		h.reply(msg.Chat.ID, msgStart)
		observability.RecordCommand("start", "ok")
	case "help":
		h.reply(msg.Chat.ID, msgHelp)
		observability.RecordCommand("help", "ok")
	case "checkin":
		h.handleCheckIn(ctx, msg)
	case "checkout":
		h.handleCheckOut(ctx, msg)
	case "report":
		h.handleReport(ctx, msg)
	default:
		h.reply(msg.Chat.ID, msgUnknownCommand)
		observability.RecordCommand("unknown", "ok")
	}
}

func (h *Handler) handleCheckIn(ctx context.Context, msg *tgbotapi.Message) {
	mark, err := h.service.CheckIn(ctx, msg.From.ID, msg.From.UserName)
	switch {
	case errors.Is(err, domain.ErrAlreadyCheckedIn):
		h.reply(msg.Chat.ID, msgAlreadyCheckedIn)
		observability.RecordCommand("checkin", "rejected")
	case err != nil:
		log.Printf("checkin failed for user %d: %v", msg.From.ID, err)
		h.reply(msg.Chat.ID, msgStoreError)
		observability.RecordCommand("checkin", "error")
	default:
		log.Printf("stored check-in id=%d user=%d date=%s time=%s",
			mark.RecordID, msg.From.ID, mark.JalaliDate, mark.Clock)
		h.reply(msg.Chat.ID, fmt.Sprintf(msgCheckedIn, mark.JalaliDate, mark.Clock))
		observability.RecordCheckIn(time.Now())
		observability.RecordCommand("checkin", "ok")
	}
}

func (h *Handler) handleCheckOut(ctx context.Context, msg *tgbotapi.Message) {
	mark, err := h.service.CheckOut(ctx, msg.From.ID)
	switch {
	case errors.Is(err, domain.ErrNoOpenRecord):
		h.reply(msg.Chat.ID, msgNoOpenRecord)
		observability.RecordCommand("checkout", "rejected")
	case err != nil:
		log.Printf("checkout failed for user %d: %v", msg.From.ID, err)
		h.reply(msg.Chat.ID, msgStoreError)
		observability.RecordCommand("checkout", "error")
	default:
		h.reply(msg.Chat.ID, fmt.Sprintf(msgCheckedOut, mark.JalaliDate, mark.Clock))
		observability.RecordCommand("checkout", "ok")
	}
}

func (h *Handler) handleReport(ctx context.Context, msg *tgbotapi.Message) {
	records, period, err := h.service.MonthlyRecords(ctx, msg.From.ID)
	if err != nil {
		log.Printf("report query failed for user %d: %v", msg.From.ID, err)
		h.reply(msg.Chat.ID, msgStoreError)
		observability.RecordCommand("report", "error")
		return
	}
	if len(records) == 0 {
		h.reply(msg.Chat.ID, msgNoRecords)
		observability.RecordCommand("report", "empty")
		return
	}

	buf, err := report.Build(records)
	if err != nil {
		log.Printf("report build failed for user %d: %v", msg.From.ID, err)
		h.reply(msg.Chat.ID, msgReportError)
		observability.RecordCommand("report", "error")
		return
	}

	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{
		Name:  report.FileName(period.JalaliMonth, period.Year),
		Bytes: buf.Bytes(),
	})
	if _, err := h.sender.Send(doc); err != nil {
		log.Printf("report send failed for user %d: %v", msg.From.ID, err)
		observability.RecordCommand("report", "error")
		return
	}
	observability.RecordCommand("report", "ok")
}

func (h *Handler) reply(chatID int64, text string) {
	if _, err := h.sender.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("reply to chat %d failed: %v", chatID, err)
	}
}
