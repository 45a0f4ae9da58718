package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"date_dimension/internal/app"
	"date_dimension/internal/domain/calendar"
	idb "date_dimension/internal/infra/database"
	"date_dimension/internal/infra/scheduler"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RefreshRunner triggers an immediate date table refresh. Implementations bound
// the run with their own timeout.
type RefreshRunner interface {
	RunOnce(ctx context.Context) error
}

const unauthorizedReply = "Error: you are not allowed to run this command."

// AdminHandlers builds replies for the admin-only commands.
type AdminHandlers struct {
	adminService *app.AdminService
	refresher    RefreshRunner
}

func NewAdminHandlers(adminService *app.AdminService, refresher RefreshRunner) *AdminHandlers {
	return &AdminHandlers{adminService: adminService, refresher: refresher}
}

func (h *AdminHandlers) addHolidayReply(ctx context.Context, senderID int64, args []string) (string, error) {
	// Expected format: /add_holiday <YYYY-MM-DD> <name...>
	if len(args) < 2 {
		return "Invalid command format. Use: /add_holiday <YYYY-MM-DD> <name>", nil
	}
	d, err := calendar.Parse(args[0])
	if err != nil {
		return fmt.Sprintf("Error: %v", err), nil
	}
	name := strings.Join(args[1:], " ")

	o, err := h.adminService.AddHoliday(ctx, senderID, d, name)
	switch {
	case err == nil:
		return fmt.Sprintf("Holiday %q added on %s. Run /refresh to update the table.", o.Name, o.Date), nil
	case errors.Is(err, app.ErrAdminNotAuthorized):
		return unauthorizedReply, nil
	case errors.Is(err, app.ErrHolidayAlreadyExists):
		return fmt.Sprintf("Error: a one-off holiday already exists on %s.", d), nil
	case errors.Is(err, app.ErrEmptyHolidayName):
		return "Error: holiday name cannot be empty.", nil
	default:
		return "", err
	}
}

func (h *AdminHandlers) removeHolidayReply(ctx context.Context, senderID int64, args []string) (string, error) {
	if len(args) != 1 {
		return "Invalid command format. Use: /remove_holiday <YYYY-MM-DD>", nil
	}
	d, err := calendar.Parse(args[0])
	if err != nil {
		return fmt.Sprintf("Error: %v", err), nil
	}

	err = h.adminService.RemoveHoliday(ctx, senderID, d)
	switch {
	case err == nil:
		return fmt.Sprintf("One-off holiday on %s removed. Run /refresh to update the table.", d), nil
	case errors.Is(err, app.ErrAdminNotAuthorized):
		return unauthorizedReply, nil
	case errors.Is(err, idb.ErrHolidayNotFound):
		return fmt.Sprintf("No one-off holiday found on %s.", d), nil
	default:
		return "", err
	}
}

func (h *AdminHandlers) listHolidaysReply(ctx context.Context, senderID int64) (string, error) {
	overrides, err := h.adminService.ListHolidays(ctx, senderID)
	if errors.Is(err, app.ErrAdminNotAuthorized) {
		return unauthorizedReply, nil
	}
	if err != nil {
		return "", err
	}
	if len(overrides) == 0 {
		return "No one-off holidays defined.", nil
	}

	var response strings.Builder
	response.WriteString("--- One-off holidays ---\n")
	for _, o := range overrides {
		response.WriteString(fmt.Sprintf("%s: %s\n", o.Date, o.Name))
	}
	return response.String(), nil
}

func (h *AdminHandlers) refreshReply(ctx context.Context, senderID int64) (string, error) {
	if !h.adminService.IsAdmin(senderID) {
		return unauthorizedReply, nil
	}
	err := h.refresher.RunOnce(ctx)
	if errors.Is(err, scheduler.ErrRefreshInProgress) {
		return "A refresh is already running. Try again in a few minutes.", nil
	}
	if err != nil {
		return "", err
	}
	return "Date table refreshed.", nil
}

// RegisterAdminHandlers registers handlers for admin commands.
func RegisterAdminHandlers(ctx context.Context, b *telebot.Bot, h *AdminHandlers, baseLogger *logrus.Entry) {
	handle := func(command string, reply func(c telebot.Context) (string, error)) {
		b.Handle(command, func(c telebot.Context) error {
			handlerLogger := baseLogger.WithFields(logrus.Fields{
				"handler":   command,
				"sender_id": c.Sender().ID,
			})
			handlerLogger.Info("Command received")

			text, err := reply(c)
			if err != nil {
				handlerLogger.WithError(err).Error("Command failed")
				return c.Send(fmt.Sprintf("An error occurred: %s", err.Error()))
			}
			return c.Send(text)
		})
	}

	handle("/add_holiday", func(c telebot.Context) (string, error) {
		return h.addHolidayReply(ctx, c.Sender().ID, c.Args())
	})
	handle("/remove_holiday", func(c telebot.Context) (string, error) {
		return h.removeHolidayReply(ctx, c.Sender().ID, c.Args())
	})
	handle("/list_holidays", func(c telebot.Context) (string, error) {
		return h.listHolidaysReply(ctx, c.Sender().ID)
	})
	handle("/refresh", func(c telebot.Context) (string, error) {
		return h.refreshReply(ctx, c.Sender().ID)
	})
}
