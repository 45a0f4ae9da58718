// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"date_dimension/internal/domain/calendar"
	"date_dimension/internal/domain/datetable"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// DayDescriber answers per-day questions; app.DateTableService implements it.
type DayDescriber interface {
	Describe(ctx context.Context, d calendar.Date) (*datetable.Row, error)
	BusinessDaysInMonth(ctx context.Context, d calendar.Date) (int, error)
}

// CommandHandlers builds replies for the public bot commands.
type CommandHandlers struct {
	describer DayDescriber
	now       func() time.Time
}

func NewCommandHandlers(describer DayDescriber) *CommandHandlers {
	return &CommandHandlers{describer: describer, now: time.Now}
}

// parseDateArg parses args[i] as YYYY-MM-DD, or returns today when absent.
func (h *CommandHandlers) parseDateArg(args []string, i int) (calendar.Date, error) {
	if len(args) <= i {
		return calendar.FromTime(h.now()), nil
	}
	return calendar.Parse(args[i])
}

func (h *CommandHandlers) helpReply(isAdmin bool) string {
	var helpText strings.Builder
	helpText.WriteString("Available commands:\n\n")
	helpText.WriteString("/day [YYYY-MM-DD] - holiday, week ending and business day facts for a date.\n")
	helpText.WriteString("/week_ending [YYYY-MM-DD] [Mon..Sun] - end of the week containing a date (default Sat).\n")
	helpText.WriteString("/business_days [YYYY-MM-DD] - business days in the month of a date.\n")
	if isAdmin {
		helpText.WriteString("\nAdmin commands:\n\n")
		helpText.WriteString("/add_holiday <YYYY-MM-DD> <name> - add a one-off holiday.\n")
		helpText.WriteString("/remove_holiday <YYYY-MM-DD> - remove a one-off holiday.\n")
		helpText.WriteString("/list_holidays - list one-off holidays.\n")
		helpText.WriteString("/refresh - rebuild and reload the date table now.\n")
	}
	helpText.WriteString("/help - show this message.")
	return helpText.String()
}

func (h *CommandHandlers) dayReply(ctx context.Context, args []string) (string, error) {
	d, err := h.parseDateArg(args, 0)
	if err != nil {
		return "Invalid date. Use: /day [YYYY-MM-DD]", nil
	}
	row, err := h.describer.Describe(ctx, d)
	if err != nil {
		return "", fmt.Errorf("failed to describe %s: %w", d, err)
	}

	var reply strings.Builder
	reply.WriteString(fmt.Sprintf("%s (%s), %s %d\n", row.Date, row.DayOfWeek, row.Quarter, row.Year))
	if row.Holiday.Valid {
		reply.WriteString(fmt.Sprintf("Holiday: %s\n", row.Holiday.String))
	}
	reply.WriteString(fmt.Sprintf("Week ending: %s (ISO week %d)\n", row.WeekEnding, row.WeekNum))
	if row.IsWorkday {
		reply.WriteString(fmt.Sprintf("Business day %d of %d this month.", row.BusinessDayOfMonth, row.BusinessDaysInMonth))
	} else {
		reply.WriteString(fmt.Sprintf("Not a business day. %d business days this month.", row.BusinessDaysInMonth))
	}
	return reply.String(), nil
}

func (h *CommandHandlers) weekEndingReply(args []string) string {
	const usage = "Use: /week_ending [YYYY-MM-DD] [Mon..Sun]"
	d, err := h.parseDateArg(args, 0)
	if err != nil {
		return "Invalid date. " + usage
	}
	token := calendar.DefaultWeekEnd
	if len(args) > 1 {
		token = args[1]
	}
	end, err := calendar.WeekEnding(d, token)
	if errors.Is(err, calendar.ErrInvalidWeekdayDesignator) {
		return fmt.Sprintf("Unknown weekday %q. %s", token, usage)
	}
	return fmt.Sprintf("Week containing %s ends on %s (%s).", d, end, end.Weekday())
}

func (h *CommandHandlers) businessDaysReply(ctx context.Context, args []string) (string, error) {
	d, err := h.parseDateArg(args, 0)
	if err != nil {
		return "Invalid date. Use: /business_days [YYYY-MM-DD]", nil
	}
	n, err := h.describer.BusinessDaysInMonth(ctx, d)
	if err != nil {
		return "", fmt.Errorf("failed to count business days: %w", err)
	}
	return fmt.Sprintf("%s %d has %d business days.", d.Month, d.Year, n), nil
}

// RegisterBotCommands wires the public commands onto the bot.
func RegisterBotCommands(
	ctx context.Context,
	b *telebot.Bot,
	h *CommandHandlers,
	isAdmin func(int64) bool,
	baseLogger *logrus.Entry, // For contextual logging
) {
	commandLogger := baseLogger.WithField("handler_group", "public")

	b.Handle("/start", func(c telebot.Context) error {
		commandLogger.WithField("command", "/start").WithField("sender_id", c.Sender().ID).Info("Processing /start command")
		return c.Send("Hello! I answer calendar questions: holidays, week endings and business days. Use /help for the list of commands.")
	})

	b.Handle("/help", func(c telebot.Context) error {
		senderID := c.Sender().ID
		commandLogger.WithField("command", "/help").WithField("sender_id", senderID).Info("Processing /help command")
		return c.Send(h.helpReply(isAdmin(senderID)))
	})

	b.Handle("/day", func(c telebot.Context) error {
		logCtx := commandLogger.WithField("command", "/day").WithField("sender_id", c.Sender().ID)
		reply, err := h.dayReply(ctx, c.Args())
		if err != nil {
			logCtx.WithError(err).Error("Failed to answer /day")
			return c.Send("Something went wrong. Please try again later.")
		}
		return c.Send(reply)
	})

	b.Handle("/week_ending", func(c telebot.Context) error {
		return c.Send(h.weekEndingReply(c.Args()))
	})

	b.Handle("/business_days", func(c telebot.Context) error {
		logCtx := commandLogger.WithField("command", "/business_days").WithField("sender_id", c.Sender().ID)
		reply, err := h.businessDaysReply(ctx, c.Args())
		if err != nil {
			logCtx.WithError(err).Error("Failed to answer /business_days")
			return c.Send("Something went wrong. Please try again later.")
		}
		return c.Send(reply)
	})
}
