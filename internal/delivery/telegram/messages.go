// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/sorting-hat-bot/internal/domain/entities"
)

// Error and notice messages.
const (
	msgInternalError   = "Something went wrong. Please try again later."
	msgUnknownCommand  = "Unknown command. Use /quiz to find your house or /help to see what I can do."
	msgNoResultYet     = "You have no result yet. Use /quiz to get sorted!"
	msgSessionExpired  = "This quiz has expired. Starting a new one is one tap away."
	msgAlreadyAnswered = "You already answered this question."
	msgInvalidAnswer   = "That answer is not available."
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// welcomeMarkdownV2 builds the /start message.
func welcomeMarkdownV2() string {
	var sb strings.Builder

	sb.WriteString(bold("🎩 The Sorting Hat"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Answer five quick questions and I will tell you which wizard house you belong to: "))
	sb.WriteString(bold("Gryffindor"))
	sb.WriteString(md(", "))
	sb.WriteString(bold("Hufflepuff"))
	sb.WriteString(md(", "))
	sb.WriteString(bold("Ravenclaw"))
	sb.WriteString(md(" or "))
	sb.WriteString(bold("Slytherin"))
	sb.WriteString(md("."))
	sb.WriteString("\n\n")
	sb.WriteString(md("Press the button below or send /quiz to begin."))

	return sb.String()
}

// helpMarkdownV2 builds the /help message.
func helpMarkdownV2() string {
	lines := []string{
		bold("Commands"),
		"",
		md("/quiz — start a new quiz"),
		md("/result — show your last result"),
		md("/help — this message"),
		"",
		md("There are no right or wrong answers. Pick what feels most like you."),
	}
	return strings.Join(lines, "\n")
}

// formatQuizQuestion formats a quiz question (MarkdownV2 safe for question text).
func formatQuizQuestion(q *entities.Question, currentNum, totalQuestions int) string {
	return fmt.Sprintf(
		"%s\n\n%s",
		md(fmt.Sprintf("Question %d/%d", currentNum, totalQuestions)),
		bold(q.Prompt),
	)
}

// formatAnsweredQuestion replaces the last question once it is answered.
func formatAnsweredQuestion(q *entities.Question, chosen entities.Option) string {
	return fmt.Sprintf(
		"%s\n\n%s %s",
		bold(q.Prompt),
		md("✔️"),
		italic(chosen.Text),
	)
}

// formatQuizResult formats the final house and its description.
func formatQuizResult(winner entities.House, personality string) string {
	return fmt.Sprintf(
		"%s\n\n%s",
		bold(fmt.Sprintf("You belong to: %s!", winner)),
		md(personality),
	)
}

// shareText is the message attached to a shared result.
func shareText(winner entities.House) string {
	return fmt.Sprintf("I got %s! Which wizard house do you belong to?", winner)
}
