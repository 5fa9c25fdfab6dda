package handler

import (
	"errors"
	"strings"
	"unicode"

	"wordsync/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// wordButtonUnique is the shared unique of every per-word button
const wordButtonUnique = "word"

var errNoWordID = errors.New("word id is required")

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseWordArg extracts a single word id from a command payload
func parseWordArg(payload string) (domain.WordID, error) {
	fields := strings.Fields(cleanCallbackData(payload))
	if len(fields) != 1 {
		return "", errNoWordID
	}
	return domain.WordID(fields[0]), nil
}

// wordCallbackData encodes an action on id as button data
func wordCallbackData(action string, id domain.WordID) string {
	return action + ":" + string(id)
}

// parseWordCallback decodes button data built by wordCallbackData.
// Data that still carries the button unique is accepted too.
func parseWordCallback(data string) (wordAction, domain.WordID, error) {
	data = cleanCallbackData(data)
	data = strings.TrimPrefix(data, wordButtonUnique+"|")

	name, rest, found := strings.Cut(data, ":")
	if !found {
		return wordAction{}, "", errors.New("malformed word callback")
	}

	action, ok := wordActions[name]
	if !ok {
		return wordAction{}, "", errors.New("unknown word action: " + name)
	}

	id, err := parseWordArg(rest)
	if err != nil {
		return wordAction{}, "", err
	}
	return action, id, nil
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Same text as before, typically a double tap
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Static buttons whose unique did not come through
	if callback.Unique == "" {
		switch data {
		case btnLists.Unique:
			return h.handleLists(c)
		case btnVocab.Unique:
			return h.handleVocabularies(c)
		case btnRefresh.Unique:
			return h.handleRefresh(c)
		case btnMainMenu.Unique:
			return h.handleStart(c)
		}
	}

	if callback.Unique == wordButtonUnique || strings.HasPrefix(data, wordButtonUnique+"|") {
		return h.handleWordCallback(c, data)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleWordCallback runs a per-word button action
func (h *Handler) handleWordCallback(c tele.Context, data string) error {
	action, id, err := parseWordCallback(data)
	if err != nil {
		h.logger.Warn("Bad word callback", zap.String("data", data), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Неизвестная кнопка"})
	}

	text, ok := h.runWordAction(c.Sender().ID, action, id)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return h.reply(c, text, wordMarkup(id))
}
