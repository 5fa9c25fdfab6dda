package handler

import (
	"context"
	"fmt"
	"strings"

	"wordsync/internal/domain"
	"wordsync/internal/gateway"
	"wordsync/internal/store"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// wordAction runs one store operation and reports whether it took effect
type wordAction struct {
	name    string
	run     func(st *store.Store, ctx context.Context, tokens gateway.TokenFunc, id domain.WordID)
	applied func(st *store.Store, id domain.WordID, starredBefore bool) bool
	success string
}

var (
	actionStar = wordAction{
		name: "star",
		run:  (*store.Store).ToggleStarred,
		applied: func(st *store.Store, id domain.WordID, starredBefore bool) bool {
			return st.IsStarred(id) != starredBefore
		},
		success: "⭐ Избранное обновлено",
	}
	actionBury = wordAction{
		name: "bury",
		run:  (*store.Store).MoveToGraveyard,
		applied: func(st *store.Store, id domain.WordID, _ bool) bool {
			return st.InGraveyard(id)
		},
		success: "🪦 Слово отправлено на кладбище",
	}
	actionDelete = wordAction{
		name: "delete",
		run:  (*store.Store).DeletePermanently,
		applied: func(st *store.Store, id domain.WordID, _ bool) bool {
			return !st.InGraveyard(id) && !st.IsStarred(id) && !st.IsWrongAnswer(id)
		},
		success: "🗑 Слово удалено",
	}
	actionWrong = wordAction{
		name: "wrong",
		run:  (*store.Store).AddWrongAnswer,
		applied: func(st *store.Store, id domain.WordID, _ bool) bool {
			return st.IsWrongAnswer(id)
		},
		success: "❌ Слово добавлено в ошибки",
	}
)

// wordActions maps callback prefixes to actions
var wordActions = map[string]wordAction{
	actionStar.name:   actionStar,
	actionBury.name:   actionBury,
	actionDelete.name: actionDelete,
	actionWrong.name:  actionWrong,
}

func (h *Handler) handleStar(c tele.Context) error { return h.handleWordCommand(c, actionStar) }
func (h *Handler) handleBury(c tele.Context) error { return h.handleWordCommand(c, actionBury) }
func (h *Handler) handleDelete(c tele.Context) error { return h.handleWordCommand(c, actionDelete) }
func (h *Handler) handleWrong(c tele.Context) error { return h.handleWordCommand(c, actionWrong) }

// handleWordCommand handles /star, /bury, /delete and /wrong
func (h *Handler) handleWordCommand(c tele.Context, action wordAction) error {
	id, err := parseWordArg(c.Message().Payload)
	if err != nil {
		return c.Send(fmt.Sprintf("Использование: /%s <id слова>", action.name))
	}

	text, ok := h.runWordAction(c.Sender().ID, action, id)
	if !ok {
		return c.Send(text)
	}
	return c.Send(text, wordMarkup(id))
}

// runWordAction applies action to id and returns the reply text
func (h *Handler) runWordAction(userID int64, action wordAction, id domain.WordID) (string, bool) {
	ctx, cancel := h.requestContext()
	defer cancel()

	st := h.syncService.Store(userID)
	starredBefore := st.IsStarred(id)

	action.run(st, ctx, h.authService.TokenFunc(userID), id)

	if !action.applied(st, id, starredBefore) {
		h.logger.Warn("Word action did not apply",
			zap.String("action", action.name),
			zap.String("word_id", string(id)),
			zap.Int64("user_id", userID),
		)
		return "⚠️ Не удалось сохранить изменение, попробуй ещё раз.", false
	}

	h.logger.Info("Word action applied",
		zap.String("action", action.name),
		zap.String("word_id", string(id)),
		zap.Int64("user_id", userID),
	)
	return fmt.Sprintf("%s: %s", action.success, id), true
}

// handleLists shows the user's word lists, loading them first if needed
func (h *Handler) handleLists(c tele.Context) error {
	userID := c.Sender().ID

	ctx, cancel := h.requestContext()
	defer cancel()

	st := h.syncService.Store(userID)
	st.LoadAll(ctx, h.authService.TokenFunc(userID))

	if !st.Loaded() {
		return h.reply(c, "Не удалось загрузить списки. Попробуй позже.", mainMenuMarkup())
	}
	return h.reply(c, formatLists(st.Snapshot()), mainMenuMarkup())
}

// handleRefresh discards local state and loads everything again
func (h *Handler) handleRefresh(c tele.Context) error {
	userID := c.Sender().ID

	st := h.syncService.Store(userID)
	st.Reset()

	return h.handleLists(c)
}

// handleVocabularies re-fetches and shows the user's vocabularies
func (h *Handler) handleVocabularies(c tele.Context) error {
	userID := c.Sender().ID

	ctx, cancel := h.requestContext()
	defer cancel()

	st := h.syncService.Store(userID)
	st.RefreshVocabularies(ctx, h.authService.TokenFunc(userID))

	return h.reply(c, formatVocabularies(st.Vocabularies()), mainMenuMarkup())
}

// reply edits the message for callbacks and sends a new one for commands
func (h *Handler) reply(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// formatLists renders a snapshot as message text
func formatLists(snap store.Snapshot) string {
	var b strings.Builder

	writeList := func(title string, ids []domain.WordID) {
		fmt.Fprintf(&b, "%s (%d)\n", title, len(ids))
		if len(ids) == 0 {
			b.WriteString("  пусто\n")
		}
		for _, id := range ids {
			fmt.Fprintf(&b, "  • %s\n", id)
		}
		b.WriteString("\n")
	}

	writeList("⭐ Избранное", snap.Starred)
	writeList("🪦 Кладбище", snap.Graveyard)
	writeList("❌ Ошибки", snap.WrongAnswers)

	return strings.TrimRight(b.String(), "\n")
}

// formatVocabularies renders vocabulary records as message text
func formatVocabularies(vocabularies []domain.VocabularyRef) string {
	if len(vocabularies) == 0 {
		return "📖 Словарей пока нет"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📖 Словари (%d):\n\n", len(vocabularies))
	for i, v := range vocabularies {
		title := v.Title()
		if title == "" {
			title = "без названия"
		}
		if id := v.ID(); id != "" {
			fmt.Fprintf(&b, "%d. %s [%s]\n", i+1, title, id)
		} else {
			fmt.Fprintf(&b, "%d. %s\n", i+1, title)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// wordMarkup returns per-word action buttons
func wordMarkup(id domain.WordID) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("⭐", wordButtonUnique, wordCallbackData(actionStar.name, id)),
			markup.Data("🪦", wordButtonUnique, wordCallbackData(actionBury.name, id)),
			markup.Data("🗑", wordButtonUnique, wordCallbackData(actionDelete.name, id)),
		),
		markup.Row(btnLists, btnMainMenu),
	)
	return markup
}
