package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const mainMenuText = "🏠 Главное меню\n\nВыберите действие:"

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	loggedIn, err := h.authService.IsLoggedIn(userID)
	if err != nil {
		h.logger.Error("Failed to check session", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	if !loggedIn {
		return c.Send("Привет! Отправь /login <токен>, чтобы подключить свои списки слов.")
	}

	if c.Callback() != nil {
		if err := c.Edit(mainMenuText, mainMenuMarkup()); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(mainMenuText, mainMenuMarkup())
		}
		return c.Respond()
	}
	return c.Send(mainMenuText, mainMenuMarkup())
}

// handleLogin stores the API token and loads the user's lists
func (h *Handler) handleLogin(c tele.Context) error {
	userID := c.Sender().ID
	token := strings.TrimSpace(c.Message().Payload)

	if token == "" {
		return c.Send("Использование: /login <токен>")
	}

	// A new token means a new account; drop whatever was loaded before
	h.syncService.Drop(userID)

	if err := h.authService.Login(userID, token); err != nil {
		h.logger.Error("Failed to save token", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Не удалось сохранить токен. Попробуйте ещё раз.")
	}

	// The token is a secret; do not leave it in the chat history
	if err := c.Delete(); err != nil {
		h.logger.Debug("Failed to delete login message", zap.Error(err))
	}

	h.logger.Info("User logged in", zap.Int64("user_id", userID))

	ctx, cancel := h.requestContext()
	defer cancel()

	st := h.syncService.Store(userID)
	st.LoadAll(ctx, h.authService.TokenFunc(userID))

	if !st.Loaded() {
		return c.Send("✅ Токен сохранён, но списки загрузить не удалось. Попробуй /lists позже.", mainMenuMarkup())
	}
	return c.Send("✅ Токен сохранён!\n\n"+formatLists(st.Snapshot()), mainMenuMarkup())
}

// handleLogout forgets the token and everything loaded with it
func (h *Handler) handleLogout(c tele.Context) error {
	userID := c.Sender().ID

	h.syncService.Drop(userID)

	if err := h.authService.Logout(userID); err != nil {
		h.logger.Error("Failed to delete token", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	h.logger.Info("User logged out", zap.Int64("user_id", userID))
	return c.Send("👋 Токен удалён. Отправь /login <токен>, чтобы войти снова.")
}
