package middleware

import (
	"strings"

	"wordsync/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// publicCommands work without a stored token
var publicCommands = map[string]bool{
	"/start": true,
	"/login": true,
}

// AuthMiddleware creates authentication middleware
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Callback() == nil && isPublicCommand(c.Text()) {
				return next(c)
			}

			userID := c.Sender().ID

			loggedIn, err := authService.IsLoggedIn(userID)
			if err != nil {
				logger.Error("Failed to check session in middleware", zap.Error(err))
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}

			if !loggedIn {
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{Text: "Сначала войди через /login", ShowAlert: true})
				}
				return c.Send("Сначала отправь /login <токен>.")
			}

			return next(c)
		}
	}
}

// isPublicCommand reports whether text starts with a command open to everyone.
// Commands addressed to the bot as /cmd@botname are matched too.
func isPublicCommand(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	command, _, _ := strings.Cut(fields[0], "@")
	return publicCommands[command]
}
