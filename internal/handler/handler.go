package handler

import (
	"context"
	"time"

	"wordsync/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// requestTimeout bounds a single command, including its remote calls
const requestTimeout = 30 * time.Second

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	syncService *service.SyncService
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	syncService *service.SyncService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		syncService: syncService,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/login", h.handleLogin)
	h.bot.Handle("/logout", h.handleLogout)
	h.bot.Handle("/lists", h.handleLists)
	h.bot.Handle("/vocab", h.handleVocabularies)
	h.bot.Handle("/star", h.handleStar)
	h.bot.Handle("/bury", h.handleBury)
	h.bot.Handle("/delete", h.handleDelete)
	h.bot.Handle("/wrong", h.handleWrong)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnLists, h.handleLists)
	h.bot.Handle(&btnVocab, h.handleVocabularies)
	h.bot.Handle(&btnRefresh, h.handleRefresh)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for per-word buttons
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

func (h *Handler) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// Inline keyboard buttons
var (
	btnLists = tele.Btn{
		Unique: "lists",
		Text:   "📚 Мои списки",
	}
	btnVocab = tele.Btn{
		Unique: "vocab",
		Text:   "📖 Словари",
	}
	btnRefresh = tele.Btn{
		Unique: "refresh",
		Text:   "🔄 Обновить",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Главное меню",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnLists),
		menu.Row(btnVocab),
		menu.Row(btnRefresh),
	)
	return menu
}
