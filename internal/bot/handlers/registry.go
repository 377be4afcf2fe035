package handlers

import (
	tgbot "github.com/go-telegram/bot"
)

// RegisteredHandler represents a command handler with its match rules and middleware.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	Handler     tgbot.HandlerFunc
	Middleware  []tgbot.Middleware
	MatchType   tgbot.MatchType
}

// RegisterAllCommands initializes and returns a map of all available bot
// commands. Everything except /start is admin-only.
func RegisterAllCommands(deps HandlerDeps) map[string]RegisteredHandler {
	handlers := make(map[string]RegisteredHandler)

	handlers["/start"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "start",
		Handler:     NewStartHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
	}

	adminMiddleware := []tgbot.Middleware{AdminOnly(deps)}

	handlers["/admin"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "admin",
		Handler:     NewAdminPanelHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Middleware:  adminMiddleware,
	}
	handlers["/add_daily"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "add_daily",
		Handler:     NewAddTaskHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Middleware:  adminMiddleware,
	}
	handlers["/delete_daily"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "delete_daily",
		Handler:     NewDeleteTaskHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Middleware:  adminMiddleware,
	}
	handlers["/time"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "time",
		Handler:     NewDeliveryTimeHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Middleware:  adminMiddleware,
	}
	handlers["/view_all"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "view_all",
		Handler:     NewViewAllHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Middleware:  adminMiddleware,
	}
	handlers["/test"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "test",
		Handler:     NewTestSendHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Middleware:  adminMiddleware,
	}

	// Reply keyboard buttons sent by /start. Buttons expose the task list,
	// so they get the same single-admin gate as the commands.
	handlers[ButtonToday] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     ButtonToday,
		Handler:     NewDigestPreviewHandler(deps, false),
		MatchType:   tgbot.MatchTypeExact,
		Middleware:  adminMiddleware,
	}
	handlers[ButtonTomorrow] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     ButtonTomorrow,
		Handler:     NewDigestPreviewHandler(deps, true),
		MatchType:   tgbot.MatchTypeExact,
		Middleware:  adminMiddleware,
	}
	handlers[ButtonAdminPanel] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     ButtonAdminPanel,
		Handler:     NewAdminPanelHandler(deps),
		MatchType:   tgbot.MatchTypeExact,
		Middleware:  adminMiddleware,
	}

	return handlers
}
