package tui

import "stock-chat/internal/logger"

var log = logger.Named("tui")
