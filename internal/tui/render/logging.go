package render

import "stock-chat/internal/logger"

var log = logger.Named("render")
