package callbacks

import "go.uber.org/zap"

// ZapLogFunction returns a LogCallback writing to logger. Rare events are
// logged at info level and everything chattier at debug level.
func ZapLogFunction(logger *zap.SugaredLogger) LogCallback {
	return func(session *Session, priority int, message string, userdata any) {
		switch {
		case priority <= LogNoLog:
			return
		case priority == LogRare:
			logger.Infow(message, "priority", priority)
		default:
			logger.Debugw(message, "priority", priority)
		}
	}
}
