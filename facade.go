package roggle

// Facade helpers using the global Singleton logger.
// Usage: roggle.Info("server started")

func Trace(message any, opts ...EventOption) error { return L().Trace(message, opts...) }
func Debug(message any, opts ...EventOption) error { return L().Debug(message, opts...) }
func Info(message any, opts ...EventOption) error  { return L().Info(message, opts...) }
func Warn(message any, opts ...EventOption) error  { return L().Warn(message, opts...) }
func Error(message any, opts ...EventOption) error { return L().Error(message, opts...) }
func Fatal(message any, opts ...EventOption) error { return L().Fatal(message, opts...) }
