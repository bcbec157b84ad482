// Package logging provides structured logging for wannabe.
//
// It wraps a package-level zap logger. Logging is off unless a level is
// configured (config key log.level or WANNABE_LOG_LEVEL), and output goes
// to a file because the terminal is taken by the UI:
//
//	if err := logging.Initialize("debug", ""); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.Debug("transition",
//	    zap.String("intent", "navigate"),
//	    zap.String("to", "dashboard"),
//	)
package logging
