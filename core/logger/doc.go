// Package logger provides slog attribute helpers shared by the menu pool and
// the HTTP middleware. Helpers return an empty slog.Attr for zero values, so
// call sites never need nil or empty-string checks:
//
//	log.LogAttrs(ctx, slog.LevelInfo, "menu built",
//		logger.Namespace(ns),
//		logger.Count("nodes", len(nodes)),
//		logger.Elapsed(start),
//		logger.Error(err), // no-op when err is nil
//	)
package logger
