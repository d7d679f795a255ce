// Package logging provides structured logging for the extra-platforms CLI
// using slog.
//
// Text output goes through [Handler], which colors levels and keys on a
// terminal; JSON output uses slog's JSON handler. [MultiHandler] fans a
// record out to several handlers, which the CLI uses for --log-file.
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Format: logging.FormatText,
//		Color:  logging.ColorAuto,
//	})
//	ctx = logging.NewContext(ctx, logger)
//
// Use [ForTest] in tests so output lands in the test log, and [NewDiscard]
// when output should be suppressed.
package logging
