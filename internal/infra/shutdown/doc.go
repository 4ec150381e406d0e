// Package shutdown provides graceful shutdown for long-running commands.
//
// Usage:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	h.OnShutdown(func(ctx context.Context) error { return cleanup(ctx) })
//	err := h.Run(ctx, func(ctx context.Context) error {
//		return work(ctx) // returns once ctx is cancelled by SIGINT/SIGTERM
//	})
package shutdown
