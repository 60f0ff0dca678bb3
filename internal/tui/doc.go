// Package tui provides the terminal console for Threepio.
//
// MainWindow binds a session.Session to the terminal: a tick message
// advances the session on a fixed period, and the returned view is drawn
// as a header (elapsed time, observation progress), the strip chart and
// the speed selector. Key presses open the observation form, change the
// chart speed, clear the chart or switch to legacy styling.
//
// Usage:
//
//	s := session.New(src)
//	w := tui.NewMainWindow(ctx, s, tui.Options{TickRate: 10 * time.Millisecond})
//	program := tui.NewProgram(w)
//
//	// Push stylesheet reloads from another goroutine
//	program.Send(tui.StylesheetChangedMsg{Sheet: sheet})
//
//	_, err := program.Run()
package tui
