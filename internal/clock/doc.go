// Package clock provides frame driven periodic timers.
//
// A [Scheduler] has no goroutine of its own. The frame loop that owns it calls
// [Scheduler.Advance] with the elapsed frame time and due callbacks run inline,
// on the same loop that steps and draws the page.
package clock
