// SPDX-License-Identifier: Unlicense OR MIT

/*
Package router routes input events through the widget tree and tracks
the input state of a window: hover, press grabs, keyboard focus,
pop-ups, timers and the messages widgets send to their ancestors.

A State never holds widgets, only their ids. Every operation that
reaches a widget takes the root of the tree and walks it from the
root, so the tree may change freely between calls.

# Dispatch

Send delivers an event to the widget with a given id. The walk from
the root offers the event to each ancestor implementing EventStealer
on the way down, then to the target's HandleEvent. On the way back
up, ancestors implementing UnusedHandler see the event while it
remains unused, and ancestors implementing MessageHandler are called
while the message stack is not empty. Messages are pushed with
Cx.Push and retrieved with TryPop.

# Pop-ups

While pop-ups are open, presses go to the top pop-up first, or to its
parent when the press is outside the pop-up. An unused press closes
the top pop-up and is delivered again, so one click can dismiss a
menu and activate the widget beneath it. Pop-ups close innermost
first.

# Timers

RequestTimer schedules an event.Timer for a widget. A second request
for the same widget and handle keeps the earliest or the latest time
according to the handle. Frame timers fire once on the next call to
Update.
*/
package router
