// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget defines the widget tree: how widgets are addressed, how
the tree is walked and the layout protocol between a widget and its
parent.

# Tree

Every widget implements Tile, usually by embedding a Core. A Tile
exposes its children by index; widgets never refer to their parent.
All state a widget needs from its ancestors is passed down during a
traversal.

# Ids

A configure pass assigns each widget an Id derived from its parent's
Id and its index, parents before children. Ids order so that a
widget can be found from the root in one step per level, without a
lookup table. See Id.

# Layout

Layout happens in two phases. First, SizeRules is called for the
horizontal axis, then for the vertical axis with the width fixed.
Then SetRect assigns the widget its rectangle, after which it may be
drawn. A widget calls these methods on its own children, through the
package functions of the same name, which enforce the phase order.
A scale factor change restarts the sequence from the horizontal axis.
*/
package widget
