// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gioui.org/retained/draw"
	"gioui.org/retained/io/router"
	"gioui.org/retained/layout"
	"gioui.org/retained/widget"
	"gioui.org/retained/widget/basic"
)

// action is a message sent by the gallery's buttons and menu entries.
type action int

const (
	actIncrement action = iota
	actReset
	actLoad
	actAbout
	actQuit
)

// loaded is the result of the background task started by actLoad.
type loaded struct {
	lines int
	took  time.Duration
}

// gallery is the root widget of the demo: a column of every widget
// kind of package basic.
type gallery struct {
	*basic.List

	status  *basic.Label
	count   *basic.Label
	menu    *basic.MenuButton
	help    *basic.MenuButton
	about   *basic.MenuEntry
	quit    *basic.MenuEntry
	inc     *basic.Button
	load    *basic.Button
	region  *basic.ScrollRegion
	counter int
	// log records the messages handled, for tests.
	log []string
}

func newGallery(images *draw.Images) (*gallery, error) {
	checker, err := images.Add("checker", checkerboard(8, 4))
	if err != nil {
		return nil, err
	}
	g := &gallery{
		status: basic.NewLabel("Ready"),
		count:  basic.NewLabel("0"),
		inc:    basic.NewButton("Increment", actIncrement),
		load:   basic.NewButton("Load", actLoad),
		about:  basic.NewMenuEntry("About", actAbout),
		quit:   basic.NewMenuEntry("Quit", actQuit),
	}
	g.help = basic.NewMenuButton("Help", g.about)
	g.menu = basic.NewMenuButton("File",
		basic.NewMenuEntry("Reset", actReset),
		g.help,
		g.quit,
	)
	var rows []widget.Widget
	for i := 1; i <= 50; i++ {
		rows = append(rows, basic.NewLabel(fmt.Sprintf("Row %d", i)))
	}
	g.region = basic.NewScrollRegion(basic.NewList(layout.Down, rows...))
	about := basic.NewLabel("Widgets laid out by size rules, with input routed by the event core.")
	about.Wrap = true
	grid := basic.NewGrid(
		basic.GridCell{Info: layout.Cell(0, 0), Widget: basic.NewLabel("Counter")},
		basic.GridCell{Info: layout.Cell(1, 0), Widget: g.count},
		basic.GridCell{Info: layout.Cell(0, 1), Widget: basic.NewLabel("Status")},
		basic.GridCell{Info: layout.Cell(1, 1), Widget: g.status},
		basic.GridCell{Info: layout.GridChildInfo{Col: 2, ColEnd: 3, Row: 0, RowEnd: 2},
			Widget: basic.NewImage(checker, 32, 32, "Checkerboard")},
		basic.GridCell{Info: layout.GridChildInfo{Col: 0, ColEnd: 3, Row: 2, RowEnd: 3}, Widget: about},
	)
	g.List = basic.NewList(layout.Down,
		basic.NewList(layout.Right, g.menu, g.inc, g.load),
		grid,
		g.region,
	)
	return g, nil
}

func (g *gallery) HandleMessages(cx *router.Cx) {
	if res, ok := router.TryPop[loaded](cx); ok {
		g.logf("loaded %d", res.lines)
		g.status.SetText(cx, "Loaded "+strconv.Itoa(res.lines)+" lines")
		return
	}
	a, ok := router.TryPop[action](cx)
	if !ok {
		return
	}
	switch a {
	case actIncrement:
		g.counter++
		g.count.SetText(cx, strconv.Itoa(g.counter))
		g.logf("increment")
	case actReset:
		g.counter = 0
		g.count.SetText(cx, "0")
		g.logf("reset")
	case actLoad:
		g.status.SetText(cx, "Loading...")
		g.logf("load")
		cx.Spawn(g.Id(), func() any {
			start := time.Now()
			text := strings.Repeat("line\n", 1000)
			return loaded{lines: strings.Count(text, "\n"), took: time.Since(start)}
		})
	case actAbout:
		g.status.SetText(cx, "Tile gallery")
		g.logf("about")
	case actQuit:
		g.logf("quit")
		cx.Action(router.Close)
	}
}

func (g *gallery) logf(format string, args ...any) {
	g.log = append(g.log, fmt.Sprintf(format, args...))
}

// checkerboard returns an image of n by n squares of size pixels.
func checkerboard(n, size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, n*size, n*size))
	dark := color.NRGBA{R: 0x30, G: 0x40, B: 0x60, A: 0xff}
	light := color.NRGBA{R: 0xe0, G: 0xe8, B: 0xf0, A: 0xff}
	for y := 0; y < n*size; y++ {
		for x := 0; x < n*size; x++ {
			c := light
			if (x/size+y/size)%2 == 1 {
				c = dark
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
