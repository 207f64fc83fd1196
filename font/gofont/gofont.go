// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont provides faces of the Go fonts.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	once    sync.Once
	regular *opentype.Font
	mono    *opentype.Font
	loadErr error
)

func load() {
	once.Do(func() {
		var err error
		regular, err = opentype.Parse(goregular.TTF)
		if err != nil {
			loadErr = fmt.Errorf("gofont: failed to parse font: %w", err)
			return
		}
		mono, err = opentype.Parse(gomono.TTF)
		if err != nil {
			loadErr = fmt.Errorf("gofont: failed to parse font: %w", err)
		}
	})
}

// Regular returns Go Regular with an em of size pixels.
func Regular(size float64) (font.Face, error) {
	load()
	if loadErr != nil {
		return nil, loadErr
	}
	return newFace(regular, size)
}

// Mono returns Go Mono with an em of size pixels.
func Mono(size float64) (font.Face, error) {
	load()
	if loadErr != nil {
		return nil, loadErr
	}
	return newFace(mono, size)
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("gofont: %w", err)
	}
	return face, nil
}
