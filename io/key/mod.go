// SPDX-License-Identifier: Unlicense OR MIT

//go:build !darwin

package key

// ModShortcut is the platform's shortcut modifier, usually the ctrl
// key. On Apple platforms it is the cmd key.
const ModShortcut = ModCtrl
