// SPDX-License-Identifier: MPL-2.0

package pline

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Opts carries both the options that influence parsing behavior
// (FirstKeyWithStatement, KeysWithStatement, DefaultKeys, EnableNACM)
// and the display-only options preserved for the renderer's use
// (spec.md 3, "Parser Options").
type Opts struct {
	BeginBracket   string
	EndBracket     string
	ShowBrackets   bool
	ShowSemicolons bool

	FirstKeyWithStatement bool
	KeysWithStatement     bool

	Colorize bool
	Indent   int

	DefaultKeys     bool
	ShowDefaultKeys bool
	HidePasswords   bool
	EnableNACM      bool
	Oneliners       bool
}

// OptsInit seeds opts with the defaults given in spec.md 6.
func OptsInit(opts *Opts) {
	*opts = Opts{
		BeginBracket:          "{",
		EndBracket:            "}",
		ShowBrackets:          true,
		ShowSemicolons:        true,
		FirstKeyWithStatement: false,
		KeysWithStatement:     true,
		Colorize:              true,
		Indent:                2,
		DefaultKeys:           false,
		ShowDefaultKeys:       false,
		HidePasswords:         true,
		EnableNACM:            false,
		Oneliners:             true,
	}
}

// OptsParse merges INI-style "Key = value" text into opts, leaving
// fields whose key is absent untouched. Recognized keys are exactly
// those named in spec.md 6; an unrecognized key is ignored, matching
// the source's tolerant option parsing. Boolean values must be "y" or
// "n"; integer values are decimal.
func OptsParse(text string, opts *Opts) error {
	f, err := ini.Load([]byte(text))
	if err != nil {
		return fmt.Errorf("pline: parsing options: %w", err)
	}
	return applyOpts(f, opts)
}

// OptsParseFile merges the INI-style options file at path into opts.
func OptsParseFile(path string, opts *Opts) error {
	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("pline: parsing options file %s: %w", path, err)
	}
	return applyOpts(f, opts)
}

func applyOpts(f *ini.File, opts *Opts) error {
	sec := f.Section("")

	if err := applyBool(sec, "ShowBrackets", &opts.ShowBrackets); err != nil {
		return err
	}
	if err := applyBool(sec, "ShowSemicolons", &opts.ShowSemicolons); err != nil {
		return err
	}
	if err := applyBool(sec, "FirstKeyWithStatement", &opts.FirstKeyWithStatement); err != nil {
		return err
	}
	if err := applyBool(sec, "KeysWithStatement", &opts.KeysWithStatement); err != nil {
		return err
	}
	if err := applyBool(sec, "Colorize", &opts.Colorize); err != nil {
		return err
	}
	if sec.HasKey("Indent") {
		n, err := sec.Key("Indent").Int()
		if err != nil {
			return fmt.Errorf("pline: Indent: %w", err)
		}
		opts.Indent = n
	}
	if err := applyBool(sec, "DefaultKeys", &opts.DefaultKeys); err != nil {
		return err
	}
	if err := applyBool(sec, "ShowDefaultKeys", &opts.ShowDefaultKeys); err != nil {
		return err
	}
	if err := applyBool(sec, "HidePasswords", &opts.HidePasswords); err != nil {
		return err
	}
	if err := applyBool(sec, "EnableNACM", &opts.EnableNACM); err != nil {
		return err
	}
	if err := applyBool(sec, "Oneliners", &opts.Oneliners); err != nil {
		return err
	}

	return nil
}

// applyBool reads key from sec as a y/n flag, ini.v1's built-in Bool()
// parser accepts true/false/1/0/yes/no but not the bare y/n this
// format uses, so the value is read as a raw string and matched by
// hand.
func applyBool(sec *ini.Section, key string, dst *bool) error {
	if !sec.HasKey(key) {
		return nil
	}
	v := sec.Key(key).String()
	switch v {
	case "y":
		*dst = true
	case "n":
		*dst = false
	default:
		return fmt.Errorf("pline: %s: expected y or n, got %q", key, v)
	}
	return nil
}
