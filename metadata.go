// Copyright 2026 The pdfkit Authors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfkit

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Metadata populates the document information dictionary and the
// Catalog's language tag.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Lang     string // BPC-47 tag, e.g. "en", "ar", "ckb"; parsed with language.Parse
	Producer string
}

func (m Metadata) infoDict(created time.Time) Dict {
	d := Dict{
		"CreationDate": String(pdfDate(created)),
		"Producer":     String(nonEmpty(m.Producer, "pdfkit")),
	}
	if m.Title != "" {
		d["Title"] = String(m.Title)
	}
	if m.Author != "" {
		d["Author"] = String(m.Author)
	}
	if m.Subject != "" {
		d["Subject"] = String(m.Subject)
	}
	if m.Creator != "" {
		d["Creator"] = String(m.Creator)
	}
	return d
}

func (m Metadata) langTag() (String, bool) {
	if m.Lang == "" {
		return "", false
	}
	tag, err := language.Parse(m.Lang)
	if err != nil {
		return "", false
	}
	return String(tag.String()), true
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// pdfDate formats t as a PDF date string: D:YYYYMMDDHHmmSS+HH'mm'.
func pdfDate(t time.Time) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	oh, om := offset/3600, (offset%3600)/60
	return fmt.Sprintf("D:%04d%02d%02d%02d%02d%02d%s%02d'%02d'",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), sign, oh, om)
}
