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
	"sort"
	"time"

	"golang.org/x/exp/maps"

	"github.com/paperglyph/pdfkit/content"
	"github.com/paperglyph/pdfkit/font"
	"github.com/paperglyph/pdfkit/outline"
	"github.com/paperglyph/pdfkit/resource"
	"github.com/paperglyph/pdfkit/shaping"
)

// Document is the top-level assembler: it owns the ObjectWriter, the font
// registry, the resource cache, and the set of pages, outline entries and
// optional encryption that together become one PDF file.
type Document struct {
	writer    *ObjectWriter
	resources *resource.Cache
	pipeline  *shaping.Pipeline

	shaper        shaping.Shaper
	fallbackOrder []string
	defaultFont   string
	fontBytes     map[string][]byte
	fonts         map[string]*font.Embedder

	pages   []*Page
	outline []outline.Entry

	metadata    Metadata
	encryptOpts *EncryptOptions
	engine      *EncryptionEngine

	deterministic bool
	fileID        [16]byte
	createdAt     time.Time

	catalogRef      Reference
	standardFontRef Reference
}

// DocumentOption configures a Document at construction time.
type DocumentOption func(*Document)

// WithFont registers fontBytes (a TrueType/OpenType-glyf font program)
// under key, available to Page.Text via style.Font or the fallback order.
// The first font registered becomes the default unless WithDefaultFont
// has already named one.
func WithFont(key string, fontBytes []byte) DocumentOption {
	return func(d *Document) {
		d.fontBytes[key] = fontBytes
		if d.defaultFont == "" {
			d.defaultFont = key
		}
	}
}

// WithFallbackOrder sets the font keys tried, in order, when resolving the
// font for a code point. Keys must also be registered with
// WithFont.
func WithFallbackOrder(keys ...string) DocumentOption {
	return func(d *Document) { d.fallbackOrder = keys }
}

// WithDefaultFont overrides which registered font key is used when no
// fallback font covers a code point. If that key is not a registered font,
// such text is drawn as literal text in the built-in Helvetica font.
func WithDefaultFont(key string) DocumentOption {
	return func(d *Document) { d.defaultFont = key }
}

// WithShaper installs a complex-text shaper bridge. Without this option,
// Document falls back to shaping.SimpleShaper, a pragmatic one-glyph-per-
// scalar shaper.
func WithShaper(s shaping.Shaper) DocumentOption {
	return func(d *Document) { d.shaper = s }
}

// WithMetadata sets the document information dictionary fields and the
// Catalog's language tag.
func WithMetadata(m Metadata) DocumentOption {
	return func(d *Document) { d.metadata = m }
}

// WithEncryption enables the Standard Security Handler with opts. An
// unsupported Cipher value fails construction with KindEncryptionConfig.
func WithEncryption(opts EncryptOptions) DocumentOption {
	return func(d *Document) { d.encryptOpts = &opts }
}

// WithDeterministic fixes the file ID and CreationDate instead of drawing
// them from the system clock and a CSPRNG, so Save is reproducible byte
// for byte across runs.
func WithDeterministic(id [16]byte, created time.Time) DocumentOption {
	return func(d *Document) {
		d.deterministic = true
		d.fileID = id
		d.createdAt = created
	}
}

// NewDocument builds a Document ready to accept pages. It returns an error
// if any registered font's bytes fail to parse, or if encryption options
// name an unsupported cipher.
func NewDocument(opts ...DocumentOption) (*Document, error) {
	d := &Document{
		writer:    NewObjectWriter(),
		resources: resource.NewCache(nil),
		shaper:    shaping.SimpleShaper{},
		fontBytes: make(map[string][]byte),
		fonts:     make(map[string]*font.Embedder),
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(d)
	}

	// Sorted rather than map-order iteration: under WithDeterministic the
	// object ids handed out here must not depend on Go's randomized map
	// iteration order.
	fontKeys := sortedKeys(d.fontBytes)
	for _, key := range fontKeys {
		e, err := font.NewEmbedder(d.fontBytes[key], key)
		if err != nil {
			return nil, newError(KindFontConfig, "NewDocument", err)
		}
		e.Ref = d.writer.Alloc()
		d.fonts[key] = e
	}

	d.pipeline = shaping.NewPipeline(d.shaper, d.fallbackOrder, d.defaultFont)
	for _, key := range fontKeys {
		if err := d.pipeline.RegisterFont(key, d.fonts[key]); err != nil {
			return nil, newError(KindFontConfig, "NewDocument", err)
		}
	}

	if !d.deterministic {
		d.fileID = generateFileID()
	}
	d.writer.SetFileID(d.fileID)

	d.catalogRef = d.writer.Alloc()
	d.writer.SetCatalog(d.catalogRef)

	if d.encryptOpts != nil {
		engine, err := NewEncryptionEngine(*d.encryptOpts, d.fileID)
		if err != nil {
			return nil, err
		}
		d.engine = engine
	}

	return d, nil
}

// AddPage appends a new page of the given size (in PDF points) and
// returns it for drawing.
func (d *Document) AddPage(width, height float64) *Page {
	p := &Page{
		doc:        d,
		Width:      width,
		Height:     height,
		ref:        d.writer.Alloc(),
		contentRef: d.writer.Alloc(),
		stream:     content.New(),
	}
	d.pages = append(d.pages, p)
	return p
}

// AddOutline appends a bookmark pointing at pageIndex (0-based).
func (d *Document) AddOutline(title string, pageIndex int) {
	d.outline = append(d.outline, outline.Entry{Title: title, TargetPage: pageIndex})
}

// Save runs the fixed four-step finalize sequence and returns
// the complete PDF 1.7 byte stream.
func (d *Document) Save() ([]byte, error) {
	pageRefs := make([]Reference, len(d.pages))
	for i, p := range d.pages {
		pageRefs[i] = p.ref
	}

	// Step 1: finalize each page's content stream and resolve link dests.
	for _, p := range d.pages {
		if !p.stream.Balanced() {
			return nil, newError(KindInvalidInput, "Document.Save", &ConsistencyError{Ref: p.ref})
		}
		d.writer.AddStream(p.contentRef, Dict{}, p.stream.Bytes(), false)

		var annots Array
		for _, l := range p.links {
			var dict Dict
			if l.URL != "" {
				dict = l.URIDict()
			} else {
				dict = l.PageDict(pageRefs[l.TargetPage])
			}
			annots = append(annots, d.writer.AddDict(0, dict))
		}
		p.annots = annots
	}

	// Step 2: outline tree.
	outlineRoot, hasOutline := outline.BuildTree(d.writer, d.outline, pageRefs)

	// Step 3: per-font ToUnicode CMaps and font dictionaries.
	for _, key := range sortedKeys(d.fonts) {
		if err := d.fonts[key].Finalize(d.writer); err != nil {
			return nil, err
		}
	}
	if d.usesStandardFont() {
		// Allocated here, not in NewDocument: an id handed out but never
		// written would make Build's xref pass treat it as a gap and panic.
		d.standardFontRef = d.writer.Alloc()
		d.writer.AddDict(d.standardFontRef, font.StandardFontDict())
	}

	// Build the Pages tree and each page's own dict, now that content and
	// resources are fully known.
	pagesRef := d.writer.Alloc()
	kids := make(Array, len(d.pages))
	for i, p := range d.pages {
		kids[i] = p.ref
		pageDict := Dict{
			"Type":      Name("Page"),
			"Parent":    pagesRef,
			"MediaBox":  Array{Real(0), Real(0), Real(p.Width), Real(p.Height)},
			"Contents":  p.contentRef,
			"Resources": d.pageResources(p),
		}
		if len(p.annots) > 0 {
			pageDict["Annots"] = p.annots
		}
		d.writer.AddDict(p.ref, pageDict)
	}
	d.writer.AddDict(pagesRef, Dict{
		"Type":  Name("Pages"),
		"Kids":  kids,
		"Count": Integer(len(d.pages)),
	})

	catalog := Dict{
		"Type":  Name("Catalog"),
		"Pages": pagesRef,
	}
	if hasOutline {
		catalog["Outlines"] = outlineRoot
	}
	if lang, ok := d.metadata.langTag(); ok {
		catalog["Lang"] = lang
	}
	d.writer.AddDict(d.catalogRef, catalog)

	infoRef := d.writer.Alloc()
	d.writer.AddDict(infoRef, d.metadata.infoDict(d.createdAt))
	d.writer.SetInfo(infoRef)

	if d.engine != nil {
		encRef := d.writer.Alloc()
		d.writer.SetEncryption(d.engine, encRef)
		d.writer.AddDict(encRef, d.engine.EncryptDict())
	}

	if d.deterministic {
		// Scoped to this one call: randSource must be reproducible while
		// Build draws AES IVs, but nothing about WithDeterministic should
		// leak into unrelated code that happens to call crypto/rand
		// through this package between two Save calls.
		randOverride = newDeterministicReader(d.fileID)
		defer func() { randOverride = nil }()
	}

	return d.writer.Build(), nil
}

// usesStandardFont reports whether any page's content stream referenced
// the Helvetica fallback, so Save only writes its font dictionary (and
// wires it into page Resources) when something actually needs it.
func (d *Document) usesStandardFont() bool {
	for _, p := range d.pages {
		for _, n := range p.stream.FontNames() {
			if n == font.StandardFontResourceKey {
				return true
			}
		}
	}
	return false
}

// sortedKeys returns m's keys in sorted order, so the object ids Save
// hands out don't depend on Go's randomized map iteration order.
func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	sort.Strings(keys)
	return keys
}

// pageResources builds the /Resources dictionary for p from the names its
// content stream actually referenced.
func (d *Document) pageResources(p *Page) Dict {
	res := Dict{}

	if names := p.stream.FontNames(); len(names) > 0 {
		fontDict := Dict{}
		for _, n := range names {
			if e, ok := d.fonts[n]; ok {
				fontDict[Name(n)] = e.Ref
			} else if n == font.StandardFontResourceKey {
				fontDict[Name(n)] = d.standardFontRef
			}
		}
		res["Font"] = fontDict
	}
	if names := p.stream.ImageNames(); len(names) > 0 {
		xDict := Dict{}
		for _, n := range names {
			if ref, ok := d.resources.RefByName(n); ok {
				xDict[Name(n)] = ref
			}
		}
		res["XObject"] = xDict
	}
	if names := p.stream.ExtGStateNames(); len(names) > 0 {
		gsDict := Dict{}
		for _, n := range names {
			if ref, ok := d.resources.RefByName(n); ok {
				gsDict[Name(n)] = ref
			}
		}
		res["ExtGState"] = gsDict
	}
	if names := p.stream.ShadingNames(); len(names) > 0 {
		shDict := Dict{}
		for _, n := range names {
			if ref, ok := d.resources.RefByName(n); ok {
				shDict[Name(n)] = ref
			}
		}
		res["Shading"] = shDict
	}
	return res
}
