package views

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strconv"

	"github.com/ziadkadry99/gallery/internal/gallery"
)

// Route paths the fragments link to.
const (
	PathIndex     = "/"
	PathMore      = "/more"
	PathModalOpen = "/modal/open"
)

// PageSize is the number of image items in every list fragment.
const PageSize = 16

const (
	DefaultTitle         = "HTMX Infinite Scroll Gallery"
	DefaultHTMXURL       = "https://unpkg.com/htmx.org@1.9.3/dist/htmx.min.js"
	DefaultStylesheetURL = "/static/output.css"
)

// Options configures the page shell.
type Options struct {
	Title         string
	Intro         string // Markdown, rendered once at construction
	HTMXURL       string
	StylesheetURL string
}

// Renderer produces the gallery's HTML fragments. Apart from the counter
// increment per image item it has no side effects.
type Renderer struct {
	counter *gallery.Counter
	tmpl    *template.Template
	shell   shellData
}

type shellData struct {
	Title         string
	Intro         template.HTML
	HTMXURL       string
	StylesheetURL string
}

type itemData struct {
	Src     string
	OpenURL string
}

type modalData struct {
	Src       string
	ContentID string
	PrevURL   string
	NextURL   string
}

type errorData struct {
	Message string
	Ref     string
}

// New parses the fragment templates and renders the intro Markdown.
func New(counter *gallery.Counter, opts Options) (*Renderer, error) {
	if counter == nil {
		return nil, fmt.Errorf("renderer requires a counter")
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.HTMXURL == "" {
		opts.HTMXURL = DefaultHTMXURL
	}
	if opts.StylesheetURL == "" {
		opts.StylesheetURL = DefaultStylesheetURL
	}

	intro, err := renderMarkdown(opts.Intro)
	if err != nil {
		return nil, fmt.Errorf("rendering intro: %w", err)
	}

	r := &Renderer{
		counter: counter,
		shell: shellData{
			Title:         opts.Title,
			Intro:         intro,
			HTMXURL:       opts.HTMXURL,
			StylesheetURL: opts.StylesheetURL,
		},
	}

	slots := make([]struct{}, PageSize)
	r.tmpl, err = template.New("gallery").Funcs(template.FuncMap{
		"pageSlots": func() []struct{} { return slots },
		"nextItem":  r.nextItem,
		"morePath":  func() string { return PathMore },
	}).Parse(galleryTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing gallery templates: %w", err)
	}
	return r, nil
}

// Shell writes the full page, including the first list fragment.
func (r *Renderer) Shell(w io.Writer) error {
	return r.execute(w, "shell", r.shell)
}

// List writes PageSize image items followed by the scroll sentinel.
func (r *Renderer) List(w io.Writer) error {
	return r.execute(w, "list", nil)
}

// Item writes a single image item with a fresh placeholder URL.
func (r *Renderer) Item(w io.Writer) error {
	return r.execute(w, "item", r.nextItem())
}

// Modal writes the lightbox for ref. dir only selects the content element id.
func (r *Renderer) Modal(w io.Writer, ref gallery.Reference, dir gallery.Direction) error {
	contentID := "modal-content"
	if dir != gallery.DirectionNone {
		contentID += "-" + dir.String()
	}
	data := modalData{
		Src:       ref.String(),
		ContentID: contentID,
	}
	// A button whose neighbour id would overflow is left out.
	if prev, ok := ref.Prev(); ok {
		data.PrevURL = ModalURL(prev, gallery.DirectionLeft)
	}
	if next, ok := ref.Next(); ok {
		data.NextURL = ModalURL(next, gallery.DirectionRight)
	}
	return r.execute(w, "modal", data)
}

// Indicator writes the loading indicator.
func (r *Renderer) Indicator(w io.Writer) error {
	return r.execute(w, "indicator", nil)
}

// Error writes a minimal error fragment. ref correlates the response with the log entry.
func (r *Renderer) Error(w io.Writer, message, ref string) error {
	return r.execute(w, "error", errorData{Message: message, Ref: ref})
}

// Counter returns the counter the renderer draws image URLs from.
func (r *Renderer) Counter() *gallery.Counter { return r.counter }

func (r *Renderer) nextItem() itemData {
	ref := r.counter.NextReference()
	return itemData{
		Src:     ref.String(),
		OpenURL: ModalURL(ref, gallery.DirectionNone),
	}
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("executing %s template: %w", name, err)
	}
	return nil
}

// ModalURL returns the modal-open link for ref, carrying base and id as
// separate query parameters.
func ModalURL(ref gallery.Reference, dir gallery.Direction) string {
	q := url.Values{}
	q.Set("base", ref.Base)
	q.Set("id", strconv.Itoa(ref.ID))
	if dir != gallery.DirectionNone {
		q.Set("dir", dir.String())
	}
	return PathModalOpen + "?" + q.Encode()
}
