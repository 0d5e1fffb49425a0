package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"sync"
)

const pathElement = "path"

// svgElement is any element of the document tree. Only the attributes of
// path elements are used; children are walked recursively so paths nested
// in groups, links or nested svg elements are found.
type svgElement struct {
	XMLName  xml.Name
	ID       string       `xml:"id,attr"`
	Data     *string      `xml:"d,attr"`
	Children []svgElement `xml:",any"`
}

// svgRoot is the outermost svg element
type svgRoot struct {
	XMLName  xml.Name     `xml:"svg"`
	Children []svgElement `xml:",any"`
}

// Element is one path element of a document
type Element struct {
	// Index is the position of the element among the document's paths
	Index int
	ID    string
	Data  string
}

// Name identifies the element in errors and logs
func (e Element) Name() string {
	if e.ID != "" {
		return fmt.Sprintf("path#%s", e.ID)
	}
	return fmt.Sprintf("path[%d]", e.Index)
}

// Result is the outcome of flattening one element
type Result struct {
	Element   Element
	Polylines []Polyline
	Err       error
}

// Document holds the path elements of an SVG document in document order
type Document struct {
	Elements []Element

	opts options
}

// ParseDocument decodes an SVG document and collects its path elements
func ParseDocument(data []byte, opts ...Option) (*Document, error) {
	root := svgRoot{}
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, DocumentError{Err: err}
	}

	doc := &Document{opts: newOptions(opts)}
	doc.collect(root.Children)

	return doc, nil
}

// collect appends the path elements of the tree in document order
func (d *Document) collect(elements []svgElement) {
	for _, e := range elements {
		if e.XMLName.Local == pathElement && e.Data != nil {
			d.Elements = append(d.Elements, Element{
				Index: len(d.Elements),
				ID:    e.ID,
				Data:  *e.Data,
			})
		}
		d.collect(e.Children)
	}
}

// Convert flattens every element. Elements are independent: a malformed
// element reports its error in its own Result and leaves the others intact.
// Results are in document order whatever the number of workers.
func (d *Document) Convert() []Result {
	results := make([]Result, len(d.Elements))

	workers := min(d.opts.workers, len(d.Elements))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for index := range jobs {
				results[index] = d.convertElement(d.Elements[index])
			}
		}()
	}

	for i := range d.Elements {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// convertElement flattens a single element, tagging any error with the
// element's name
func (d *Document) convertElement(e Element) Result {
	Logger().Debug("new path", "element", e.Name())

	lines, err := Flatten(Commands(e.Data), d.withOptions()...)
	if err != nil {
		var malformed *MalformedPathDataError
		if errors.As(err, &malformed) {
			malformed.Element = e.Name()
		}
		Logger().Warn("skipping malformed path element", "element", e.Name(), "error", err)

		return Result{Element: e, Err: err}
	}

	return Result{Element: e, Polylines: lines}
}

// withOptions replays the document's options for a single element
func (d *Document) withOptions() []Option {
	o := d.opts
	return []Option{func(dst *options) { *dst = o }}
}

// Polylines returns the polylines of every valid element in document
// order, and the joined errors of the elements that were skipped
func (d *Document) Polylines() ([]Polyline, error) {
	var lines []Polyline
	var errs []error
	for _, r := range d.Convert() {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		lines = append(lines, r.Polylines...)
	}

	return lines, errors.Join(errs...)
}

// Parse converts an SVG document into polylines. Malformed path elements
// are skipped and reported through the returned error while the polylines
// of the other elements are still returned.
func Parse(data []byte, opts ...Option) ([]Polyline, error) {
	doc, err := ParseDocument(data, opts...)
	if err != nil {
		return nil, err
	}

	return doc.Polylines()
}
