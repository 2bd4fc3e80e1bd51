package animl

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"

	"xml-binder/field"
	"xml-binder/model"
	"xml-binder/xmldoc"
)

// Schema attribute defaults of a new document.
const (
	SchemaVersion  = "0.90"
	Namespace      = "urn:org:astm:animl:schema:core:draft:0.90"
	XSINamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	SchemaLocation = Namespace + " http://schemas.animl.org/current/animl-core.xsd"
)

// Family holds every AnIML model.
var Family = model.NewFamily("animl")

// DefaultOptions is the layout Save and WriteTo use.
var DefaultOptions = xmldoc.Options{Indent: 2, Declaration: true}

// Document is the <AnIML> root element.
type Document struct {
	Version           string
	Xmlns             string
	XmlnsXsi          string
	XsiSchemaLocation string

	SampleSet     *SampleSet
	ExperimentSet *ExperimentStepSet
}

// Create returns an empty document with the schema attributes set.
func Create() *Document {
	doc, err := model.New[Document](Family, nil)
	if err != nil {
		panic(err)
	}

	return doc
}

// AppendSample adds s to the sample set, creating the set on first use.
func (d *Document) AppendSample(s *Sample) *Sample {
	if d.SampleSet == nil {
		d.SampleSet = &SampleSet{}
	}

	return d.SampleSet.Append(s)
}

// AppendExperimentStep adds s to the experiment step set, creating the set on
// first use.
func (d *Document) AppendExperimentStep(s *ExperimentStep) *ExperimentStep {
	if d.ExperimentSet == nil {
		d.ExperimentSet = &ExperimentStepSet{}
	}

	return d.ExperimentSet.Append(s)
}

// Dump converts the document into an element tree.
func (d *Document) Dump() (*etree.Element, error) {
	return Family.Dump(d)
}

// WriteTo writes the document as XML with DefaultOptions.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf, DefaultOptions); err != nil {
		return 0, err
	}

	return buf.WriteTo(w)
}

// Write writes the document as XML.
func (d *Document) Write(w io.Writer, opts xmldoc.Options) error {
	el, err := d.Dump()
	if err != nil {
		return err
	}

	return xmldoc.Write(w, el, opts)
}

// Save writes the document to path, replacing any existing file.
func (d *Document) Save(path string, opts xmldoc.Options) error {
	var buf bytes.Buffer
	if err := d.Write(&buf, opts); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // documents are not secret
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// String renders the document without a declaration, or the error.
func (d *Document) String() string {
	el, err := d.Dump()
	if err != nil {
		return err.Error()
	}

	s, err := xmldoc.String(el, xmldoc.Options{})
	if err != nil {
		return err.Error()
	}

	return s
}

// Load builds a document from its root element. Namespace prefixes are
// scrubbed from el and its descendants first.
func Load(el *etree.Element) (*Document, error) {
	xmldoc.ScrubNamespace(el)

	return model.Load[Document](Family, el)
}

// Loads parses a document from XML text.
func Loads(s string) (*Document, error) {
	el, err := xmldoc.ParseString(s)
	if err != nil {
		return nil, err
	}

	return Load(el)
}

// Read parses a document from r.
func Read(r io.Reader) (*Document, error) {
	el, err := xmldoc.Parse(r)
	if err != nil {
		return nil, err
	}

	return Load(el)
}

// Open parses the document stored at path.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

func init() {
	model.MustDefine[Document](Family, "AnIML",
		field.Attribute("version", "Optional[str]", field.Default(SchemaVersion)),
		field.Attribute("xmlns", "Optional[str]", field.Default(Namespace)),
		field.Attribute("xmlns_xsi", "Optional[str]", field.Alias("xmlns:xsi"), field.Default(XSINamespace)),
		field.Attribute("xsi_schemalocation", "Optional[str]",
			field.Alias("xsi:schemaLocation"), field.Default(SchemaLocation)),
		field.Child("sample_set", "Optional[SampleSet]"),
		field.Child("experiment_set", "Optional[ExperimentStepSet]"),
	)
}
