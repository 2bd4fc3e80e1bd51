package model_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"

	"xml-binder/field"
	"xml-binder/model"
	"xml-binder/transform"
)

const xsiNS = "http://www.w3.org/2001/XMLSchema-instance"

type Color string

const (
	ColorRed  Color = "red"
	ColorBlue Color = "blue"
)

func (c Color) IsValid() bool {
	switch c {
	case ColorRed, ColorBlue:
		return true
	default:
		return false
	}
}

type Level int

type Note struct {
	Text string
}

type Tag struct {
	Name  string
	Value string
}

type Value interface {
	isValue()
}

type IntValue struct {
	Value int32
}

type LongValue struct {
	Value int64
}

type FloatValue struct {
	Value float64
}

func (*IntValue) isValue()   {}
func (*LongValue) isValue()  {}
func (*FloatValue) isValue() {}

type Range struct {
	StartValue Value
	Increment  Value
}

type Item struct {
	ID      string
	Color   Color
	Count   *int32
	Visible *bool
	Created *time.Time
	Note    *Note
	Tags    []*Tag
}

type Pair struct {
	First *Tag
	Rest  []*Tag
}

type Gauge struct {
	Level Level
}

type Root struct {
	Version  string
	XmlnsXsi string
	Items    []*Item
}

func mustDefine[T any](t *testing.T, f *model.Family, tag string, fields ...*field.Field) *model.Model {
	t.Helper()

	m, err := model.Define[T](f, tag, fields...)
	require.NoError(t, err)

	return m
}

// newFamily defines the test models in a fresh, unsealed family.
func newFamily(t *testing.T) *model.Family {
	t.Helper()

	f := model.NewFamily("test")
	require.NoError(t, model.RegisterEnum[Color](f))
	require.NoError(t, model.RegisterEnum[Level](f))

	mustDefine[Note](t, f, "", field.Text("text", "str"))
	mustDefine[Tag](t, f, "",
		field.Attribute("name", "str"),
		field.Attribute("value", "Optional[str]"),
	)
	mustDefine[IntValue](t, f, "I", field.Text("value", "int", field.Use("int32")))
	mustDefine[LongValue](t, f, "L", field.Text("value", "int", field.Use("int64")))
	mustDefine[Range](t, f, "",
		field.Child("startValue", "Union[IntValue, LongValue]"),
		field.Child("increment", "Union[IntValue, LongValue]"),
	)
	mustDefine[Item](t, f, "",
		field.Attribute("id", "str", field.Pattern(transform.NCName)),
		field.Attribute("color", "Optional[Color]"),
		field.Attribute("count", "Optional[int]", field.Use("int32")),
		field.Attribute("visible", "Optional[bool]", field.Use("bool")),
		field.Attribute("created", "Optional[datetime]", field.Use("datetime")),
		field.Child("note", "Optional[Note]"),
		field.Child("tags", "Optional[List[Tag]]"),
	)
	mustDefine[Pair](t, f, "",
		field.Child("first", "Tag"),
		field.Child("rest", "Optional[List[Tag]]"),
	)
	mustDefine[Gauge](t, f, "", field.Text("level", "Level"))
	mustDefine[Root](t, f, "",
		field.Attribute("version", "str", field.Default("0.90")),
		field.Attribute("xmlns_xsi", "str", field.Alias("xmlns:xsi"), field.Default(xsiNS)),
		field.Child("items", "Optional[List[Item]]"),
	)

	return f
}

func parse(t *testing.T, s string) *etree.Element {
	t.Helper()

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(s))
	require.NotNil(t, doc.Root())

	return doc.Root()
}

func render(t *testing.T, el *etree.Element) string {
	t.Helper()

	doc := etree.NewDocument()
	doc.SetRoot(el)

	s, err := doc.WriteToString()
	require.NoError(t, err)

	return s
}

func ptr[T any](v T) *T { return &v }
