package model_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xml-binder/field"
	"xml-binder/model"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	f := newFamily(t)
	created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	in := &Root{
		Version:  "0.90",
		XmlnsXsi: xsiNS,
		Items: []*Item{
			{
				ID:      "item1",
				Color:   ColorRed,
				Count:   ptr(int32(0)),
				Visible: ptr(false),
				Created: &created,
				Note:    &Note{Text: "handle with care"},
				Tags:    []*Tag{{Name: "a", Value: "1"}, {Name: "b"}},
			},
			{ID: "item2"},
		},
	}

	el, err := f.Dump(in)
	require.NoError(t, err)

	out, err := model.Load[Root](f, el)
	require.NoError(t, err)

	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s\ngot: %s", diff, spew.Sdump(out))
	}
}

func TestDumpLayout(t *testing.T) {
	t.Parallel()

	f := newFamily(t)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{
			name: "attributes in declaration order",
			in:   &Tag{Name: "a", Value: "1"},
			want: `<Tag name="a" value="1"/>`,
		},
		{
			name: "optional attribute omitted",
			in:   Tag{Name: "b"},
			want: `<Tag name="b"/>`,
		},
		{
			name: "zero number is written when present",
			in:   &Item{ID: "x", Count: ptr(int32(0)), Visible: ptr(true)},
			want: `<Item id="x" count="0" visible="true"/>`,
		},
		{
			name: "alias and children",
			in:   &Root{Version: "0.90", XmlnsXsi: xsiNS, Items: []*Item{{ID: "x", Note: &Note{Text: "hi"}}}},
			want: `<Root version="0.90" xmlns:xsi="` + xsiNS + `"><Item id="x"><Note>hi</Note></Item></Root>`,
		},
		{
			name: "union children in field order",
			in:   &Range{StartValue: &LongValue{Value: 5}, Increment: &IntValue{Value: -1}},
			want: `<Range><L>5</L><I>-1</I></Range>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			el, err := f.Dump(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, render(t, el))
		})
	}
}

func TestDumpErrors(t *testing.T) {
	t.Parallel()

	f := newFamily(t)

	tests := []struct {
		name     string
		in       any
		wantErr  error
		wantCode string
	}{
		{name: "non-string enum text", in: &Gauge{Level: 2}, wantErr: model.ErrType, wantCode: model.CodeNotText},
		{name: "required child is nil", in: &Pair{}, wantErr: model.ErrMissingField, wantCode: model.CodeMissingField},
		{name: "required union child is nil", in: &Range{StartValue: &IntValue{}}, wantErr: model.ErrMissingField, wantCode: model.CodeMissingField},
		{
			name:     "child is not a model",
			in:       &Range{StartValue: &FloatValue{Value: 1.5}, Increment: &IntValue{}},
			wantErr:  model.ErrType,
			wantCode: model.CodeNotAModel,
		},
		{name: "pattern mismatch", in: &Item{ID: "1st"}, wantErr: model.ErrValidation, wantCode: model.CodePatternMismatch},
		{name: "not a model", in: &struct{ Name string }{}, wantErr: model.ErrType, wantCode: model.CodeNotAModel},
		{name: "nil", in: nil, wantErr: model.ErrType, wantCode: model.CodeNotAModel},
		{name: "empty required text", in: &Note{}, wantErr: model.ErrMissingText, wantCode: model.CodeMissingText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := f.Dump(tt.in)
			require.ErrorIs(t, err, tt.wantErr)

			var me *model.Error
			require.ErrorAs(t, err, &me)
			assert.Equal(t, tt.wantCode, me.Code)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	f := newFamily(t)

	tests := []struct {
		name string
		xml  string
		want any
	}{
		{
			name: "minimal",
			xml:  `<Tag name="a"/>`,
			want: &Tag{Name: "a"},
		},
		{
			name: "typed value text",
			xml:  `<I>42</I>`,
			want: &IntValue{Value: 42},
		},
		{
			name: "int32 wraps",
			xml:  `<I>2147483648</I>`,
			want: &IntValue{Value: -2147483648},
		},
		{
			name: "scalar slots fill in order",
			xml:  `<Range><I>5</I><I>1</I></Range>`,
			want: &Range{StartValue: &IntValue{Value: 5}, Increment: &IntValue{Value: 1}},
		},
		{
			name: "union branches mix",
			xml:  `<Range><L>5</L><I>1</I></Range>`,
			want: &Range{StartValue: &LongValue{Value: 5}, Increment: &IntValue{Value: 1}},
		},
		{
			name: "scalar then trailing list",
			xml:  `<Pair><Tag name="a"/><Tag name="b"/><Tag name="c"/></Pair>`,
			want: &Pair{First: &Tag{Name: "a"}, Rest: []*Tag{{Name: "b"}, {Name: "c"}}},
		},
		{
			name: "prefixed attribute",
			xml:  `<Root version="1.0" xmlns:xsi="urn:x"><Item id="x" color="blue" count="-3" visible="1"/></Root>`,
			want: &Root{Version: "1.0", XmlnsXsi: "urn:x", Items: []*Item{{ID: "x", Color: ColorBlue, Count: ptr(int32(-3)), Visible: ptr(true)}}},
		},
		{
			name: "text around a comment",
			xml:  `<Note>ab<!-- skipped -->cd</Note>`,
			want: &Note{Text: "abcd"},
		},
		{
			name: "second scalar child replaces the first",
			xml:  `<Item id="x"><Note>first</Note><Note>second</Note></Item>`,
			want: &Item{ID: "x", Note: &Note{Text: "second"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := f.Load(parse(t, tt.xml))
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load(%s) mismatch (-want +got):\n%s", tt.xml, diff)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	f := newFamily(t)

	tests := []struct {
		name     string
		xml      string
		wantErr  error
		wantCode string
	}{
		{name: "missing required attribute", xml: `<Tag value="1"/>`, wantErr: model.ErrMissingAttribute, wantCode: model.CodeMissingAttribute},
		{name: "prefix does not match a plain attribute", xml: `<Tag x:name="a" xmlns:x="urn:x"/>`, wantErr: model.ErrMissingAttribute, wantCode: model.CodeMissingAttribute},
		{name: "missing required text", xml: `<Note/>`, wantErr: model.ErrMissingText, wantCode: model.CodeMissingText},
		{name: "empty element has no text", xml: `<Note></Note>`, wantErr: model.ErrMissingText, wantCode: model.CodeMissingText},
		{name: "blank integer text", xml: `<I>   </I>`, wantErr: model.ErrMissingText, wantCode: model.CodeMissingText},
		{name: "blank long text", xml: "<L>\n</L>", wantErr: model.ErrMissingText, wantCode: model.CodeMissingText},
		{name: "pattern mismatch", xml: `<Item id="9lives"/>`, wantErr: model.ErrValidation, wantCode: model.CodePatternMismatch},
		{name: "invalid enum", xml: `<Item id="x" color="green"/>`, wantErr: model.ErrValidation, wantCode: model.CodeInvalidEnum},
		{name: "bad number", xml: `<Item id="x" count="many"/>`, wantErr: model.ErrTransform, wantCode: model.CodeTransformFailed},
		{name: "bad boolean", xml: `<Item id="x" visible="yes"/>`, wantErr: model.ErrTransform, wantCode: model.CodeTransformFailed},
		{name: "unknown child tag", xml: `<Item id="x"><Gadget/></Item>`, wantErr: model.ErrUnknownTag, wantCode: model.CodeUnknownTag},
		{name: "no field for child", xml: `<Item id="x"><I>1</I></Item>`, wantErr: model.ErrNoField, wantCode: model.CodeNoField},
		{name: "all scalar slots taken", xml: `<Range><I>1</I><I>2</I><I>3</I></Range>`, wantErr: model.ErrNoField, wantCode: model.CodeNoField},
		{name: "required child missing", xml: `<Pair/>`, wantErr: model.ErrMissingField, wantCode: model.CodeMissingField},
		{name: "nested failure", xml: `<Root version="1" xmlns:xsi="urn:x"><Item/></Root>`, wantErr: model.ErrMissingAttribute, wantCode: model.CodeMissingAttribute},
		{name: "unknown root", xml: `<Gadget/>`, wantErr: model.ErrUnknownTag, wantCode: model.CodeUnknownTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := f.Load(parse(t, tt.xml))
			require.ErrorIs(t, err, tt.wantErr)

			var me *model.Error
			require.ErrorAs(t, err, &me)
			assert.Equal(t, tt.wantCode, me.Code)
		})
	}
}

func TestLoadBlankAttribute(t *testing.T) {
	t.Parallel()

	type Counter struct {
		Count int32
		Step  *int32
	}

	f := model.NewFamily("counters")
	mustDefine[Counter](t, f, "",
		field.Attribute("count", "int", field.Use("int32")),
		field.Attribute("step", "Optional[int]", field.Use("int32")),
	)

	_, err := f.Load(parse(t, `<Counter count=" "/>`))
	require.ErrorIs(t, err, model.ErrMissingAttribute)

	var me *model.Error
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "count", me.Field)

	got, err := model.Load[Counter](f, parse(t, `<Counter count="3" step=""/>`))
	require.NoError(t, err)
	assert.Equal(t, &Counter{Count: 3}, got)
}

func TestEmptyTextRoundTrip(t *testing.T) {
	t.Parallel()

	f := newFamily(t)

	el, err := f.Dump(&Note{Text: " "})
	require.NoError(t, err)

	got, err := model.Load[Note](f, el)
	require.NoError(t, err)
	assert.Equal(t, &Note{Text: " "}, got)

	_, err = f.Dump(&Note{})
	require.ErrorIs(t, err, model.ErrMissingText)
}

func TestLoadTagMismatch(t *testing.T) {
	t.Parallel()

	f := newFamily(t)

	_, err := model.Load[Tag](f, parse(t, `<Note>a</Note>`))
	require.ErrorIs(t, err, model.ErrTagMismatch)

	var me *model.Error
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "Tag", me.Model)
	assert.Equal(t, "Note", me.Tag)
}

func TestUnknownTagSuggestions(t *testing.T) {
	t.Parallel()

	f := newFamily(t)

	_, err := f.Load(parse(t, `<Root version="1" xmlns:xsi="urn:x"><Itemm id="x"/></Root>`))
	require.ErrorIs(t, err, model.ErrUnknownTag)

	var me *model.Error
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "Itemm", me.Tag)
	assert.Contains(t, me.Suggestions, "Item")
	assert.Contains(t, err.Error(), `did you mean "Item"`)
}

func TestUnreachableField(t *testing.T) {
	t.Parallel()

	type Greedy struct {
		All  []*Tag
		Last *Tag
	}

	f := model.NewFamily("greedy")
	mustDefine[Tag](t, f, "", field.Attribute("name", "str"))
	mustDefine[Greedy](t, f, "",
		field.Child("all", "List[Tag]"),
		field.Child("last", "Optional[Tag]"),
	)

	for _, doc := range []string{`<Greedy/>`, `<Greedy><Tag name="a"/></Greedy>`} {
		_, err := f.Load(parse(t, doc))
		require.ErrorIs(t, err, model.ErrUnreachableField, doc)

		var e *model.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, "all", e.Field)
		assert.Equal(t, "Tag", e.Tag)
	}
}

func TestLoggerSeesRouting(t *testing.T) {
	t.Parallel()

	f := newFamily(t)
	rec := &recorder{}
	f.SetLogger(rec)

	_, err := f.Load(parse(t, `<Item id="x"><Note>a</Note><Note>b</Note></Item>`))
	require.NoError(t, err)

	assert.Contains(t, rec.lines, "Item: <Note> routed to note")
	assert.Contains(t, rec.lines, "Item.note: <Note> replaces the previous value")
}

func TestConcurrentLoad(t *testing.T) {
	t.Parallel()

	f := newFamily(t)
	el := parse(t, `<Root version="1" xmlns:xsi="urn:x"><Item id="a"><Tag name="t"/></Item><Item id="b" count="2"/></Root>`)

	var wg sync.WaitGroup

	errs := make(chan error, 16)

	for i := range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			root, err := model.Load[Root](f, el)
			if err != nil {
				errs <- err

				return
			}

			if len(root.Items) != 2 || *root.Items[1].Count != 2 {
				errs <- fmt.Errorf("worker %d: unexpected result %s", i, spew.Sdump(root))
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

type recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *recorder) Verbose(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	err := &model.Error{
		Code:        model.CodeUnknownTag,
		Model:       "Root",
		Detail:      "no model for <Itemm>",
		Suggestions: []string{"Item"},
		Err:         model.ErrUnknownTag,
	}

	assert.Equal(t, `model Root: [unknown_tag] no model for <Itemm> (did you mean "Item"?)`, err.Error())
	assert.True(t, errors.Is(err, model.ErrUnknownTag))
}
