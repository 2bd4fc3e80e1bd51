package field_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xml-binder/annotation"
	"xml-binder/field"
	"xml-binder/transform"
)

func TestKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		f    *field.Field
		kind field.Kind
		name string
	}{
		{f: field.Attribute("id", "str"), kind: field.KindAttribute, name: "KindAttribute"},
		{f: field.Child("samples", "List[Sample]"), kind: field.KindChild, name: "KindChild"},
		{f: field.Text("value", "str"), kind: field.KindText, name: "KindText"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.kind, tt.f.Kind())
			require.NoError(t, tt.f.Err())
			assert.Nil(t, tt.f.Annotation())
		})
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	t.Run("value", func(t *testing.T) {
		t.Parallel()

		f := field.Attribute("version", "Optional[str]", field.Default("0.90"))
		assert.True(t, f.HasDefault())
		assert.Equal(t, "0.90", f.GetDefault())
	})

	t.Run("factory", func(t *testing.T) {
		t.Parallel()

		calls := 0
		f := field.Child("tags", "List[Tag]", field.DefaultFunc(func() any {
			calls++
			return []any{}
		}))

		assert.True(t, f.HasDefault())
		assert.Equal(t, []any{}, f.GetDefault())
		assert.Equal(t, []any{}, f.GetDefault())
		assert.Equal(t, 2, calls)
	})

	t.Run("value wins over factory", func(t *testing.T) {
		t.Parallel()

		f := field.Attribute("a", "str", field.Default("x"), field.DefaultFunc(func() any { return "y" }))
		assert.Equal(t, "x", f.GetDefault())
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		f := field.Attribute("a", "str")
		assert.False(t, f.HasDefault())
		assert.Nil(t, f.GetDefault())
	})

	t.Run("nil default is still a default", func(t *testing.T) {
		t.Parallel()

		f := field.Attribute("a", "Optional[str]", field.Default(nil))
		assert.True(t, f.HasDefault())
		assert.Nil(t, f.GetDefault())
	})
}

func TestAlias(t *testing.T) {
	t.Parallel()

	f := field.Attribute("xmlns_xsi", "str", field.Alias("xmlns:xsi"))
	assert.Equal(t, "xmlns:xsi", f.XMLName())
	assert.Equal(t, "xmlns_xsi", f.Name())

	plain := field.Attribute("name", "str")
	assert.Equal(t, "name", plain.XMLName())

	child := field.Child("unit", "Unit", field.Alias("u"))
	require.ErrorIs(t, child.Err(), field.ErrInvalidOption)
}

func TestTransforms(t *testing.T) {
	t.Parallel()

	t.Run("pass-through", func(t *testing.T) {
		t.Parallel()

		f := field.Text("value", "str")
		v, err := f.Serialize("x")
		require.NoError(t, err)
		assert.Equal(t, "x", v)

		v, err = f.Deserialize("x")
		require.NoError(t, err)
		assert.Equal(t, "x", v)
	})

	t.Run("preset", func(t *testing.T) {
		t.Parallel()

		f := field.Text("value", "bool", field.WithTransform(transform.Bool))
		v, err := f.Serialize(true)
		require.NoError(t, err)
		assert.Equal(t, "true", v)

		v, err = f.Deserialize("false")
		require.NoError(t, err)
		assert.Equal(t, false, v)
	})

	t.Run("named", func(t *testing.T) {
		t.Parallel()

		f := field.Text("value", "int", field.Use("int32"))
		require.NoError(t, f.Err())

		v, err := f.Deserialize("42")
		require.NoError(t, err)
		assert.Equal(t, int32(42), v)

		bad := field.Text("value", "int", field.Use("int128"))
		require.ErrorIs(t, bad.Err(), field.ErrInvalidOption)
	})

	t.Run("hooks", func(t *testing.T) {
		t.Parallel()

		f := field.Attribute("n", "int", field.Hooks(func(n int) string { return "n" }, nil))
		require.NoError(t, f.Err())

		v, err := f.Serialize(1)
		require.NoError(t, err)
		assert.Equal(t, "n", v)

		bad := field.Attribute("n", "int", field.Hooks("not a func", nil))
		require.ErrorIs(t, bad.Err(), field.ErrInvalidOption)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	type code string

	f := field.Attribute("id", "Optional[str]", field.Pattern(transform.NCName))
	require.NoError(t, f.Err())

	v, err := f.Validate("sample-1")
	require.NoError(t, err)
	assert.Equal(t, "sample-1", v)

	_, err = f.Validate(code("1sample"))
	require.ErrorIs(t, err, field.ErrValidation)
	require.ErrorIs(t, err, transform.ErrMismatch)

	var verr *field.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "id", verr.Field)
	assert.Equal(t, "1sample", verr.Value)
	assert.Equal(t, transform.NCName, verr.Pattern)

	v, err = f.Validate(nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = f.Validate(12)
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	bad := field.Attribute("id", "str", field.Pattern("("))
	require.ErrorIs(t, bad.Err(), field.ErrInvalidOption)
}

func TestFreeze(t *testing.T) {
	t.Parallel()

	type holder struct {
		Name string
	}

	sf, ok := reflect.TypeFor[holder]().FieldByName("Name")
	require.True(t, ok)

	f := field.Attribute("name", "Optional[str]")
	require.NoError(t, f.Freeze(annotation.MustParse(f.Expr()), sf))
	assert.True(t, f.IsOptional())
	assert.False(t, f.IsList())
	assert.Equal(t, []int{0}, f.Index())
	assert.Equal(t, reflect.TypeFor[string](), f.GoType())

	require.ErrorIs(t, f.Freeze(annotation.MustParse("str"), sf), field.ErrFrozen)
}
