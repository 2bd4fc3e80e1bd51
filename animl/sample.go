package animl

import (
	"github.com/google/uuid"

	"xml-binder/field"
	"xml-binder/model"
)

// Tag is a name/value annotation.
type Tag struct {
	Name  string
	Value string
}

// TagSet is <TagSet>.
type TagSet struct {
	Tags []*Tag
}

// Append adds t to the set and returns it.
func (s *TagSet) Append(t *Tag) *Tag {
	s.Tags = append(s.Tags, t)

	return t
}

// Sample is a physical sample the document reports on.
type Sample struct {
	Name                string
	SampleID            string
	Barcode             string
	Comment             string
	ContainerID         string
	ContainerType       string
	Derived             *bool
	ID                  string
	LocationInContainer string
	SourceDataLocation  string

	TagSet   *TagSet
	Category *Category
}

// NewSample returns a sample with a random sample ID.
func NewSample(name string) *Sample {
	return &Sample{Name: name, SampleID: uuid.NewString()}
}

// Append tags the sample, creating its TagSet on first use.
func (s *Sample) Append(t *Tag) *Tag {
	if s.TagSet == nil {
		s.TagSet = &TagSet{}
	}

	return s.TagSet.Append(t)
}

// SampleSet is <SampleSet>.
type SampleSet struct {
	ID      string
	Samples []*Sample
}

// Append adds s to the set and returns it.
func (s *SampleSet) Append(sample *Sample) *Sample {
	s.Samples = append(s.Samples, sample)

	return sample
}

func init() {
	model.MustDefine[Tag](Family, "",
		field.Attribute("name", "str"),
		field.Attribute("value", "Optional[str]"),
	)
	model.MustDefine[TagSet](Family, "", field.Child("tags", "Optional[List[Tag]]"))

	model.MustDefine[Sample](Family, "",
		field.Attribute("name", "str"),
		field.Attribute("sampleID", "str"),
		field.Attribute("barcode", "Optional[str]"),
		field.Attribute("comment", "Optional[str]"),
		field.Attribute("containerID", "Optional[str]"),
		field.Attribute("containerType", "Optional[str]"),
		field.Attribute("derived", "Optional[bool]", field.Use("bool")),
		optionalID(),
		field.Attribute("locationInContainer", "Optional[str]"),
		field.Attribute("sourceDataLocation", "Optional[str]"),
		field.Child("tag_set", "Optional[TagSet]"),
		field.Child("category", "Optional[Category]"),
	)
	model.MustDefine[SampleSet](Family, "",
		optionalID(),
		field.Child("samples", "List[Sample]", field.DefaultFunc(func() any { return []*Sample{} })),
	)
}
