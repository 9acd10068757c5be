// internal/app/features/manager/config.go
package manager

import "github.com/hopeworks/ngohub/internal/backend"

// FieldType selects the form control a field renders as.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldCheckbox FieldType = "checkbox"
	FieldSelect   FieldType = "select"
	FieldImage    FieldType = "image"
)

// Field describes one editable attribute of a content family.
type Field struct {
	Name     string // backend JSON key, also the form input name
	Label    string
	Type     FieldType
	Required bool
	Options  []string // select only
	Help     string
}

// Family is the static configuration for one managed content family. All
// six families share the same list/form/delete flow; this struct is the
// only thing that differs between them.
type Family struct {
	Slug     string // URL segment under /admin/content/
	Title    string
	Endpoint string // backend base path, e.g. "/home/hero"

	// ImageField names the raw image attribute, empty when the family has
	// no image. Image families additionally honor a file upload that
	// switches the write to multipart with useUpload set.
	ImageField string

	// WrapKeys are the response wrapper keys the backend uses for this
	// family, matched against the typed client in internal/backend.
	WrapKeys []string

	// Singleton families hold exactly one record: the form always upserts
	// via create and delete-all is the reset.
	Singleton bool

	// ListFields picks which fields appear as columns in the list grid.
	ListFields []string

	Fields []Field
}

// Resource builds the backend CRUD client for this family.
func (f *Family) Resource(c *backend.Client) *backend.Resource {
	return c.Resource(f.Endpoint, f.ImageField, f.WrapKeys...)
}

// Field looks up a field by name.
func (f *Family) Field(name string) *Field {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return &f.Fields[i]
		}
	}
	return nil
}

var orderField = Field{Name: "order", Label: "Display order", Type: FieldNumber,
	Help: "Lower numbers appear first."}

// families lists every managed content family in sidebar order. Slugs are
// part of admin URLs; changing one breaks bookmarks.
var families = []Family{
	{
		Slug:       "home-hero",
		Title:      "Home hero slides",
		Endpoint:   "/home/hero",
		ImageField: "imageUrl",
		WrapKeys:   []string{"hero"},
		ListFields: []string{"title", "subtitle", "order"},
		Fields: []Field{
			{Name: "title", Label: "Title", Type: FieldText, Required: true},
			{Name: "subtitle", Label: "Subtitle", Type: FieldText},
			{Name: "imageUrl", Label: "Image", Type: FieldImage, Required: true},
			{Name: "duration", Label: "Slide duration (seconds)", Type: FieldNumber,
				Help: "How long the slide stays up before advancing. Defaults to 3."},
			{Name: "autoplay", Label: "Autoplay", Type: FieldCheckbox},
			orderField,
		},
	},
	{
		Slug:       "about-hero",
		Title:      "About page hero slides",
		Endpoint:   "/about-us/hero",
		ImageField: "imageUrl",
		WrapKeys:   []string{"hero"},
		ListFields: []string{"title", "subtitle", "order"},
		Fields: []Field{
			{Name: "title", Label: "Title", Type: FieldText, Required: true},
			{Name: "subtitle", Label: "Subtitle", Type: FieldText},
			{Name: "imageUrl", Label: "Image", Type: FieldImage, Required: true},
			orderField,
		},
	},
	{
		Slug:       "vm-hero",
		Title:      "Vision & mission hero",
		Endpoint:   "/vm/hero",
		ImageField: "imageUrl",
		WrapKeys:   []string{"hero"},
		Singleton:  true,
		ListFields: []string{"title", "subtitle"},
		Fields: []Field{
			{Name: "title", Label: "Title", Type: FieldText, Required: true},
			{Name: "subtitle", Label: "Subtitle", Type: FieldText},
			{Name: "imageUrl", Label: "Image", Type: FieldImage},
		},
	},
	{
		Slug:       "stats",
		Title:      "Impact statistics",
		Endpoint:   "/home/stats",
		WrapKeys:   []string{"stats"},
		ListFields: []string{"icon", "label", "number", "order"},
		Fields: []Field{
			{Name: "icon", Label: "Icon (emoji)", Type: FieldText, Required: true},
			{Name: "number", Label: "Number", Type: FieldNumber, Required: true},
			{Name: "label", Label: "Label", Type: FieldText, Required: true},
			{Name: "color", Label: "Accent color (hex)", Type: FieldText},
			orderField,
		},
	},
	{
		Slug:       "about-cards",
		Title:      "Home about cards",
		Endpoint:   "/home/about",
		ImageField: "imageUrl",
		WrapKeys:   []string{"about"},
		ListFields: []string{"title", "order"},
		Fields: []Field{
			{Name: "title", Label: "Title", Type: FieldText, Required: true},
			{Name: "description", Label: "Description", Type: FieldTextarea, Required: true},
			{Name: "imageUrl", Label: "Image", Type: FieldImage},
			orderField,
		},
	},
	{
		Slug:       "about-section",
		Title:      "About page section",
		Endpoint:   "/about-us/about",
		ImageField: "imageUrl",
		WrapKeys:   []string{"about"},
		Singleton:  true,
		ListFields: []string{"title"},
		Fields: []Field{
			{Name: "title", Label: "Title", Type: FieldText, Required: true},
			{Name: "description", Label: "Description", Type: FieldTextarea, Required: true},
			{Name: "imageUrl", Label: "Image", Type: FieldImage},
		},
	},
	{
		Slug:       "areas",
		Title:      "Areas of work",
		Endpoint:   "/about-us/areas",
		ImageField: "imageUrl",
		WrapKeys:   []string{"areas"},
		ListFields: []string{"title", "order"},
		Fields: []Field{
			{Name: "title", Label: "Title", Type: FieldText, Required: true},
			{Name: "description", Label: "Description", Type: FieldTextarea},
			{Name: "imageUrl", Label: "Image", Type: FieldImage},
			orderField,
		},
	},
	{
		Slug:       "videos",
		Title:      "Videos",
		Endpoint:   "/home/video",
		WrapKeys:   []string{"videos"},
		ListFields: []string{"videoTitle", "videoUrl", "order"},
		Fields: []Field{
			{Name: "videoTitle", Label: "Title", Type: FieldText, Required: true},
			{Name: "videoUrl", Label: "YouTube URL", Type: FieldText, Required: true,
				Help: "Watch, share, or embed URL; the site derives the embed form."},
			{Name: "videoDescription", Label: "Description", Type: FieldTextarea},
			orderField,
		},
	},
	{
		Slug:       "vision-mission",
		Title:      "Vision & mission items",
		Endpoint:   "/vm/items",
		ImageField: "imageUrl",
		WrapKeys:   []string{"items"},
		ListFields: []string{"type", "title", "order"},
		Fields: []Field{
			{Name: "type", Label: "Type", Type: FieldSelect, Required: true,
				Options: []string{"mission", "vision", "goal", "values"}},
			{Name: "title", Label: "Title", Type: FieldText, Required: true},
			{Name: "description", Label: "Description", Type: FieldTextarea, Required: true},
			{Name: "imageUrl", Label: "Image", Type: FieldImage},
			orderField,
		},
	},
}

// Families returns every managed family in display order.
func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families)
	return out
}

// FamilyBySlug resolves a URL segment to its configuration, nil when the
// slug is unknown.
func FamilyBySlug(slug string) *Family {
	for i := range families {
		if families[i].Slug == slug {
			return &families[i]
		}
	}
	return nil
}
