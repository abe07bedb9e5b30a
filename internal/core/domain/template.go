package domain

// DocumentKind identifies a paperwork family.
type DocumentKind string

// Available document kinds.
const (
	// KindExpungementSummary is the fillable expungement form with case summary pages.
	KindExpungementSummary DocumentKind = "expungement-summary"

	// KindExpungementLetter is the per-case expungement request letter.
	KindExpungementLetter DocumentKind = "expungement-letter"

	// KindWarrantMotion is the per-case motion to recall a bench warrant.
	KindWarrantMotion DocumentKind = "warrant-motion"
)

// String returns the string representation.
func (k DocumentKind) String() string {
	return string(k)
}

// Mode selects which document kinds an assembly run produces.
type Mode string

// Available modes.
const (
	ModeExpungement Mode = "expungement"
	ModeWarrant     Mode = "warrant"
)

// IsValid returns true if the mode is recognised.
func (m Mode) IsValid() bool {
	return m == ModeExpungement || m == ModeWarrant
}

// String returns the string representation.
func (m Mode) String() string {
	return string(m)
}

// TemplateFormat is the container format of a template resource.
type TemplateFormat string

// Available template formats.
const (
	// FormatArchive is a zip container with an XML markup body.
	FormatArchive TemplateFormat = "archive"

	// FormatForm is a fillable form.
	FormatForm TemplateFormat = "form"
)

// Field is a typed accessor into FieldValues.
// Template tables reference fields through these accessors rather than
// string keys, so a mapping without a backing value cannot compile.
type Field struct {
	// Name identifies the field in logs and reports.
	Name string

	// Value reads the field from a resolved value record.
	Value func(v *FieldValues) string
}

// Placeholder maps a reserved glyph in a template to a field.
type Placeholder struct {
	Token rune
	Field Field
}

// OptionalBlock is a template region removed entirely when its field is empty.
type OptionalBlock struct {
	// Field backs the block.
	Field Field

	// Token is the inline glyph replaced when the field has a value.
	Token rune

	// RegionID is the stable structural id (paragraph id) of the deletable region.
	RegionID string
}

// FormFieldKind distinguishes text fields from radio groups.
type FormFieldKind int

// Form field kinds.
const (
	FormFieldText FormFieldKind = iota
	FormFieldRadio
)

// FormBinding binds a named field of a fillable form to a value.
type FormBinding struct {
	// Name is the field name inside the form.
	Name string

	// Kind is the field type.
	Kind FormFieldKind

	// Field supplies the value.
	Field Field
}

// TemplateDescriptor describes one template resource and how to fill it.
// Descriptors are immutable and registered once at startup.
type TemplateDescriptor struct {
	Kind     DocumentKind
	Variant  PartyVariant
	Format   TemplateFormat
	Resource string

	// Part is the internal markup path inside an archive template.
	Part string

	// Placeholders are replaced globally after optional blocks are pruned.
	Placeholders []Placeholder

	// Blocks are optional regions pruned before substitution.
	Blocks []OptionalBlock

	// Bindings are the form fields set on a form template.
	Bindings []FormBinding
}

// Tokens returns every reserved glyph used by the descriptor.
func (d TemplateDescriptor) Tokens() []rune {
	tokens := make([]rune, 0, len(d.Placeholders)+len(d.Blocks))
	for _, p := range d.Placeholders {
		tokens = append(tokens, p.Token)
	}
	for _, b := range d.Blocks {
		tokens = append(tokens, b.Token)
	}
	return tokens
}
