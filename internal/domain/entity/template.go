package entity

// TemplateCategory groups templates for listing.
type TemplateCategory string

const (
	CategoryBusiness  TemplateCategory = "business"
	CategoryPersonal  TemplateCategory = "personal"
	CategoryEvent     TemplateCategory = "event"
	CategoryMarketing TemplateCategory = "marketing"
	CategorySocial    TemplateCategory = "social"
)

// Template is a named, reusable (style, config) bundle. Templates live for the
// process lifetime in an in-memory mapping keyed by name.
type Template struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description,omitempty"`
	Category    TemplateCategory `json:"category" validate:"required,oneof=business personal event marketing social"`
	Style       StyleSpec        `json:"style"`
	Config      GenerationConfig `json:"config"`
}
