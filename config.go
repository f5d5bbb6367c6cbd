package tablestate

// DefaultPageSize is the number of rows per page
// used when Config.PageSize is not positive.
const DefaultPageSize = 10

var (
	// DefaultStructFieldNaming provides the default StructFieldNaming
	// for column titles using "col" as title tag, ignores "-" titled fields,
	// and uses SpacePascalCase for untagged fields.
	DefaultStructFieldNaming = StructFieldNaming{
		Tag:      "col",
		Ignore:   "-",
		Untagged: SpacePascalCase,
	}

	// PathFieldNaming is the StructFieldNaming used by ResolvePath
	// to match dotted path segments against struct fields.
	// A segment matches the "json" tag name of a field
	// or the field name itself.
	PathFieldNaming = StructFieldNaming{
		Tag:    "json",
		Ignore: "-",
	}
)

// Config configures a Controller.
// All fields are optional, the zero value
// is normalized to DefaultConfig.
type Config struct {
	// PageSize is the number of rows per page.
	PageSize int `json:"pageSize" mapstructure:"page_size"`
	// SearchFields are the dotted paths of the row fields
	// that Search matches against.
	// Filtering is disabled if empty.
	SearchFields []string `json:"searchFields" mapstructure:"search_fields"`
	// NotSortable disables Controller.Sort.
	NotSortable bool `json:"notSortable,omitempty" mapstructure:"not_sortable"`
}

// DefaultConfig returns a Config with 10 rows per page,
// no search fields and sorting enabled.
func DefaultConfig() Config {
	return Config{PageSize: DefaultPageSize}
}

// Normalized returns a copy of the config with a non positive PageSize
// replaced by DefaultPageSize and empty search fields removed.
func (c Config) Normalized() Config {
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	var fields []string
	for _, field := range c.SearchFields {
		if field != "" {
			fields = append(fields, field)
		}
	}
	c.SearchFields = fields
	return c
}
