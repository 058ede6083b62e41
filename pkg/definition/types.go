package definition

// formFile is the on-disk shape of a definition.
type formFile struct {
	ID          string            `json:"id" yaml:"id"`
	Name        *string           `json:"name" yaml:"name"`
	Title       *string           `json:"title" yaml:"title"`
	Method      *string           `json:"method" yaml:"method"`
	Action      *string           `json:"action" yaml:"action"`
	EndpointURL *string           `json:"endpointUrl" yaml:"endpointUrl"`
	URL         *string           `json:"url" yaml:"url"`
	Labels      map[string]string `json:"labels" yaml:"labels"`
	Fields      []fieldFile       `json:"fields" yaml:"fields"`
}

type fieldFile struct {
	Type        string  `json:"type" yaml:"type"`
	ID          *string `json:"id" yaml:"id"`
	Name        *string `json:"name" yaml:"name"`
	Label       *string `json:"label" yaml:"label"`
	Description *string `json:"description" yaml:"description"`
	Required    bool    `json:"required" yaml:"required"`
	Disabled    bool    `json:"disabled" yaml:"disabled"`

	Placeholder *string `json:"placeholder" yaml:"placeholder"`
	Pattern     *string `json:"pattern" yaml:"pattern"`
	Size        *int    `json:"size" yaml:"size"`
	Min         *int    `json:"min" yaml:"min"`
	Max         *int    `json:"max" yaml:"max"`
	Step        *int    `json:"step" yaml:"step"`
	Rows        *int    `json:"rows" yaml:"rows"`
	Checked     *bool   `json:"checked" yaml:"checked"`
	Title       *string `json:"title" yaml:"title"`
	Value       any     `json:"value" yaml:"value"`

	Items []itemFile `json:"items" yaml:"items"`
	Enum  *enumFile  `json:"enum" yaml:"enum"`
}

type itemFile struct {
	Value   string `json:"value" yaml:"value"`
	Label   string `json:"label" yaml:"label"`
	Checked bool   `json:"checked" yaml:"checked"`
}

// enumFile declares list items as an enumeration: values are the member names
// in lowerCamelCase, labels the descriptions or names.
type enumFile struct {
	Members []enumMemberFile `json:"members" yaml:"members"`
	Default *string          `json:"default" yaml:"default"`
}

type enumMemberFile struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}
