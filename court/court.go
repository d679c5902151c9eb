package court

type Court struct {
	ID         int64   `json:"id" yaml:"-"`
	Name       string  `json:"name" yaml:"name"`
	Type       string  `json:"type" yaml:"type"`
	HourlyRate float64 `json:"hourlyRate" yaml:"hourlyRate"`
}
