package nuagex

// Template is a named blueprint used to create a new lab.
type Template struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
