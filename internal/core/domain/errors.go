package domain

// ValidationError marks input problems the caller can correct. The HTTP
// edge distinguishes these from internal failures by type.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
