package dto

// CreateApartmentRequest is the JSON body for POST /apartments.
type CreateApartmentRequest struct {
	Type        string `json:"type" binding:"required,oneof=rent sale"`
	Agent       string `json:"agent" binding:"required,min=1,max=120"`
	Number      string `json:"number" binding:"required,min=1,max=60"`
	Description string `json:"description" binding:"max=2000"`
	Status      string `json:"status" binding:"omitempty,oneof=empty rented"`
	Household   string `json:"household" binding:"max=2000"`
	Photo       string `json:"photo" binding:"max=500"`
}

// UpdateApartmentRequest is the JSON body for PUT /apartments/{id}.
// Every field is optional: nil means "leave as is", a value overwrites the
// whole field. Unknown keys in the body are ignored.
type UpdateApartmentRequest struct {
	Type        *string `json:"type" binding:"omitempty,oneof=rent sale"`
	Agent       *string `json:"agent" binding:"omitempty,min=1,max=120"`
	Number      *string `json:"number" binding:"omitempty,min=1,max=60"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Status      *string `json:"status" binding:"omitempty,oneof=empty rented"`
	Household   *string `json:"household" binding:"omitempty,max=2000"`
	Photo       *string `json:"photo" binding:"omitempty,max=500"`
}

// Empty reports whether the request patches nothing.
func (r UpdateApartmentRequest) Empty() bool {
	return r.Type == nil && r.Agent == nil && r.Number == nil &&
		r.Description == nil && r.Status == nil && r.Household == nil && r.Photo == nil
}

// HouseholdDoneRequest is the JSON body for PATCH /apartments/{id}/household-done.
// Done is a pointer so a missing flag can be told apart from false.
type HouseholdDoneRequest struct {
	Done *bool `json:"done" binding:"required"`
}

// ApartmentResponse is the wire shape of a single apartment record.
type ApartmentResponse struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Agent       string `json:"agent"`
	Number      string `json:"number"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Household   string `json:"household"`
	Photo       string `json:"photo"`
}

// CreateApartmentResponse is returned by POST /apartments.
type CreateApartmentResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
