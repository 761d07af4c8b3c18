package dto

// UpdateMeRequest is the allow-listed self-service patch. Email and
// password are deliberately absent: changing either requires a flow
// with reverification, not a profile patch.
type UpdateMeRequest struct {
	Name             *string `json:"name"`
	PhoneNumber      *string `json:"phone_number"`
	Gender           *string `json:"gender"`
	DateOfBirth      *string `json:"date_of_birth"`
	MembershipStatus *string `json:"membership_status"`
}
