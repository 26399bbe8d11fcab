package models

import "time"

// User is the client-settable document of a user account.
// The password is stored exactly as supplied.
// swagger:model User
type User struct {
	// required: true
	Name string `json:"name" validate:"required"`

	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required"`

	// required: true
	Password string `json:"password" validate:"required"`

	// required: true
	PhoneNumber string `json:"phone_number" validate:"required"`

	// required: true
	Gender string `json:"gender" validate:"required"`

	// required: true
	// example: 1990-05-01
	DateOfBirth Date `json:"date_of_birth" validate:"required"`

	// required: true
	MembershipStatus string `json:"membership_status" validate:"required"`

	// required: true
	Address string `json:"address" validate:"required"`

	ProfilePicture string `json:"profile_picture,omitempty"`
}

// UserRecord is a user as persisted in the users collection.
type UserRecord struct {
	ID string
	User
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserResponse is the wire representation of a stored user. It never carries
// the password.
// swagger:model UserResponse
type UserResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Username         string    `json:"username"`
	PhoneNumber      string    `json:"phone_number"`
	Gender           string    `json:"gender"`
	DateOfBirth      Date      `json:"date_of_birth"`
	MembershipStatus string    `json:"membership_status"`
	Address          string    `json:"address"`
	ProfilePicture   string    `json:"profile_picture,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// NewUserResponse shapes a stored user for the API.
func NewUserResponse(rec UserRecord) UserResponse {
	return UserResponse{
		ID:               rec.ID,
		Name:             rec.Name,
		Username:         rec.Username,
		PhoneNumber:      rec.PhoneNumber,
		Gender:           rec.Gender,
		DateOfBirth:      rec.DateOfBirth,
		MembershipStatus: rec.MembershipStatus,
		Address:          rec.Address,
		ProfilePicture:   rec.ProfilePicture,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
}

// NewUserListResponse shapes a list of stored users.
func NewUserListResponse(recs []UserRecord) []UserResponse {
	resp := make([]UserResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, NewUserResponse(rec))
	}
	return resp
}
