package models

import "time"

// ProfileType distinguishes visitors from exhibitors.
type ProfileType string

const (
	Visitor   ProfileType = "visitor"
	Exhibitor ProfileType = "exhibitor"
)

// Valid reports whether t is one of the known profile types.
func (t ProfileType) Valid() bool {
	return t == Visitor || t == Exhibitor
}

type User struct {
	ID           string  `bson:"_id" json:"id" firestore:"-"`
	Email        string  `bson:"email" json:"email" firestore:"email"`
	PasswordHash *string `bson:"passwordHash,omitempty" json:"-" firestore:"passwordHash,omitempty"`
	AuthProvider string  `bson:"authProvider" json:"authProvider" firestore:"authProvider"`
	GoogleID     *string `bson:"googleId,omitempty" json:"-" firestore:"googleId,omitempty"`

	DisplayName     string      `bson:"displayName" json:"displayName" firestore:"displayName"`
	ProfileType     ProfileType `bson:"profileType" json:"profileType" firestore:"profileType"`
	ImageURL        string      `bson:"imageUrl" json:"imageUrl" firestore:"imageUrl"`
	CompanyImageURL string      `bson:"companyImageUrl" json:"companyImageUrl" firestore:"companyImageUrl"`
	Description     string      `bson:"description" json:"description" firestore:"description"`
	Location        string      `bson:"location" json:"location" firestore:"location"`
	Exhibitions     []string    `bson:"exhibitions" json:"exhibitions" firestore:"exhibitions"`
	Interests       []string    `bson:"interests" json:"interests" firestore:"interests"`
	Posts           []string    `bson:"posts" json:"posts" firestore:"posts"`
	Onboarded       bool        `bson:"onboarded" json:"onboarded" firestore:"onboarded"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt" firestore:"createdAt"`
	LastSeen  time.Time `bson:"lastSeen" json:"lastSeen" firestore:"lastSeen"`
}

// Image returns the picture shown next to the user's name. Exhibitors are
// represented by their company image when they have one.
func (u *User) Image() string {
	if u.ProfileType == Exhibitor && u.CompanyImageURL != "" {
		return u.CompanyImageURL
	}
	return u.ImageURL
}

// UserUpdate carries the profile fields a user may change. Nil fields are left untouched.
type UserUpdate struct {
	DisplayName     *string
	ProfileType     *ProfileType
	ImageURL        *string
	CompanyImageURL *string
	Description     *string
	Location        *string
	Interests       []string
	Onboarded       *bool
	LastSeen        *time.Time
	GoogleID        *string
	AuthProvider    *string
}

// Empty reports whether the update changes nothing.
func (u UserUpdate) Empty() bool {
	return u.DisplayName == nil && u.ProfileType == nil && u.ImageURL == nil &&
		u.CompanyImageURL == nil && u.Description == nil && u.Location == nil &&
		u.Interests == nil && u.Onboarded == nil && u.LastSeen == nil &&
		u.GoogleID == nil && u.AuthProvider == nil
}

// Fields flattens the update into storage field names.
func (u UserUpdate) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	if u.DisplayName != nil {
		f["displayName"] = *u.DisplayName
	}
	if u.ProfileType != nil {
		f["profileType"] = string(*u.ProfileType)
	}
	if u.ImageURL != nil {
		f["imageUrl"] = *u.ImageURL
	}
	if u.CompanyImageURL != nil {
		f["companyImageUrl"] = *u.CompanyImageURL
	}
	if u.Description != nil {
		f["description"] = *u.Description
	}
	if u.Location != nil {
		f["location"] = *u.Location
	}
	if u.Interests != nil {
		f["interests"] = u.Interests
	}
	if u.Onboarded != nil {
		f["onboarded"] = *u.Onboarded
	}
	if u.LastSeen != nil {
		f["lastSeen"] = *u.LastSeen
	}
	if u.GoogleID != nil {
		f["googleId"] = *u.GoogleID
	}
	if u.AuthProvider != nil {
		f["authProvider"] = *u.AuthProvider
	}
	return f
}

// Industry is an entry of the interest tag lookup list.
type Industry struct {
	ID   string `bson:"_id" json:"id" firestore:"-"`
	Name string `bson:"name" json:"name" firestore:"name"`
}
