package models

import "time"

// JoinedProfile is the small record kept per member inside an exhibition.
type JoinedProfile struct {
	ID       string `bson:"id" json:"id" firestore:"id"`
	ImageURL string `bson:"imageUrl" json:"imageUrl" firestore:"imageUrl"`
}

type Exhibition struct {
	ID            string                   `bson:"_id" json:"id" firestore:"-"`
	Name          string                   `bson:"name" json:"name" firestore:"name"`
	Description   string                   `bson:"description" json:"description" firestore:"description"`
	Location      string                   `bson:"location" json:"location" firestore:"location"`
	CoverImageURL string                   `bson:"coverImageUrl" json:"coverImageUrl" firestore:"coverImageUrl"`
	LogoURL       string                   `bson:"logoUrl" json:"logoUrl" firestore:"logoUrl"`
	Brochures     []string                 `bson:"brochures" json:"brochures" firestore:"brochures"`
	JoinedUsers   map[string]JoinedProfile `bson:"joinedUsers" json:"joinedUsers" firestore:"joinedUsers"`
	CreatedBy     string                   `bson:"createdBy" json:"createdBy" firestore:"createdBy"`
	CreatedAt     time.Time                `bson:"createdAt" json:"createdAt" firestore:"createdAt"`
}
