// Package models defines the client-side view of Snapfeed documents: posts,
// user profiles, and gallery images, plus the JSON field encoding they travel
// in. Document fields are free-form JSON objects on the wire; these types pin
// down the fields this client reads and writes.
package models

import (
	"encoding/json"
	"time"
)

// Fallback display values substituted when an author profile is missing or
// an enrichment lookup fails.
const (
	FallbackDisplayName = "Anonymous User"
	FallbackPhotoURL    = "/img/default-profile.png"
)

// Identity describes the signed-in account as the server reported it.
type Identity struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
	Email       string `json:"email"`
}

// UserProfile is the document stored under users/<id>.
type UserProfile struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Intro       string `json:"intro,omitempty"`
	PhotoURL    string `json:"profileImage,omitempty"`
	CoverURL    string `json:"coverImage,omitempty"`
}

// BestName picks the display name the feed shows for this profile.
// An empty result means the caller should fall back to FallbackDisplayName.
func (p *UserProfile) BestName() string {
	if p == nil {
		return ""
	}
	if p.Name != "" {
		return p.Name
	}
	return p.DisplayName
}

// BestPhotoURL picks the avatar the feed shows for this profile.
func (p *UserProfile) BestPhotoURL() string {
	if p == nil {
		return ""
	}
	return p.PhotoURL
}

// Post is a document in the posts collection.
type Post struct {
	ID        string   `json:"-"`
	UserID    string   `json:"userId"`
	Text      string   `json:"text"`
	Images    []string `json:"images"`
	Timestamp int64    `json:"timestamp"`
}

// EnrichedPost is a Post joined with its author's display data. Fallbacks are
// already applied: UserName and UserPhotoURL are never empty.
type EnrichedPost struct {
	Post
	UserName     string
	UserPhotoURL string
}

// GalleryImage is a document in a user's gallery subcollection.
type GalleryImage struct {
	ID         string `json:"-"`
	URL        string `json:"url"`
	UploadedAt int64  `json:"uploadedAt"`
}

// DecodePost parses document fields into a Post.
func DecodePost(id string, fields []byte) (*Post, error) {
	var p Post
	if err := json.Unmarshal(fields, &p); err != nil {
		return nil, err
	}
	p.ID = id
	return &p, nil
}

// Encode serializes a Post into document fields.
func (p *Post) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// DecodeProfile parses document fields into a UserProfile.
func DecodeProfile(fields []byte) (*UserProfile, error) {
	var p UserProfile
	if err := json.Unmarshal(fields, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Encode serializes a UserProfile into document fields. Empty fields are
// omitted so merge-writes leave the remote values untouched.
func (p *UserProfile) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// DecodeGalleryImage parses document fields into a GalleryImage.
func DecodeGalleryImage(id string, fields []byte) (*GalleryImage, error) {
	var g GalleryImage
	if err := json.Unmarshal(fields, &g); err != nil {
		return nil, err
	}
	g.ID = id
	return &g, nil
}

// Encode serializes a GalleryImage into document fields.
func (g *GalleryImage) Encode() ([]byte, error) {
	return json.Marshal(g)
}

// NewPost builds a Post stamped with the current time.
func NewPost(userID, text string, images []string) *Post {
	if images == nil {
		images = []string{}
	}
	return &Post{
		UserID:    userID,
		Text:      text,
		Images:    images,
		Timestamp: time.Now().UnixMilli(),
	}
}
