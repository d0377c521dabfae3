package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// Collection paths understood by the document store. A user's gallery lives
// in a per-user subcollection, GalleryCollection(userID) builds its path.
const (
	UsersCollection = "users"
	PostsCollection = "posts"
)

// GalleryCollection returns the gallery collection path for the given user.
func GalleryCollection(userID string) string {
	return UsersCollection + "/" + userID + "/gallery"
}
