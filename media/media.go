// Package media stores uploaded files in the object store and hands back
// their public URLs.
package media

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"expohub/models"
)

// ErrUnsupportedType is returned for files whose content type is not accepted.
var ErrUnsupportedType = errors.New("unsupported file type")

// Object is a stored file.
type Object struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// Path locates an object inside the store. Transformation is applied by the
// object store on delivery and is ignored by stores that do not support it.
type Path struct {
	Folder         string
	Name           string
	Transformation string
}

func (p Path) String() string {
	return path.Join(p.Folder, p.Name)
}

// Uploader stores files.
type Uploader interface {
	Upload(ctx context.Context, p Path, r io.Reader) (*Object, error)
}

func AvatarPath(userID string) Path {
	return Path{Folder: "avatars", Name: userID, Transformation: "c_limit,w_400,h_400,q_auto"}
}

func CompanyPath(userID string) Path {
	return Path{Folder: "companies", Name: userID, Transformation: "c_limit,w_800,h_800,q_auto"}
}

func PostPath(userID, id string) Path {
	return Path{Folder: "posts/" + userID, Name: id}
}

func ChatPath(chatID, id string) Path {
	return Path{Folder: "chats/" + chatID, Name: id}
}

func BrochurePath(exhibitionID, id string) Path {
	return Path{Folder: "exhibitions/" + exhibitionID + "/brochures", Name: id}
}

func mainType(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	if i := strings.IndexByte(ct, '/'); i >= 0 {
		return ct[:i]
	}
	return ct
}

// IsImage reports whether contentType is an image type.
func IsImage(contentType string) bool {
	return mainType(contentType) == "image"
}

// PostMediaType maps contentType to the media type of a post attachment.
func PostMediaType(contentType string) (models.MediaType, error) {
	switch mainType(contentType) {
	case "image":
		return models.MediaImage, nil
	case "video":
		return models.MediaVideo, nil
	default:
		return "", ErrUnsupportedType
	}
}

// MessageKind maps contentType to the kind of a chat attachment.
func MessageKind(contentType string) models.MessageKind {
	if IsImage(contentType) {
		return models.KindImage
	}
	return models.KindFile
}
