package port

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type URIComposer interface {
	ComposePicURI(uriTemplate string) string
}
